package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the output locations ChronoClean writes to. Source trees
// are only ever read; everything ChronoClean produces lands under Root.
type Paths struct {
	// Root is the output folder for reports (default: ./.chronoclean)
	Root string

	// Export is the directory exported reports are written to
	Export string
}

// DefaultOutputPaths returns the output paths for the given output folder,
// falling back to ".chronoclean" in the working directory.
// CHRONOCLEAN_ROOT overrides the root entirely.
func DefaultOutputPaths(outputFolder string) (*Paths, error) {
	root := os.Getenv("CHRONOCLEAN_ROOT")
	if root == "" {
		root = outputFolder
	}
	if root == "" {
		root = ".chronoclean"
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output folder: %w", err)
	}

	return &Paths{
		Root:   abs,
		Export: filepath.Join(abs, "export"),
	}, nil
}

// EnsureDirectories creates all output directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Export,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
