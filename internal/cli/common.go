package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Stilmant/ChronoClean-sub001/internal/clock"
	"github.com/Stilmant/ChronoClean-sub001/internal/config"
	"github.com/Stilmant/ChronoClean-sub001/internal/engine"
	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
	"github.com/Stilmant/ChronoClean-sub001/internal/hash"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher, known := hash.ForAlgorithm(fs, cfg.Duplicates.Algorithm)
	if !known {
		PrintWarning(fmt.Sprintf("unknown hashing algorithm %q, using %s",
			cfg.Duplicates.Algorithm, hasher.Algorithm()))
	}
	clk := &clock.RealClock{}

	return engine.New(fs, hasher, clk, cfg), cfg, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
