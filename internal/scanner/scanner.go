// Package scanner discovers image, video, and RAW files under a source
// tree. It only reads: directory entries and stat results go into
// FileRecords, and nothing on disk is touched.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
)

var (
	// ErrSourceMissing indicates the source path does not exist.
	ErrSourceMissing = errors.New("source path not found")

	// ErrNotDirectory indicates the source path is not a directory.
	ErrNotDirectory = errors.New("source path is not a directory")
)

// Options control which files a scan picks up.
type Options struct {
	// Recursive descends into subdirectories.
	Recursive bool

	// IncludeVideos picks up video extensions.
	IncludeVideos bool

	// IncludeRaw picks up camera RAW extensions.
	IncludeRaw bool

	// IgnoreHidden skips dot-files and dot-directories.
	IgnoreHidden bool

	// ImageExtensions, VideoExtensions, RawExtensions are the recognized
	// extension lists (with leading dot, any case).
	ImageExtensions []string
	VideoExtensions []string
	RawExtensions   []string

	// Limit caps the number of records collected; 0 means no cap.
	Limit int
}

// Scanner walks a source tree and classifies files by extension.
type Scanner struct {
	fs    fsops.FS
	opts  Options
	types map[string]FileType // lowercased extension -> type
}

// New creates a Scanner with the given filesystem and options.
func New(filesystem fsops.FS, opts Options) *Scanner {
	types := make(map[string]FileType)
	for _, ext := range opts.ImageExtensions {
		types[strings.ToLower(ext)] = FileTypeImage
	}
	if opts.IncludeVideos {
		for _, ext := range opts.VideoExtensions {
			types[strings.ToLower(ext)] = FileTypeVideo
		}
	}
	if opts.IncludeRaw {
		for _, ext := range opts.RawExtensions {
			types[strings.ToLower(ext)] = FileTypeRaw
		}
	}
	return &Scanner{fs: filesystem, opts: opts, types: types}
}

// Classify returns the file type for a path, or FileTypeUnknown when the
// extension is not recognized.
func (s *Scanner) Classify(path string) FileType {
	if t, ok := s.types[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return FileTypeUnknown
}

// Scan walks root and returns the discovered files in walk order.
// Per-file stat failures are collected in Result.Errors; only a missing or
// non-directory root aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, root)
		}
		return nil, fmt.Errorf("failed to stat source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	result := &Result{Root: root}

	walkErr := s.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, ScanError{Path: path, Message: err.Error()})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.opts.IgnoreHidden && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if !s.opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}

		result.TotalSeen++

		if s.opts.IgnoreHidden && strings.HasPrefix(d.Name(), ".") {
			result.Skipped++
			return nil
		}

		fileType := s.Classify(path)
		if fileType == FileTypeUnknown {
			result.Skipped++
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			result.Errors = append(result.Errors, ScanError{Path: path, Message: err.Error()})
			return nil
		}

		result.Records = append(result.Records, FileRecord{
			SourcePath: path,
			Type:       fileType,
			SizeBytes:  fi.Size(),
			ModTime:    fi.ModTime(),
		})

		if s.opts.Limit > 0 && len(result.Records) >= s.opts.Limit {
			return fs.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan aborted: %w", walkErr)
	}

	return result, nil
}
