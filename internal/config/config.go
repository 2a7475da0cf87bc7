// Package config manages ChronoClean configuration and output paths.
//
// Configuration is loaded from a YAML file (chronoclean.yaml by default)
// and merged over built-in defaults. The folder-structure tag is passed
// through untouched: an unknown tag degrades to "YYYY/MM" inside the sorter
// with a warning diagnostic, so a typo never aborts a run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates an explicitly requested config file is missing.
var ErrNotFound = errors.New("config file not found")

// DefaultSearchPaths are tried in order when no explicit config path is
// given. The first existing file wins.
var DefaultSearchPaths = []string{
	"chronoclean.yaml",
	"chronoclean.yml",
	".chronoclean/config.yaml",
	".chronoclean/config.yml",
}

// Config is the root configuration document.
type Config struct {
	General    GeneralConfig    `yaml:"general"`
	Paths      PathsConfig      `yaml:"paths"`
	Scan       ScanConfig       `yaml:"scan"`
	Sorting    SortingConfig    `yaml:"sorting"`
	Renaming   RenamingConfig   `yaml:"renaming"`
	Duplicates DuplicatesConfig `yaml:"duplicates"`
	Export     ExportConfig     `yaml:"export"`
}

// GeneralConfig holds settings that cut across commands.
type GeneralConfig struct {
	Recursive     bool   `yaml:"recursive"`
	IncludeVideos bool   `yaml:"include_videos"`
	IncludeRaw    bool   `yaml:"include_raw"`
	IgnoreHidden  bool   `yaml:"ignore_hidden_files"`
	OutputFolder  string `yaml:"output_folder"`
}

// PathsConfig holds the default source and destination roots.
type PathsConfig struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// ScanConfig controls file discovery.
type ScanConfig struct {
	ImageExtensions []string `yaml:"image_extensions"`
	VideoExtensions []string `yaml:"video_extensions"`
	RawExtensions   []string `yaml:"raw_extensions"`
	Limit           int      `yaml:"limit"`
}

// SortingConfig controls destination computation.
type SortingConfig struct {
	// FolderStructure is a layout tag like "YYYY/MM". Unknown tags degrade
	// to "YYYY/MM" with a warning at plan time.
	FolderStructure string `yaml:"folder_structure"`

	// FallbackDatePriority orders the date inference sources.
	FallbackDatePriority []string `yaml:"fallback_date_priority"`
}

// RenamingConfig controls generated destination filenames.
type RenamingConfig struct {
	Enabled             bool   `yaml:"enabled"`
	Pattern             string `yaml:"pattern"`
	DateFormat          string `yaml:"date_format"`
	TimeFormat          string `yaml:"time_format"`
	LowercaseExtensions bool   `yaml:"lowercase_extensions"`
}

// DuplicatesConfig controls content-hash duplicate grouping.
type DuplicatesConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Algorithm string `yaml:"hashing_algorithm"`
}

// ExportConfig controls report output.
type ExportConfig struct {
	DefaultFormat string `yaml:"default_format"`
	PrettyPrint   bool   `yaml:"pretty_print"`
	OutputPath    string `yaml:"output_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Recursive:     true,
			IncludeVideos: true,
			IncludeRaw:    true,
			IgnoreHidden:  true,
			OutputFolder:  ".chronoclean",
		},
		Scan: ScanConfig{
			ImageExtensions: []string{
				".jpg", ".jpeg", ".png", ".tiff", ".tif",
				".heic", ".heif", ".webp", ".bmp", ".gif",
			},
			VideoExtensions: []string{
				".mp4", ".mov", ".avi", ".mkv", ".m4v",
				".3gp", ".wmv", ".webm", ".mts", ".m2ts",
			},
			RawExtensions: []string{
				".cr2", ".cr3", ".nef", ".arw", ".dng",
				".orf", ".rw2", ".raf", ".pef", ".srw",
			},
		},
		Sorting: SortingConfig{
			FolderStructure:      "YYYY/MM",
			FallbackDatePriority: []string{"filename", "folder_name", "filesystem"},
		},
		Renaming: RenamingConfig{
			Enabled:             false,
			Pattern:             "{date}_{time}",
			DateFormat:          "20060102",
			TimeFormat:          "150405",
			LowercaseExtensions: true,
		},
		Duplicates: DuplicatesConfig{
			Enabled:   true,
			Algorithm: "sha256",
		},
		Export: ExportConfig{
			DefaultFormat: "json",
			PrettyPrint:   true,
		},
	}
}

// Load reads configuration from the given path, or from the first existing
// default search path when path is empty. Defaults fill anything the file
// leaves unset; with no file at all the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, candidate := range DefaultSearchPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML, used by `config init` and
// `config show`.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
