// Package export renders a plan report to JSON or CSV. A report is a
// one-shot human/tooling artifact: ChronoClean never reads one back in.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Stilmant/ChronoClean-sub001/internal/clock"
	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
)

// ErrUnknownFormat indicates an unsupported export format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Format selects the export encoding.
type Format string

// Export format constants
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json", "":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FileEntry is one planned file in a report.
type FileEntry struct {
	Source              string `json:"source"`
	Type                string `json:"type"`
	SizeBytes           int64  `json:"size_bytes"`
	Date                string `json:"date"`
	DateSource          string `json:"date_source"`
	Destination         string `json:"destination"`
	RelativeDestination string `json:"relative_destination"`
}

// ConflictEntry is one destination collision in a report.
type ConflictEntry struct {
	Source      string `json:"source"`
	Existing    string `json:"existing"`
	Destination string `json:"destination"`
}

// DuplicateGroup is one set of byte-identical sources.
type DuplicateGroup struct {
	Hash       string   `json:"hash"`
	Original   string   `json:"original"`
	Duplicates []string `json:"duplicates"`
}

// Statistics summarizes a report.
type Statistics struct {
	ByType         map[string]int `json:"by_type"`
	ByDateSource   map[string]int `json:"by_date_source"`
	TotalBytes     int64          `json:"total_bytes"`
	ConflictCount  int            `json:"conflict_count"`
	DuplicateCount int            `json:"duplicate_count"`
}

// Report is the full export document.
type Report struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	SourceRoot      string           `json:"source_root"`
	DestinationRoot string           `json:"destination_root"`
	Layout          string           `json:"layout"`
	FileCount       int              `json:"file_count"`
	Files           []FileEntry      `json:"files"`
	Conflicts       []ConflictEntry  `json:"conflicts,omitempty"`
	DuplicateGroups []DuplicateGroup `json:"duplicate_groups,omitempty"`
	Warnings        []string         `json:"warnings,omitempty"`
	Statistics      *Statistics      `json:"statistics,omitempty"`
}

// Exporter renders reports and writes them atomically.
type Exporter struct {
	fs                fsops.FS
	clock             clock.Clock
	prettyPrint       bool
	includeStatistics bool
}

// New creates an Exporter.
func New(filesystem fsops.FS, clk clock.Clock, prettyPrint, includeStatistics bool) *Exporter {
	return &Exporter{
		fs:                filesystem,
		clock:             clk,
		prettyPrint:       prettyPrint,
		includeStatistics: includeStatistics,
	}
}

// Render encodes the report in the given format, stamping GeneratedAt and
// statistics on the way out.
func (e *Exporter) Render(report *Report, format Format) ([]byte, error) {
	report.GeneratedAt = e.clock.Now()
	report.FileCount = len(report.Files)
	if e.includeStatistics {
		report.Statistics = computeStatistics(report)
	}

	switch format {
	case FormatJSON:
		return e.renderJSON(report)
	case FormatCSV:
		return e.renderCSV(report)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Write renders the report and writes it atomically to path.
func (e *Exporter) Write(report *Report, format Format, path string) error {
	data, err := e.Render(report, format)
	if err != nil {
		return err
	}
	if err := e.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (e *Exporter) renderJSON(report *Report) ([]byte, error) {
	var data []byte
	var err error
	if e.prettyPrint {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

func (e *Exporter) renderCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"source", "type", "size_bytes", "date", "date_source",
		"destination", "relative_destination",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	for _, f := range report.Files {
		row := []string{
			f.Source, f.Type, strconv.FormatInt(f.SizeBytes, 10),
			f.Date, f.DateSource, f.Destination, f.RelativeDestination,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to encode report: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return buf.Bytes(), nil
}

func computeStatistics(report *Report) *Statistics {
	stats := &Statistics{
		ByType:        make(map[string]int),
		ByDateSource:  make(map[string]int),
		ConflictCount: len(report.Conflicts),
	}
	for _, f := range report.Files {
		stats.ByType[f.Type]++
		stats.ByDateSource[f.DateSource]++
		stats.TotalBytes += f.SizeBytes
	}
	for _, g := range report.DuplicateGroups {
		stats.DuplicateCount += len(g.Duplicates)
	}
	return stats
}
