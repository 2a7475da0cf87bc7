// Package engine provides the core business logic for ChronoClean runs.
//
// The engine orchestrates the planning pipeline between the CLI and the
// lower-level packages: it scans a source tree, infers dates, generates
// rename targets, folds everything into a sorting plan, and renders export
// reports. It never mutates the source tree or executes moves; the plan it
// produces is advisory data for whatever performs the moves.
package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Stilmant/ChronoClean-sub001/internal/clock"
	"github.com/Stilmant/ChronoClean-sub001/internal/config"
	"github.com/Stilmant/ChronoClean-sub001/internal/dates"
	"github.com/Stilmant/ChronoClean-sub001/internal/dupes"
	"github.com/Stilmant/ChronoClean-sub001/internal/export"
	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
	"github.com/Stilmant/ChronoClean-sub001/internal/hash"
	"github.com/Stilmant/ChronoClean-sub001/internal/renamer"
	"github.com/Stilmant/ChronoClean-sub001/internal/scanner"
	"github.com/Stilmant/ChronoClean-sub001/internal/sorter"
)

// ErrNoDestination indicates a plan was requested without a destination
// root, either on the command line or in the config file.
var ErrNoDestination = errors.New("no destination root configured")

// Engine orchestrates scanning, planning, and exporting.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	cfg    *config.Config
}

// New creates a new Engine with the given dependencies.
func New(filesystem fsops.FS, hasher hash.Hasher, clk clock.Clock, cfg *config.Config) *Engine {
	return &Engine{
		fs:     filesystem,
		hasher: hasher,
		clock:  clk,
		cfg:    cfg,
	}
}

// Scan discovers files under the request's source root and infers a date
// for each.
func (e *Engine) Scan(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	start := e.clock.Now()

	limit := e.cfg.Scan.Limit
	if req.Limit > 0 {
		limit = req.Limit
	}
	s := scanner.New(e.fs, scanner.Options{
		Recursive:       e.cfg.General.Recursive,
		IncludeVideos:   e.cfg.General.IncludeVideos,
		IncludeRaw:      e.cfg.General.IncludeRaw,
		IgnoreHidden:    e.cfg.General.IgnoreHidden,
		ImageExtensions: e.cfg.Scan.ImageExtensions,
		VideoExtensions: e.cfg.Scan.VideoExtensions,
		RawExtensions:   e.cfg.Scan.RawExtensions,
		Limit:           limit,
	})

	raw, err := s.Scan(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	inference := dates.NewEngine(e.cfg.Sorting.FallbackDatePriority, dates.DefaultYearCutoff)

	result := &ScanResult{
		Root:      raw.Root,
		TotalSeen: raw.TotalSeen,
		Skipped:   raw.Skipped,
		Errors:    raw.Errors,
	}
	for _, rec := range raw.Records {
		date, source := inference.Infer(rec.SourcePath, rec.ModTime)
		if source == dates.SourceUnknown {
			// Every file still gets planned somewhere; the mod time is the
			// date of last resort even when excluded from the priority list.
			date = rec.ModTime
		}
		result.Records = append(result.Records, ScannedFile{
			FileRecord: rec,
			Date:       date,
			DateSource: source,
		})
	}

	result.Duration = e.clock.Now().Sub(start)
	return result, nil
}

// BuildPlan scans the source tree and folds every discovered file into a
// sorting plan. Scan records are folded serially in walk order so conflict
// pairing stays deterministic.
func (e *Engine) BuildPlan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	destination := req.Destination
	if destination == "" {
		destination = e.cfg.Paths.Destination
	}
	if destination == "" {
		return nil, ErrNoDestination
	}

	layout := req.Layout
	if layout == "" {
		layout = e.cfg.Sorting.FolderStructure
	}

	scan, err := e.Scan(ctx, &req.ScanRequest)
	if err != nil {
		return nil, err
	}

	plan, diags := sorter.NewSortingPlan(destination, layout)

	var rename *renamer.Renamer
	if req.Rename {
		rename = renamer.New(renamer.Options{
			Pattern:             e.cfg.Renaming.Pattern,
			DateFormat:          e.cfg.Renaming.DateFormat,
			TimeFormat:          e.cfg.Renaming.TimeFormat,
			LowercaseExtensions: e.cfg.Renaming.LowercaseExtensions,
		})
	}

	result := &PlanResult{
		SourceRoot:      scan.Root,
		DestinationRoot: destination,
		Layout:          plan.Templater().Layout().Tag(),
		Diagnostics:     diags,
		ScanErrors:      scan.Errors,
		TotalSeen:       scan.TotalSeen,
		Skipped:         scan.Skipped,
	}

	for _, rec := range scan.Records {
		renameTo := ""
		if rename != nil {
			renameTo = rename.Generate(rec.SourcePath, rec.Date, 0)
			// The rename pattern is user-supplied; a generated name must stay
			// inside the destination root.
			if err := e.fs.ValidateRelPath(renameTo); err != nil {
				result.Diagnostics = append(result.Diagnostics, sorter.Diagnostic{
					Message: fmt.Sprintf("generated name %q rejected, keeping %q: %v",
						renameTo, filepath.Base(rec.SourcePath), err),
				})
				renameTo = ""
			}
		}

		dest := plan.AddFile(rec.SourcePath, rec.Date, renameTo)
		result.Entries = append(result.Entries, PlanEntry{
			Source:              rec.SourcePath,
			Type:                rec.Type,
			SizeBytes:           rec.SizeBytes,
			Date:                rec.Date,
			DateSource:          rec.DateSource,
			Destination:         dest,
			RelativeDestination: plan.Templater().RelativeDestination(rec.Date, filepath.Base(dest)),
		})
	}

	result.Destinations = plan.Destinations()
	result.Conflicts = plan.Conflicts()

	if req.CheckDuplicates && e.cfg.Duplicates.Enabled {
		checker := dupes.NewChecker(e.hasher)
		sources := make([]string, 0, len(scan.Records))
		for _, rec := range scan.Records {
			sources = append(sources, rec.SourcePath)
		}
		result.DuplicateGroups, result.HashFailures = checker.GroupAll(sources)
	}

	result.Duration = scan.Duration
	return result, nil
}

// Export builds a plan and writes its report to disk, returning the path
// written.
func (e *Engine) Export(ctx context.Context, req *ExportRequest) (string, *PlanResult, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return "", nil, err
	}

	plan, err := e.BuildPlan(ctx, &req.PlanRequest)
	if err != nil {
		return "", nil, err
	}

	path := req.OutputPath
	if path == "" {
		paths, err := config.DefaultOutputPaths(e.cfg.General.OutputFolder)
		if err != nil {
			return "", nil, err
		}
		if err := paths.EnsureDirectories(); err != nil {
			return "", nil, err
		}
		name := fmt.Sprintf("chronoclean-report-%s.%s",
			e.clock.Now().Format("20060102-150405"), string(format))
		path = filepath.Join(paths.Export, name)
	}

	exporter := export.New(e.fs, e.clock, e.cfg.Export.PrettyPrint, true)
	if err := exporter.Write(buildReport(plan), format, path); err != nil {
		return "", nil, err
	}
	return path, plan, nil
}

// buildReport converts a plan result to the export document.
func buildReport(plan *PlanResult) *export.Report {
	report := &export.Report{
		SourceRoot:      plan.SourceRoot,
		DestinationRoot: plan.DestinationRoot,
		Layout:          plan.Layout,
	}
	for _, entry := range plan.Entries {
		report.Files = append(report.Files, export.FileEntry{
			Source:              entry.Source,
			Type:                string(entry.Type),
			SizeBytes:           entry.SizeBytes,
			Date:                entry.Date.Format("2006-01-02"),
			DateSource:          string(entry.DateSource),
			Destination:         entry.Destination,
			RelativeDestination: entry.RelativeDestination,
		})
	}
	for _, c := range plan.Conflicts {
		report.Conflicts = append(report.Conflicts, export.ConflictEntry{
			Source:      c.Source,
			Existing:    c.Existing,
			Destination: c.Destination,
		})
	}
	for _, g := range plan.DuplicateGroups {
		report.DuplicateGroups = append(report.DuplicateGroups, export.DuplicateGroup{
			Hash:       g.Hash,
			Original:   g.Original,
			Duplicates: g.Duplicates,
		})
	}
	for _, d := range plan.Diagnostics {
		report.Warnings = append(report.Warnings, d.Message)
	}
	return report
}
