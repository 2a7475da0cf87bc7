package engine

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Stilmant/ChronoClean-sub001/internal/clock"
	"github.com/Stilmant/ChronoClean-sub001/internal/config"
	"github.com/Stilmant/ChronoClean-sub001/internal/dates"
	"github.com/Stilmant/ChronoClean-sub001/internal/export"
	"github.com/Stilmant/ChronoClean-sub001/internal/fsops"
	"github.com/Stilmant/ChronoClean-sub001/internal/hash"
	"github.com/Stilmant/ChronoClean-sub001/internal/scanner"
)

func newTestEngine(cfg *config.Config) *Engine {
	fixed := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	fs := fsops.NewRealFS()
	return New(fs, hash.NewSHA256Hasher(fs), clock.NewFakeClock(fixed), cfg)
}

func writeSource(t *testing.T, names map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return root
}

func TestEngine_Scan(t *testing.T) {
	root := writeSource(t, map[string]string{
		"IMG_20240315.jpg": "a",
		"notes.txt":        "b",
	})

	eng := newTestEngine(config.Default())
	result, err := eng.Scan(context.Background(), &ScanRequest{Source: root})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}
	rec := result.Records[0]
	if rec.Type != scanner.FileTypeImage {
		t.Errorf("type = %s, want image", rec.Type)
	}
	if rec.DateSource != dates.SourceFilename {
		t.Errorf("date source = %s, want filename", rec.DateSource)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !rec.Date.Equal(want) {
		t.Errorf("date = %v, want %v", rec.Date, want)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
}

func TestEngine_BuildPlan(t *testing.T) {
	t.Run("plans destinations under the layout", func(t *testing.T) {
		root := writeSource(t, map[string]string{
			"IMG_20240315.jpg": "a",
			"IMG_20231224.jpg": "b",
		})
		dest := t.TempDir()

		eng := newTestEngine(config.Default())
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: root},
			Destination: dest,
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}

		if plan.Layout != "YYYY/MM" {
			t.Errorf("layout = %q, want YYYY/MM", plan.Layout)
		}
		if len(plan.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
		}
		if plan.HasConflicts() {
			t.Errorf("unexpected conflicts: %v", plan.Conflicts)
		}

		got := plan.Destinations[filepath.Join(root, "IMG_20240315.jpg")]
		want := filepath.Join(dest, "2024", "03", "IMG_20240315.jpg")
		if got != want {
			t.Errorf("destination = %q, want %q", got, want)
		}
	})

	t.Run("rename collisions surface as conflicts", func(t *testing.T) {
		root := writeSource(t, map[string]string{
			"a/IMG_20240315.jpg": "a",
			"b/IMG_20240315.JPG": "b",
		})
		dest := t.TempDir()

		cfg := config.Default()
		cfg.Renaming.Enabled = true
		eng := newTestEngine(cfg)
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: root},
			Destination: dest,
			Rename:      true,
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}

		// Both files rename to 20240315_000000.jpg in 2024/03.
		if !plan.HasConflicts() {
			t.Fatal("expected a rename collision")
		}
		if len(plan.Conflicts) != 1 {
			t.Fatalf("expected 1 conflict, got %d", len(plan.Conflicts))
		}
		c := plan.Conflicts[0]
		if filepath.Base(c.Destination) != "20240315_000000.jpg" {
			t.Errorf("conflict destination = %q", c.Destination)
		}
	})

	t.Run("rename pattern escaping the destination is rejected", func(t *testing.T) {
		root := writeSource(t, map[string]string{"IMG_20240315.jpg": "a"})
		dest := t.TempDir()

		cfg := config.Default()
		cfg.Renaming.Pattern = "../{date}"
		eng := newTestEngine(cfg)
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: root},
			Destination: dest,
			Rename:      true,
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}

		if len(plan.Diagnostics) != 1 {
			t.Fatalf("expected 1 diagnostic, got %d", len(plan.Diagnostics))
		}
		if len(plan.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(plan.Entries))
		}
		// The traversal name is discarded and the source filename kept.
		if got := filepath.Base(plan.Entries[0].Destination); got != "IMG_20240315.jpg" {
			t.Errorf("destination base = %q, want IMG_20240315.jpg", got)
		}
	})

	t.Run("unknown layout degrades with diagnostic", func(t *testing.T) {
		root := writeSource(t, map[string]string{"IMG_20240315.jpg": "a"})
		dest := t.TempDir()

		eng := newTestEngine(config.Default())
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: root},
			Destination: dest,
			Layout:      "bogus",
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}

		if len(plan.Diagnostics) != 1 {
			t.Fatalf("expected 1 diagnostic, got %d", len(plan.Diagnostics))
		}
		if plan.Layout != "YYYY/MM" {
			t.Errorf("resolved layout = %q, want YYYY/MM", plan.Layout)
		}
	})

	t.Run("duplicate detection groups identical content", func(t *testing.T) {
		root := writeSource(t, map[string]string{
			"IMG_20240315.jpg": "same bytes",
			"IMG_20240316.jpg": "same bytes",
			"IMG_20240317.jpg": "different",
		})
		dest := t.TempDir()

		eng := newTestEngine(config.Default())
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest:     ScanRequest{Source: root},
			Destination:     dest,
			CheckDuplicates: true,
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}

		if len(plan.DuplicateGroups) != 1 {
			t.Fatalf("expected 1 duplicate group, got %d", len(plan.DuplicateGroups))
		}
		g := plan.DuplicateGroups[0]
		if len(g.Duplicates) != 1 {
			t.Errorf("expected 1 duplicate, got %v", g.Duplicates)
		}
	})

	t.Run("missing destination is an error", func(t *testing.T) {
		eng := newTestEngine(config.Default())
		_, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: t.TempDir()},
		})
		if !errors.Is(err, ErrNoDestination) {
			t.Errorf("expected ErrNoDestination, got %v", err)
		}
	})

	t.Run("config destination is the fallback", func(t *testing.T) {
		root := writeSource(t, map[string]string{"IMG_20240315.jpg": "a"})
		dest := t.TempDir()

		cfg := config.Default()
		cfg.Paths.Destination = dest
		eng := newTestEngine(cfg)
		plan, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: root},
		})
		if err != nil {
			t.Fatalf("BuildPlan failed: %v", err)
		}
		if plan.DestinationRoot != dest {
			t.Errorf("destination root = %q, want %q", plan.DestinationRoot, dest)
		}
	})

	t.Run("missing source propagates scanner error", func(t *testing.T) {
		eng := newTestEngine(config.Default())
		_, err := eng.BuildPlan(context.Background(), &PlanRequest{
			ScanRequest: ScanRequest{Source: filepath.Join(t.TempDir(), "nope")},
			Destination: t.TempDir(),
		})
		if !errors.Is(err, scanner.ErrSourceMissing) {
			t.Errorf("expected ErrSourceMissing, got %v", err)
		}
	})
}

func TestEngine_Export(t *testing.T) {
	t.Run("writes a json report to the requested path", func(t *testing.T) {
		root := writeSource(t, map[string]string{"IMG_20240315.jpg": "a"})
		dest := t.TempDir()
		out := filepath.Join(t.TempDir(), "report.json")

		eng := newTestEngine(config.Default())
		path, plan, err := eng.Export(context.Background(), &ExportRequest{
			PlanRequest: PlanRequest{
				ScanRequest: ScanRequest{Source: root},
				Destination: dest,
			},
			Format:     "json",
			OutputPath: out,
		})
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		if path != out {
			t.Errorf("path = %q, want %q", path, out)
		}
		if plan == nil || len(plan.Entries) != 1 {
			t.Fatalf("unexpected plan result: %+v", plan)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading report failed: %v", err)
		}
		var report export.Report
		if err := json.Unmarshal(data, &report); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if report.FileCount != 1 {
			t.Errorf("file_count = %d, want 1", report.FileCount)
		}
		if report.Layout != "YYYY/MM" {
			t.Errorf("layout = %q, want YYYY/MM", report.Layout)
		}
	})

	t.Run("unknown format is rejected before scanning", func(t *testing.T) {
		eng := newTestEngine(config.Default())
		_, _, err := eng.Export(context.Background(), &ExportRequest{
			PlanRequest: PlanRequest{
				ScanRequest: ScanRequest{Source: "/does/not/matter"},
				Destination: "/out",
			},
			Format: "xml",
		})
		if !errors.Is(err, export.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}
