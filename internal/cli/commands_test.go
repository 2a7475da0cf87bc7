package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupTestEnv creates a source tree and chdirs into a scratch directory so
// relative output paths stay inside the test sandbox.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	sourceDir := filepath.Join(tmpDir, "photos")
	if err := os.MkdirAll(sourceDir, 0755); err != nil {
		t.Fatalf("Failed to create source dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sourceDir, "IMG_20240315.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})

	return sourceDir
}

// resetCommandFlags restores every parsed flag in the command tree to its
// default value. The root command is package state shared across tests, and
// cobra remembers flags like --help between Execute calls otherwise.
func resetCommandFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCommandFlags(sub)
	}
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetCommandFlags(rootCmd)
	rootCmd.SetArgs(args)
	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)
	err := rootCmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

func TestScanCommand_MissingSource(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCommand(t, "scan")
	if err == nil {
		t.Error("expected error when no source is configured")
	}
}

func TestScanCommand_Source(t *testing.T) {
	sourceDir := setupTestEnv(t)

	_, _, err := runCommand(t, "scan", sourceDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
}

func TestPlanCommand_RequiresDestination(t *testing.T) {
	sourceDir := setupTestEnv(t)

	_, _, err := runCommand(t, "plan", sourceDir)
	if err == nil {
		t.Error("expected error when no destination is configured")
	}
}

func TestPlanCommand_WithDestination(t *testing.T) {
	sourceDir := setupTestEnv(t)

	_, _, err := runCommand(t, "plan", sourceDir, "--dest", "sorted")
	if err != nil {
		t.Fatalf("plan failed: %v", err)
	}
}

func TestExportCommand_WritesReport(t *testing.T) {
	sourceDir := setupTestEnv(t)

	out := filepath.Join(t.TempDir(), "report.json")
	_, _, err := runCommand(t, "export", sourceDir, "--dest", "sorted", "--output", out)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected report at %s: %v", out, err)
	}
}

func TestConfigInitCommand(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat("chronoclean.yaml"); err != nil {
		t.Errorf("expected chronoclean.yaml: %v", err)
	}

	// A second init without --force must refuse to overwrite.
	_, _, err = runCommand(t, "config", "init")
	if err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestLayoutsCommand(t *testing.T) {
	_, _, err := runCommand(t, "layouts")
	if err != nil {
		t.Fatalf("layouts failed: %v", err)
	}
}
