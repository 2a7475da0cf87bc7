package cli

import (
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	out, _, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out == "" {
		t.Error("expected help output, got empty string")
	}
	if !strings.Contains(out, "chronoclean") {
		t.Error("expected help to contain 'chronoclean'")
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	// Cobra uses --version flag, not a version subcommand
	out, _, err := runCommand(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Version output should contain the version number
	if !strings.Contains(out, "1.2.3") && !strings.Contains(out, "dev") {
		t.Errorf("expected version output to contain version, got %q", out)
	}
}

func TestRootCommand_VersionAfterHelp(t *testing.T) {
	SetVersion("9.9.9")

	// --help leaves the shared root command's help flag parsed; a later
	// --version run must still print the version, not the help text.
	out, _, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("help Execute() error = %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected help output, got %q", out)
	}

	out, _, err = runCommand(t, "--version")
	if err != nil {
		t.Fatalf("version Execute() error = %v", err)
	}
	if !strings.Contains(out, "9.9.9") {
		t.Errorf("expected version output to contain 9.9.9, got %q", out)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := runCommand(t, "invalid-command")
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"normal version", "1.2.3"},
		{"empty version", ""}, // Should not change if empty
		{"dev version", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if tt.version != "" && rootCmd.Version != tt.version {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, rootCmd.Version, tt.version)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{
		"scan", "plan", "export", "config", "layouts", "version",
	}

	for _, cmd := range subcommands {
		t.Run(cmd, func(t *testing.T) {
			subCmd, _, err := rootCmd.Find([]string{cmd})
			if err != nil {
				t.Errorf("Find(%q) error = %v", cmd, err)
			}
			if subCmd == nil {
				t.Errorf("Find(%q) returned nil command", cmd)
			}
		})
	}
}
