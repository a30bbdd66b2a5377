package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCommand() (*cobra.Command, *paramFlags) {
	var flags paramFlags
	cmd := &cobra.Command{Use: "test", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	flags.register(cmd)
	return cmd, &flags
}

func TestResolveDefaults(t *testing.T) {
	cmd, flags := newTestCommand()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	p, err := flags.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if p.Length != 50 || p.InfillPercentage != 20 || p.SkirtLines != 3 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestResolveFlagsOverrideProfile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "box.yaml")
	content := "length: 80\nwidth: 60\nheight: 40\ninfill_percentage: 15\n"
	if err := os.WriteFile(profile, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp profile: %v", err)
	}

	cmd, flags := newTestCommand()
	cmd.SetArgs([]string{"--profile", profile, "--length", "100"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	p, err := flags.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	// Flag beats profile, profile beats default, default fills the rest.
	if p.Length != 100 {
		t.Errorf("Length = %g, want flag value 100", p.Length)
	}
	if p.Width != 60 || p.Height != 40 {
		t.Errorf("profile values not applied: %gx%g", p.Width, p.Height)
	}
	if p.InfillPercentage != 15 {
		t.Errorf("InfillPercentage = %d, want 15", p.InfillPercentage)
	}
	if p.PerimeterCount != 2 {
		t.Errorf("PerimeterCount = %d, want default 2", p.PerimeterCount)
	}
}

func TestResolveMissingProfile(t *testing.T) {
	cmd, flags := newTestCommand()
	cmd.SetArgs([]string{"--profile", filepath.Join(t.TempDir(), "nope.yaml")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	if _, err := flags.resolve(cmd); err == nil {
		t.Error("expected error for missing profile, got nil")
	}
}
