package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mlindgren/boxgen/gcode"
	"github.com/spf13/cobra"
)

var generateFlags paramFlags

var generateCmd = &cobra.Command{
	Use:   "generate [output-file]",
	Short: "Generate a G-code file for a box",
	Long: `Generate writes a complete G-code program for a rectangular box to the
given file (default box.gcode). Parameters come from the built-in defaults,
overlaid with an optional YAML profile and any flags set on the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := generateFlags.resolve(cmd)
		if err != nil {
			return err
		}

		out := "box.gcode"
		if len(args) > 0 {
			out = args[0]
		}
		if Cfg != nil && Cfg.OutputDir != "" && !filepath.IsAbs(out) {
			out = filepath.Join(Cfg.OutputDir, out)
		}

		res, err := writeProgram(out, p)
		if err != nil {
			return err
		}

		color.Green("Wrote %s", out)
		fmt.Printf("  box:      %gx%gx%g mm\n", p.Length, p.Width, p.Height)
		fmt.Printf("  layers:   %d\n", res.Layers)
		fmt.Printf("  filament: %.2f m\n", res.FilamentUsed/1000)
		fmt.Printf("  time:     ~%s\n", formatDuration(res.Seconds))

		return nil
	},
}

// writeProgram generates into path, removing the file again if generation
// fails partway so no truncated program is left behind.
func writeProgram(path string, p gcode.Parameters) (*gcode.Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	res, genErr := gcode.Generate(f, p)
	closeErr := f.Close()
	if genErr != nil {
		os.Remove(path)
		return nil, genErr
	}
	if closeErr != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write %s: %w", path, closeErr)
	}

	return res, nil
}

// formatDuration renders a rough print-time estimate like "1h23m".
func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Minute)
	if d < time.Minute {
		return "under a minute"
	}
	return d.String()
}

//nolint:gochecknoinits
func init() {
	generateFlags.register(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
