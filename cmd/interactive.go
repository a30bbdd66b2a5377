package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isInteractiveAllowed returns true when the process is attached to a TTY
// suitable for prompting.
func isInteractiveAllowed() bool {
	// Require stdin, stdout, and stderr to be terminals and TERM to be sane
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "" || term == "dumb" {
		return false
	}
	return true
}

// promptDimension asks for one positive dimension in mm.
func promptDimension(label string, def float64) (float64, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.FormatFloat(def, 'f', -1, 64),
		Validate: func(input string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
			if err != nil {
				return fmt.Errorf("enter a number in mm")
			}
			if v <= 0 {
				return fmt.Errorf("must be positive")
			}
			return nil
		},
	}
	out, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(out), 64)
}

var interactiveFlags paramFlags

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for box dimensions and generate",
	Long: `Interactive asks for the box dimensions and the output filename, then
generates the program. All other settings come from the usual default,
profile, and flag resolution.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractiveAllowed() {
			return fmt.Errorf("interactive mode needs a terminal; use generate with flags instead")
		}

		p, err := interactiveFlags.resolve(cmd)
		if err != nil {
			return err
		}

		if p.Length, err = promptDimension("Length (X) in mm", p.Length); err != nil {
			return promptErr(err)
		}
		if p.Width, err = promptDimension("Width (Y) in mm", p.Width); err != nil {
			return promptErr(err)
		}
		if p.Height, err = promptDimension("Height (Z) in mm", p.Height); err != nil {
			return promptErr(err)
		}

		namePrompt := promptui.Prompt{
			Label:   "Output file",
			Default: "box.gcode",
		}
		out, err := namePrompt.Run()
		if err != nil {
			return promptErr(err)
		}

		res, err := writeProgram(out, p)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s: %d layers, %.2f m filament, ~%s\n", out, res.Layers, res.FilamentUsed/1000, formatDuration(res.Seconds))

		return nil
	},
}

// promptErr maps a canceled prompt to a quiet error.
func promptErr(err error) error {
	if err == promptui.ErrInterrupt || err == promptui.ErrAbort {
		return fmt.Errorf("canceled")
	}
	return err
}

//nolint:gochecknoinits
func init() {
	interactiveFlags.register(interactiveCmd)
	rootCmd.AddCommand(interactiveCmd)
}
