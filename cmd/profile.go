package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mlindgren/boxgen/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage print profile files",
}

var profileNewCmd = &cobra.Command{
	Use:   "new [filename]",
	Short: "Create a template profile file with the stock defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "profile.yaml"
		if len(args) > 0 {
			filename = args[0]
			if !strings.HasSuffix(filename, ".yaml") && !strings.HasSuffix(filename, ".yml") {
				filename += ".yaml"
			}
		}

		name := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(filename), ".yaml"), ".yml")

		// Refuse to clobber an existing profile.
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("file %s already exists", filename)
		}

		out, err := yaml.Marshal(models.TemplateProfile(name))
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}

		if err := os.WriteFile(filename, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}

		color.Green("Created %s", filename)
		fmt.Println("Edit it and pass --profile to generate, or set default_profile in config.json.")

		return nil
	},
}

//nolint:gochecknoinits
func init() {
	profileCmd.AddCommand(profileNewCmd)
	rootCmd.AddCommand(profileCmd)
}
