package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mlindgren/boxgen/gcode"
	"github.com/spf13/cobra"
)

var infoFlags paramFlags

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved parameters and print estimates without writing a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := infoFlags.resolve(cmd)
		if err != nil {
			return err
		}

		set, err := gcode.Normalize(p)
		if err != nil {
			return err
		}

		// Run the full generation against a discarded sink to get honest
		// totals instead of re-deriving them here.
		res, err := gcode.Generate(io.Discard, p)
		if err != nil {
			return err
		}

		color.Cyan("Box %gx%gx%g mm on %gx%g mm bed", set.Length, set.Width, set.Height, set.BedSizeX, set.BedSizeY)
		fmt.Printf("  footprint:      (%.2f, %.2f) to (%.2f, %.2f)\n",
			set.Footprint.Min.X, set.Footprint.Min.Y, set.Footprint.Max.X, set.Footprint.Max.Y)
		fmt.Printf("  layers:         %d at %g mm\n", set.LayerCount, set.LayerHeight)
		fmt.Printf("  perimeters:     %d walls of %g mm\n", set.PerimeterCount, set.LineWidth)
		if spacing := set.InfillSpacing(); spacing > 0 {
			fmt.Printf("  infill:         %d%% (%.3f mm spacing)\n", set.InfillPercentage, spacing)
		} else {
			fmt.Printf("  infill:         none\n")
		}
		if set.SkirtLines > 0 {
			fmt.Printf("  skirt:          %d lines, %g mm away\n", set.SkirtLines, set.SkirtDistance)
		} else {
			fmt.Printf("  skirt:          none\n")
		}
		fmt.Printf("  temperatures:   extruder %d °C, bed %d °C\n", set.ExtruderTemp, set.BedTemp)
		fmt.Printf("  filament:       %.2f m (%.1f mm extruded path)\n", res.FilamentUsed/1000, res.ExtrudeDist)
		fmt.Printf("  travel:         %.1f mm\n", res.TravelDist)
		fmt.Printf("  estimated time: ~%s\n", formatDuration(res.Seconds))

		return nil
	},
}

//nolint:gochecknoinits
func init() {
	infoFlags.register(infoCmd)
	rootCmd.AddCommand(infoCmd)
}
