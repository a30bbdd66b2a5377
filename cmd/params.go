package cmd

import (
	"fmt"

	"github.com/mlindgren/boxgen/gcode"
	"github.com/mlindgren/boxgen/models"
	"github.com/spf13/cobra"
)

// paramFlags binds the full print-parameter set to a command's flag set.
// Resolution order is defaults < profile file < explicitly set flags, so
// resolve() consults Changed() rather than trusting flag values blindly.
type paramFlags struct {
	p       gcode.Parameters
	profile string
}

func (f *paramFlags) register(cmd *cobra.Command) {
	d := gcode.DefaultParameters()
	f.p = d
	fl := cmd.Flags()

	fl.Float64Var(&f.p.Length, "length", d.Length, "box length along X in mm")
	fl.Float64Var(&f.p.Width, "width", d.Width, "box width along Y in mm")
	fl.Float64Var(&f.p.Height, "height", d.Height, "box height along Z in mm")
	fl.Float64Var(&f.p.LayerHeight, "layer-height", d.LayerHeight, "layer height in mm")
	fl.Float64Var(&f.p.NozzleDiameter, "nozzle-diameter", d.NozzleDiameter, "nozzle diameter in mm")
	fl.Float64Var(&f.p.LineWidth, "line-width", d.LineWidth, "extrusion line width in mm")
	fl.Float64Var(&f.p.FilamentDiameter, "filament-diameter", d.FilamentDiameter, "filament diameter in mm")
	fl.Float64Var(&f.p.BedSizeX, "bed-x", d.BedSizeX, "bed size along X in mm")
	fl.Float64Var(&f.p.BedSizeY, "bed-y", d.BedSizeY, "bed size along Y in mm")
	fl.IntVar(&f.p.ExtruderTemp, "extruder-temp", d.ExtruderTemp, "extruder temperature in °C")
	fl.IntVar(&f.p.BedTemp, "bed-temp", d.BedTemp, "bed temperature in °C")
	fl.Float64Var(&f.p.PrintSpeed, "print-speed", d.PrintSpeed, "print speed in mm/min")
	fl.Float64Var(&f.p.TravelSpeed, "travel-speed", d.TravelSpeed, "travel speed in mm/min")
	fl.Float64Var(&f.p.FirstLayerSpeed, "first-layer-speed", d.FirstLayerSpeed, "first layer speed in mm/min (0 = print speed)")
	fl.IntVar(&f.p.InfillPercentage, "infill", d.InfillPercentage, "infill percentage (0-100)")
	fl.IntVar(&f.p.PerimeterCount, "perimeters", d.PerimeterCount, "number of perimeter walls")
	fl.Float64Var(&f.p.RetractLength, "retract-length", d.RetractLength, "retraction length in mm")
	fl.Float64Var(&f.p.RetractSpeed, "retract-speed", d.RetractSpeed, "retraction speed in mm/s")
	fl.IntVar(&f.p.SkirtLines, "skirt-lines", d.SkirtLines, "number of skirt outlines (0 = none)")
	fl.Float64Var(&f.p.SkirtDistance, "skirt-distance", d.SkirtDistance, "distance from box to skirt in mm")
	fl.StringVar(&f.profile, "profile", "", "YAML profile to layer over the built-in defaults")
}

// resolve builds the final parameter record: defaults, then the profile (from
// --profile or the config's default_profile), then every flag the user set.
func (f *paramFlags) resolve(cmd *cobra.Command) (gcode.Parameters, error) {
	p := gcode.DefaultParameters()

	path := f.profile
	if path == "" && Cfg != nil {
		path = Cfg.DefaultProfile
	}
	if path != "" {
		pr, err := models.LoadProfile(path)
		if err != nil {
			return p, fmt.Errorf("failed to load profile %s: %w", path, err)
		}
		pr.ApplyTo(&p)
	}

	overrides := map[string]func(){
		"length":            func() { p.Length = f.p.Length },
		"width":             func() { p.Width = f.p.Width },
		"height":            func() { p.Height = f.p.Height },
		"layer-height":      func() { p.LayerHeight = f.p.LayerHeight },
		"nozzle-diameter":   func() { p.NozzleDiameter = f.p.NozzleDiameter },
		"line-width":        func() { p.LineWidth = f.p.LineWidth },
		"filament-diameter": func() { p.FilamentDiameter = f.p.FilamentDiameter },
		"bed-x":             func() { p.BedSizeX = f.p.BedSizeX },
		"bed-y":             func() { p.BedSizeY = f.p.BedSizeY },
		"extruder-temp":     func() { p.ExtruderTemp = f.p.ExtruderTemp },
		"bed-temp":          func() { p.BedTemp = f.p.BedTemp },
		"print-speed":       func() { p.PrintSpeed = f.p.PrintSpeed },
		"travel-speed":      func() { p.TravelSpeed = f.p.TravelSpeed },
		"first-layer-speed": func() { p.FirstLayerSpeed = f.p.FirstLayerSpeed },
		"infill":            func() { p.InfillPercentage = f.p.InfillPercentage },
		"perimeters":        func() { p.PerimeterCount = f.p.PerimeterCount },
		"retract-length":    func() { p.RetractLength = f.p.RetractLength },
		"retract-speed":     func() { p.RetractSpeed = f.p.RetractSpeed },
		"skirt-lines":       func() { p.SkirtLines = f.p.SkirtLines },
		"skirt-distance":    func() { p.SkirtDistance = f.p.SkirtDistance },
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return p, nil
}
