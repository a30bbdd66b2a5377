// Package gcode turns a box description plus printer and material parameters
// into a Marlin/RepRap G-code program. Path geometry comes from the geometry
// package; this package owns parameter validation, extrusion math, and the
// stateful motion emitter.
package gcode

import (
	"fmt"
	"math"

	"github.com/mlindgren/boxgen/geometry"
)

// Parameters describes one box print job. Dimensions and distances are in
// millimeters, temperatures in °C, speeds in mm/min except RetractSpeed which
// is mm/s (the Marlin convention for retraction settings).
type Parameters struct {
	Length float64
	Width  float64
	Height float64

	LayerHeight      float64
	NozzleDiameter   float64
	LineWidth        float64
	FilamentDiameter float64

	BedSizeX float64
	BedSizeY float64

	ExtruderTemp int
	BedTemp      int

	PrintSpeed      float64
	TravelSpeed     float64
	FirstLayerSpeed float64 // 0 or negative means "use PrintSpeed"

	InfillPercentage int
	PerimeterCount   int

	RetractLength float64
	RetractSpeed  float64

	SkirtLines    int
	SkirtDistance float64
}

// DefaultParameters returns the stock profile: a 50 mm cube on a 215x215 bed
// with 2.85 mm filament and conservative speeds.
func DefaultParameters() Parameters {
	return Parameters{
		Length:           50,
		Width:            50,
		Height:           50,
		LayerHeight:      0.2,
		NozzleDiameter:   0.4,
		LineWidth:        0.4,
		FilamentDiameter: 2.85,
		BedSizeX:         215,
		BedSizeY:         215,
		ExtruderTemp:     210,
		BedTemp:          60,
		PrintSpeed:       1500,
		TravelSpeed:      3000,
		FirstLayerSpeed:  1000,
		InfillPercentage: 20,
		PerimeterCount:   2,
		RetractLength:    4.5,
		RetractSpeed:     25,
		SkirtLines:       3,
		SkirtDistance:    5,
	}
}

// ParameterError reports a parameter that fails validation. No output is
// produced when Normalize returns one.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// GeometryError reports a parameter set that validates individually but
// cannot be printed: the part (or its skirt) does not fit the bed, or the
// walls consume the whole interior.
type GeometryError struct {
	Field  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry infeasible (%s): %s", e.Field, e.Reason)
}

// Settings is a validated parameter set plus everything derived from it. It
// is immutable after Normalize.
type Settings struct {
	Parameters

	Footprint  geometry.Rect
	LayerCount int
}

// Normalize validates p, fills the first-layer speed default, and derives the
// bed-centered footprint and layer count.
func Normalize(p Parameters) (*Settings, error) {
	positive := []struct {
		name  string
		value float64
	}{
		{"length", p.Length},
		{"width", p.Width},
		{"height", p.Height},
		{"layer_height", p.LayerHeight},
		{"nozzle_diameter", p.NozzleDiameter},
		{"line_width", p.LineWidth},
		{"filament_diameter", p.FilamentDiameter},
		{"bed_size_x", p.BedSizeX},
		{"bed_size_y", p.BedSizeY},
		{"extruder_temp", float64(p.ExtruderTemp)},
		{"bed_temp", float64(p.BedTemp)},
		{"print_speed", p.PrintSpeed},
		{"travel_speed", p.TravelSpeed},
		{"retract_length", p.RetractLength},
		{"retract_speed", p.RetractSpeed},
		{"skirt_distance", p.SkirtDistance},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return nil, &ParameterError{Field: f.name, Reason: "must be positive"}
		}
	}

	if p.InfillPercentage < 0 || p.InfillPercentage > 100 {
		return nil, &ParameterError{Field: "infill_percentage", Reason: "must be between 0 and 100"}
	}
	if p.PerimeterCount < 1 {
		return nil, &ParameterError{Field: "perimeter_count", Reason: "must be at least 1"}
	}
	if p.SkirtLines < 0 {
		return nil, &ParameterError{Field: "skirt_lines", Reason: "must not be negative"}
	}
	if p.LineWidth < 0.8*p.NozzleDiameter {
		return nil, &ParameterError{
			Field:  "line_width",
			Reason: fmt.Sprintf("must be at least 80%% of the nozzle diameter (%.2f)", p.NozzleDiameter),
		}
	}

	if p.FirstLayerSpeed <= 0 {
		p.FirstLayerSpeed = p.PrintSpeed
	}

	layers := int(math.Round(p.Height / p.LayerHeight))
	if layers < 1 {
		return nil, &ParameterError{Field: "height", Reason: "must cover at least one layer"}
	}

	bed := geometry.Rect{Max: geometry.Point{X: p.BedSizeX, Y: p.BedSizeY}}
	footprint := geometry.CenteredRect(bed.Center(), p.Length, p.Width)
	if !bed.Contains(footprint) {
		field := "length"
		if p.Length <= p.BedSizeX {
			field = "width"
		}
		return nil, &GeometryError{
			Field:  field,
			Reason: fmt.Sprintf("%gx%g mm box does not fit a %gx%g mm bed", p.Length, p.Width, p.BedSizeX, p.BedSizeY),
		}
	}
	if p.SkirtLines > 0 {
		extent := p.SkirtDistance + float64(p.SkirtLines)*p.LineWidth
		if !bed.Contains(footprint.Outset(extent)) {
			return nil, &GeometryError{
				Field:  "skirt_distance",
				Reason: "skirt extends beyond the bed",
			}
		}
	}
	if walls := float64(p.PerimeterCount) * p.LineWidth; walls >= math.Min(p.Length, p.Width)/2 {
		return nil, &GeometryError{
			Field:  "perimeter_count",
			Reason: fmt.Sprintf("%d walls of %g mm leave no interior in a %gx%g mm box", p.PerimeterCount, p.LineWidth, p.Length, p.Width),
		}
	}

	return &Settings{
		Parameters: p,
		Footprint:  footprint,
		LayerCount: layers,
	}, nil
}

// InfillSpacing returns the center-to-center distance between infill lines,
// or 0 when infill is disabled.
func (s *Settings) InfillSpacing() float64 {
	if s.InfillPercentage <= 0 {
		return 0
	}
	return s.LineWidth * 100 / float64(s.InfillPercentage)
}

// Interior returns the region left for infill inside the innermost perimeter.
func (s *Settings) Interior() geometry.Rect {
	return s.Footprint.Inset(float64(s.PerimeterCount) * s.LineWidth)
}
