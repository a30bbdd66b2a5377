// Package models defines the on-disk file formats boxgen reads and writes,
// chiefly the YAML print profile.
package models

import (
	"fmt"
	"os"

	"github.com/mlindgren/boxgen/gcode"
	"gopkg.in/yaml.v3"
)

// Profile is a partial parameter set loaded from a YAML file. Every field is
// optional; absent fields keep whatever value the parameters already carry,
// so profiles can layer over the built-in defaults and under command-line
// flags.
type Profile struct {
	Name string `yaml:"name,omitempty"`

	Length *float64 `yaml:"length,omitempty"`
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`

	LayerHeight      *float64 `yaml:"layer_height,omitempty"`
	NozzleDiameter   *float64 `yaml:"nozzle_diameter,omitempty"`
	LineWidth        *float64 `yaml:"line_width,omitempty"`
	FilamentDiameter *float64 `yaml:"filament_diameter,omitempty"`

	BedSizeX *float64 `yaml:"bed_size_x,omitempty"`
	BedSizeY *float64 `yaml:"bed_size_y,omitempty"`

	ExtruderTemp *int `yaml:"extruder_temp,omitempty"`
	BedTemp      *int `yaml:"bed_temp,omitempty"`

	PrintSpeed      *float64 `yaml:"print_speed,omitempty"`
	TravelSpeed     *float64 `yaml:"travel_speed,omitempty"`
	FirstLayerSpeed *float64 `yaml:"first_layer_speed,omitempty"`

	InfillPercentage *int `yaml:"infill_percentage,omitempty"`
	PerimeterCount   *int `yaml:"perimeter_count,omitempty"`

	RetractLength *float64 `yaml:"retract_length,omitempty"`
	RetractSpeed  *float64 `yaml:"retract_speed,omitempty"`

	SkirtLines    *int     `yaml:"skirt_lines,omitempty"`
	SkirtDistance *float64 `yaml:"skirt_distance,omitempty"`
}

// LoadProfile reads and parses a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("yaml profile parsing error: %w", err)
	}

	return &p, nil
}

// ApplyTo copies every field the profile sets onto params.
func (pr *Profile) ApplyTo(params *gcode.Parameters) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&params.Length, pr.Length)
	setF(&params.Width, pr.Width)
	setF(&params.Height, pr.Height)
	setF(&params.LayerHeight, pr.LayerHeight)
	setF(&params.NozzleDiameter, pr.NozzleDiameter)
	setF(&params.LineWidth, pr.LineWidth)
	setF(&params.FilamentDiameter, pr.FilamentDiameter)
	setF(&params.BedSizeX, pr.BedSizeX)
	setF(&params.BedSizeY, pr.BedSizeY)
	setI(&params.ExtruderTemp, pr.ExtruderTemp)
	setI(&params.BedTemp, pr.BedTemp)
	setF(&params.PrintSpeed, pr.PrintSpeed)
	setF(&params.TravelSpeed, pr.TravelSpeed)
	setF(&params.FirstLayerSpeed, pr.FirstLayerSpeed)
	setI(&params.InfillPercentage, pr.InfillPercentage)
	setI(&params.PerimeterCount, pr.PerimeterCount)
	setF(&params.RetractLength, pr.RetractLength)
	setF(&params.RetractSpeed, pr.RetractSpeed)
	setI(&params.SkirtLines, pr.SkirtLines)
	setF(&params.SkirtDistance, pr.SkirtDistance)
}

// TemplateProfile returns a profile pre-filled with the stock defaults, used
// by `boxgen profile new` to write a starting point worth editing.
func TemplateProfile(name string) *Profile {
	d := gcode.DefaultParameters()
	return &Profile{
		Name:             name,
		Length:           &d.Length,
		Width:            &d.Width,
		Height:           &d.Height,
		LayerHeight:      &d.LayerHeight,
		NozzleDiameter:   &d.NozzleDiameter,
		LineWidth:        &d.LineWidth,
		FilamentDiameter: &d.FilamentDiameter,
		BedSizeX:         &d.BedSizeX,
		BedSizeY:         &d.BedSizeY,
		ExtruderTemp:     &d.ExtruderTemp,
		BedTemp:          &d.BedTemp,
		PrintSpeed:       &d.PrintSpeed,
		TravelSpeed:      &d.TravelSpeed,
		FirstLayerSpeed:  &d.FirstLayerSpeed,
		InfillPercentage: &d.InfillPercentage,
		PerimeterCount:   &d.PerimeterCount,
		RetractLength:    &d.RetractLength,
		RetractSpeed:     &d.RetractSpeed,
		SkirtLines:       &d.SkirtLines,
		SkirtDistance:    &d.SkirtDistance,
	}
}
