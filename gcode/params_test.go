package gcode

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mlindgren/boxgen/geometry"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

func TestNormalizeDefaults(t *testing.T) {
	set, err := Normalize(DefaultParameters())
	if err != nil {
		t.Fatalf("Normalize(defaults) returned error: %v", err)
	}

	if set.LayerCount != 250 {
		t.Errorf("LayerCount = %d, want 250", set.LayerCount)
	}
	wantFoot := geometry.Rect{
		Min: geometry.Point{X: 82.5, Y: 82.5},
		Max: geometry.Point{X: 132.5, Y: 132.5},
	}
	if diff := cmp.Diff(wantFoot, set.Footprint, approx); diff != "" {
		t.Errorf("Footprint mismatch: %s", diff)
	}
	if diff := cmp.Diff(geometry.Point{X: 107.5, Y: 107.5}, set.Footprint.Center(), approx); diff != "" {
		t.Errorf("Footprint centroid mismatch: %s", diff)
	}
	if set.InfillSpacing() != 2 {
		t.Errorf("InfillSpacing = %f, want 2", set.InfillSpacing())
	}
}

func TestNormalizeLayerCounts(t *testing.T) {
	tests := []struct {
		name        string
		height      float64
		layerHeight float64
		want        int
	}{
		{"cube", 50, 0.2, 250},
		{"80x60x40", 40, 0.2, 200},
		{"thin plate", 2, 0.1, 20},
		{"rounds up", 1.05, 0.2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			p.Height = tt.height
			p.LayerHeight = tt.layerHeight
			set, err := Normalize(p)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if set.LayerCount != tt.want {
				t.Errorf("LayerCount = %d, want %d", set.LayerCount, tt.want)
			}
		})
	}
}

func TestNormalizeFirstLayerSpeedDefault(t *testing.T) {
	p := DefaultParameters()
	p.FirstLayerSpeed = 0
	set, err := Normalize(p)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if set.FirstLayerSpeed != p.PrintSpeed {
		t.Errorf("FirstLayerSpeed = %f, want PrintSpeed %f", set.FirstLayerSpeed, p.PrintSpeed)
	}
}

func TestNormalizeInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"zero length", func(p *Parameters) { p.Length = 0 }, "length"},
		{"negative height", func(p *Parameters) { p.Height = -10 }, "height"},
		{"zero layer height", func(p *Parameters) { p.LayerHeight = 0 }, "layer_height"},
		{"infill over 100", func(p *Parameters) { p.InfillPercentage = 150 }, "infill_percentage"},
		{"negative infill", func(p *Parameters) { p.InfillPercentage = -1 }, "infill_percentage"},
		{"no perimeters", func(p *Parameters) { p.PerimeterCount = 0 }, "perimeter_count"},
		{"negative skirt lines", func(p *Parameters) { p.SkirtLines = -1 }, "skirt_lines"},
		{"line width too thin", func(p *Parameters) { p.LineWidth = 0.3 }, "line_width"},
		{"height below one layer", func(p *Parameters) { p.Height = 0.05 }, "height"},
		{"zero retract length", func(p *Parameters) { p.RetractLength = 0 }, "retract_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			_, err := Normalize(p)
			var perr *ParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("Normalize error = %v, want *ParameterError", err)
			}
			if perr.Field != tt.field {
				t.Errorf("error field = %q, want %q", perr.Field, tt.field)
			}
		})
	}
}

func TestNormalizeInfeasibleGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"box wider than bed", func(p *Parameters) { p.Length = 300 }, "length"},
		{"box deeper than bed", func(p *Parameters) { p.Width = 300 }, "width"},
		{"skirt off the bed", func(p *Parameters) { p.Length = 210; p.Width = 210 }, "skirt_distance"},
		{"walls eat the interior", func(p *Parameters) { p.Length = 3; p.Width = 3; p.PerimeterCount = 4 }, "perimeter_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			_, err := Normalize(p)
			var gerr *GeometryError
			if !errors.As(err, &gerr) {
				t.Fatalf("Normalize error = %v, want *GeometryError", err)
			}
			if gerr.Field != tt.field {
				t.Errorf("error field = %q, want %q", gerr.Field, tt.field)
			}
		})
	}
}

func TestInterior(t *testing.T) {
	p := DefaultParameters()
	p.Length = 80
	p.Width = 60
	p.Height = 40
	p.InfillPercentage = 15
	p.PerimeterCount = 3
	set, err := Normalize(p)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	want := geometry.Rect{
		Min: geometry.Point{X: 107.5 - 40 + 1.2, Y: 107.5 - 30 + 1.2},
		Max: geometry.Point{X: 107.5 + 40 - 1.2, Y: 107.5 + 30 - 1.2},
	}
	if diff := cmp.Diff(want, set.Interior(), approx); diff != "" {
		t.Errorf("Interior mismatch: %s", diff)
	}
	if got := set.InfillSpacing(); math.Abs(got-0.4*100/15) > 1e-9 {
		t.Errorf("InfillSpacing = %f, want %f", got, 0.4*100/15)
	}
}
