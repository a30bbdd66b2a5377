package models

import (
	"testing"

	"github.com/mlindgren/boxgen/gcode"
	"gopkg.in/yaml.v3"
)

func TestProfileApplyTo(t *testing.T) {
	src := `
name: test box
length: 80
width: 60
infill_percentage: 15
perimeter_count: 3
skirt_lines: 0
`
	var pr Profile
	if err := yaml.Unmarshal([]byte(src), &pr); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	p := gcode.DefaultParameters()
	pr.ApplyTo(&p)

	if p.Length != 80 || p.Width != 60 {
		t.Errorf("dimensions = %gx%g, want 80x60", p.Length, p.Width)
	}
	if p.InfillPercentage != 15 {
		t.Errorf("InfillPercentage = %d, want 15", p.InfillPercentage)
	}
	if p.PerimeterCount != 3 {
		t.Errorf("PerimeterCount = %d, want 3", p.PerimeterCount)
	}
	// Explicit zero must override the default, unlike an absent field.
	if p.SkirtLines != 0 {
		t.Errorf("SkirtLines = %d, want 0", p.SkirtLines)
	}
	// Unset fields keep the defaults.
	if p.Height != 50 {
		t.Errorf("Height = %g, want default 50", p.Height)
	}
	if p.LayerHeight != 0.2 {
		t.Errorf("LayerHeight = %g, want default 0.2", p.LayerHeight)
	}
}

func TestTemplateProfileRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(TemplateProfile("sample"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var pr Profile
	if err := yaml.Unmarshal(out, &pr); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	p := gcode.DefaultParameters()
	pr.ApplyTo(&p)
	if p != gcode.DefaultParameters() {
		t.Errorf("template does not reproduce the defaults: %+v", p)
	}
}
