package gcode

import (
	"math"
	"testing"
)

func TestExtrusion(t *testing.T) {
	set, err := Normalize(DefaultParameters())
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	// 100 mm of path at 0.2 x 0.4 mm deposits 8 mm^3; 2.85 mm filament has a
	// cross section of pi * 1.425^2.
	want := 8.0 / (math.Pi * 1.425 * 1.425)
	if got := set.Extrusion(100); math.Abs(got-want) > 1e-9 {
		t.Errorf("Extrusion(100) = %.9f, want %.9f", got, want)
	}

	if got := set.Extrusion(0); got != 0 {
		t.Errorf("Extrusion(0) = %f, want 0", got)
	}

	// Linear in distance.
	if got, want := set.Extrusion(50)*2, set.Extrusion(100); math.Abs(got-want) > 1e-12 {
		t.Errorf("Extrusion not linear: 2*E(50)=%f, E(100)=%f", got, want)
	}
}
