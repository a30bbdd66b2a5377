package gcode

import (
	"fmt"
	"io"

	"github.com/mlindgren/boxgen/geometry"
)

// Result summarizes a finished program.
type Result struct {
	Layers       int
	FilamentUsed float64 // mm of filament fed, net of retractions
	ExtrudeDist  float64 // mm of extruded toolpath
	TravelDist   float64 // mm of non-extruding moves
	Seconds      float64 // rough time estimate from commanded feedrates
}

// Generate writes the complete G-code program for p to w. Parameters are
// validated up front, so nothing is written when an invalid or infeasible
// record is rejected. A failing sink aborts generation and the underlying
// write error is returned; the partial stream is the caller's to discard.
func Generate(w io.Writer, p Parameters) (*Result, error) {
	set, err := Normalize(p)
	if err != nil {
		return nil, err
	}

	gw := newWriter(w)
	em := newEmitter(gw, set)

	preamble(gw, set)
	for n := 0; n < set.LayerCount; n++ {
		em.layer(n, planLayer(set, n))
	}
	postamble(gw, em)

	if gw.err != nil {
		return nil, fmt.Errorf("writing G-code: %w", gw.err)
	}
	return &Result{
		Layers:       set.LayerCount,
		FilamentUsed: em.e,
		ExtrudeDist:  em.extrudeDist,
		TravelDist:   em.travelDist,
		Seconds:      em.seconds,
	}, nil
}

// planLayer returns the ordered polylines for one layer: skirt (layer 0
// only), then perimeters outermost-in, then infill with per-layer alternating
// orientation.
func planLayer(set *Settings, index int) []geometry.Polyline {
	var lines []geometry.Polyline
	if index == 0 {
		lines = append(lines, geometry.SkirtRings(set.Footprint, set.SkirtLines, set.SkirtDistance, set.LineWidth)...)
	}
	lines = append(lines, geometry.PerimeterRings(set.Footprint, set.PerimeterCount, set.LineWidth)...)
	if spacing := set.InfillSpacing(); spacing > 0 {
		vertical := index%2 == 1
		lines = append(lines, geometry.InfillLines(set.Interior(), spacing, set.LineWidth, vertical)...)
	}
	return lines
}

// preamble writes the machine start sequence: units, absolute modes, heating
// with wait, homing and fan. The skirt acts as the prime line; there is no
// separate prime move.
func preamble(w *writer, set *Settings) {
	w.comment("generated by boxgen")
	w.comment("box: %gx%gx%g mm, centered on %gx%g mm bed", set.Length, set.Width, set.Height, set.BedSizeX, set.BedSizeY)
	w.comment("layer height %g mm, line width %g mm, %d layers", set.LayerHeight, set.LineWidth, set.LayerCount)
	w.line("G21")
	w.line("G90")
	w.line("M82")
	w.line("G92 E0")
	w.comment("heat and wait")
	w.line("M140 S%d", set.BedTemp)
	w.line("M190 S%d", set.BedTemp)
	w.line("M104 S%d", set.ExtruderTemp)
	w.line("M109 S%d", set.ExtruderTemp)
	w.comment("home")
	w.line("G28")
	w.line("M106 S255")
}

// postamble writes the end sequence: final retract, lift, park at the rear
// left corner, heaters and fan off, steppers off.
func postamble(w *writer, em *emitter) {
	w.comment("end of print")
	em.retract()
	w.line("G1 Z%s F%s", num(em.set.Height+10), feed(em.set.TravelSpeed))
	w.line("G1 X%s Y%s F%s", num(0), num(em.set.BedSizeY), feed(em.set.TravelSpeed))
	w.line("M104 S0")
	w.line("M140 S0")
	w.line("M106 S0")
	w.line("M84")
}
