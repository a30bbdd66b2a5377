package gcode

import "github.com/mlindgren/boxgen/geometry"

// emitter holds the machine state while the program is written: head
// position, the absolute extruder accumulator, and the retraction flag. It is
// created by Generate and never shared, so two generations in one process
// cannot interfere.
type emitter struct {
	w   *writer
	set *Settings

	x, y, z   float64
	e         float64
	retracted bool

	travelDist  float64
	extrudeDist float64
	seconds     float64
}

func newEmitter(w *writer, set *Settings) *emitter {
	return &emitter{w: w, set: set}
}

// retractFeed is the retraction feedrate in mm/min.
func (em *emitter) retractFeed() float64 {
	return em.set.RetractSpeed * 60
}

// retract pulls the filament back before a travel move. Skipped before the
// first extrusion of the program: there is nothing in the nozzle to ooze yet.
func (em *emitter) retract() {
	if em.retracted || em.e <= 0 {
		return
	}
	em.w.line("G1 E%s F%s", num(em.e-em.set.RetractLength), feed(em.retractFeed()))
	em.seconds += em.set.RetractLength / em.set.RetractSpeed
	em.retracted = true
}

// unretract feeds the filament back to the pre-retraction E value.
func (em *emitter) unretract() {
	if !em.retracted {
		return
	}
	em.w.line("G1 E%s F%s", num(em.e), feed(em.retractFeed()))
	em.seconds += em.set.RetractLength / em.set.RetractSpeed
	em.retracted = false
}

// travelTo moves the head without extruding, wrapped in a retract/unretract
// pair once anything has been extruded.
func (em *emitter) travelTo(p geometry.Point) {
	d := p.Distance(geometry.Point{X: em.x, Y: em.y})
	if d == 0 {
		// Already in position, e.g. a layer starting exactly where the
		// previous one ended. The layer-change retract still has to be
		// undone before the next extrusion.
		em.unretract()
		return
	}
	em.retract()
	em.w.line("G1 X%s Y%s F%s", num(p.X), num(p.Y), feed(em.set.TravelSpeed))
	em.x, em.y = p.X, p.Y
	em.travelDist += d
	em.seconds += d / em.set.TravelSpeed * 60
	em.unretract()
}

// extrudeTo moves the head while feeding filament for the covered distance.
func (em *emitter) extrudeTo(p geometry.Point, rate float64) {
	d := p.Distance(geometry.Point{X: em.x, Y: em.y})
	em.e += em.set.Extrusion(d)
	em.w.line("G1 X%s Y%s E%s F%s", num(p.X), num(p.Y), num(em.e), feed(rate))
	em.x, em.y = p.X, p.Y
	em.extrudeDist += d
	em.seconds += d / rate * 60
}

// layerZ lifts the head to the given layer height. The hop is retracted like
// any other non-extruding move once printing has started.
func (em *emitter) layerZ(z float64) {
	em.retract()
	em.w.line("G1 Z%s F%s", num(z), feed(em.set.TravelSpeed))
	em.seconds += (z - em.z) / em.set.TravelSpeed * 60
	em.z = z
}

// polyline travels to the start of line and extrudes along the rest of it.
func (em *emitter) polyline(line geometry.Polyline, rate float64) {
	if len(line) == 0 {
		return
	}
	em.travelTo(line[0])
	for _, p := range line[1:] {
		em.extrudeTo(p, rate)
	}
}

// layer writes one full layer: the ;LAYER: marker, the Z move, and the
// ordered polylines at the layer's print feedrate.
func (em *emitter) layer(index int, lines []geometry.Polyline) {
	em.w.line(";LAYER:%d", index)
	em.layerZ(float64(index+1) * em.set.LayerHeight)

	rate := em.set.PrintSpeed
	if index == 0 {
		rate = em.set.FirstLayerSpeed
	}
	for _, line := range lines {
		em.polyline(line, rate)
	}
}
