package gcode

import "math"

// Extrusion returns the filament length in mm to feed while tracing distance
// mm of toolpath: the deposited volume (distance x layer height x line width)
// divided by the filament cross-section.
func (s *Settings) Extrusion(distance float64) float64 {
	r := s.FilamentDiameter / 2
	return distance * s.LayerHeight * s.LineWidth / (math.Pi * r * r)
}
