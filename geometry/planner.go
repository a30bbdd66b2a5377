package geometry

// SkirtRings returns the skirt outlines for the first layer: lines concentric
// closed rectangles offset outward from the footprint. Ring k (0-indexed from
// the innermost) sits at distance + k*lineWidth from the footprint edge. The
// result is ordered outermost first, so the head finishes the skirt next to
// the part before the perimeters start. Each ring starts at its lower-left
// corner and runs counter-clockwise.
func SkirtRings(footprint Rect, lines int, distance, lineWidth float64) []Polyline {
	if lines <= 0 {
		return nil
	}
	rings := make([]Polyline, 0, lines)
	for k := lines - 1; k >= 0; k-- {
		rings = append(rings, footprint.Outset(distance+float64(k)*lineWidth).Ring())
	}
	return rings
}

// PerimeterRings returns the wall outlines for one layer: count concentric
// closed rectangles offset inward from the footprint, outermost first. Wall k
// is inset by lineWidth/2 + k*lineWidth so the outermost extrusion edge lands
// on the footprint boundary. Lower-left start, counter-clockwise winding.
func PerimeterRings(footprint Rect, count int, lineWidth float64) []Polyline {
	rings := make([]Polyline, 0, count)
	for k := 0; k < count; k++ {
		rings = append(rings, footprint.Inset(lineWidth/2+float64(k)*lineWidth).Ring())
	}
	return rings
}

// InfillLines returns the boustrophedon fill for the given interior
// rectangle. Lines run parallel to X and sweep along +Y when vertical is
// false, parallel to Y sweeping along +X when true. The first line sits at
// spacing/2 from the interior edge and every other line is reversed so
// consecutive endpoints stay adjacent.
//
// An interior narrower than spacing gets a single centered line; narrower
// than lineWidth, nothing at all.
func InfillLines(interior Rect, spacing, lineWidth float64, vertical bool) []Polyline {
	extent := interior.Height()
	if vertical {
		extent = interior.Width()
	}
	if extent < lineWidth || interior.Width() <= 0 || interior.Height() <= 0 {
		return nil
	}

	var sweep []float64
	if extent < spacing {
		sweep = []float64{0.5 * extent}
	} else {
		for i := 0; ; i++ {
			pos := spacing/2 + float64(i)*spacing
			if pos >= extent {
				break
			}
			sweep = append(sweep, pos)
		}
	}

	lines := make([]Polyline, 0, len(sweep))
	for i, pos := range sweep {
		var a, b Point
		if vertical {
			x := interior.Min.X + pos
			a = Point{X: x, Y: interior.Min.Y}
			b = Point{X: x, Y: interior.Max.Y}
		} else {
			y := interior.Min.Y + pos
			a = Point{X: interior.Min.X, Y: y}
			b = Point{X: interior.Max.X, Y: y}
		}
		if i%2 == 1 {
			a, b = b, a
		}
		lines = append(lines, Polyline{a, b})
	}
	return lines
}
