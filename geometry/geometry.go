// Package geometry holds the pure 2D types and path planners used to build
// box toolpaths. Nothing in here does I/O or keeps state; the planners return
// ordered polylines and the gcode package turns them into machine moves.
package geometry

import "math"

type Point struct {
	X float64
	Y float64
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Polyline is an ordered sequence of 2D points. Closed rectangles carry five
// points with the first repeated; infill lines are two-point segments.
type Polyline []Point

// Length returns the total path length along the polyline.
func (line Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += line[i-1].Distance(line[i])
	}
	return total
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Inset returns the rectangle shrunk by d on all four sides. A negative d
// grows it outward.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// Outset returns the rectangle grown by d on all four sides.
func (r Rect) Outset(d float64) Rect {
	return r.Inset(-d)
}

// Contains reports whether other lies entirely inside r, with a small
// tolerance for float rounding.
func (r Rect) Contains(other Rect) bool {
	const eps = 1e-9
	return other.Min.X >= r.Min.X-eps && other.Min.Y >= r.Min.Y-eps &&
		other.Max.X <= r.Max.X+eps && other.Max.Y <= r.Max.Y+eps
}

// Ring returns the rectangle outline as a closed polyline: five points,
// starting and ending at the lower-left corner, wound counter-clockwise.
func (r Rect) Ring() Polyline {
	return Polyline{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Min.Y},
	}
}

// CenteredRect returns the axis-aligned rectangle of the given extents
// centered on c.
func CenteredRect(c Point, width, height float64) Rect {
	return Rect{
		Min: Point{X: c.X - width/2, Y: c.Y - height/2},
		Max: Point{X: c.X + width/2, Y: c.Y + height/2},
	}
}
