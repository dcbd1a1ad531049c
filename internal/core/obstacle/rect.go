package obstacle

import "chosenoffset.com/raycaster/internal/core/geom"

// Rect is an axis-aligned box. Width and height must be positive. A Rect is
// immutable once built.
type Rect struct {
	x, y          float64
	width, height float64
	edges         []geom.Segment
}

// NewRect builds a box and its four edges: top, left, bottom, right.
func NewRect(x, y, width, height float64) *Rect {
	r := &Rect{x: x, y: y, width: width, height: height}
	r.edges = []geom.Segment{
		{From: geom.Point{X: x, Y: y}, To: geom.Point{X: x + width, Y: y}},
		{From: geom.Point{X: x, Y: y}, To: geom.Point{X: x, Y: y + height}},
		{From: geom.Point{X: x, Y: y + height}, To: geom.Point{X: x + width, Y: y + height}},
		{From: geom.Point{X: x + width, Y: y + height}, To: geom.Point{X: x + width, Y: y}},
	}
	return r
}

func (r *Rect) Kind() Kind { return KindRect }

// X returns the left side.
func (r *Rect) X() float64 { return r.x }

// Y returns the top side.
func (r *Rect) Y() float64 { return r.y }

func (r *Rect) Width() float64 { return r.width }

func (r *Rect) Height() float64 { return r.height }

// Edges returns the boundary segments. Callers must not modify the slice.
func (r *Rect) Edges() []geom.Segment { return r.edges }

// Corners returns the four corners clockwise from the top-left.
func (r *Rect) Corners() [4]geom.Point {
	return [4]geom.Point{
		{X: r.x, Y: r.y},
		{X: r.x + r.width, Y: r.y},
		{X: r.x + r.width, Y: r.y + r.height},
		{X: r.x, Y: r.y + r.height},
	}
}

// Contains reports whether p lies inside the box or on its boundary.
func (r *Rect) Contains(p geom.Point) bool {
	return r.x <= p.X && r.x+r.width >= p.X && r.y <= p.Y && r.y+r.height >= p.Y
}
