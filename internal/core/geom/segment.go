package geom

// Segment is an ordered pair of points. Obstacle edges are segments, and a
// ray converts to one for drawing.
type Segment struct {
	From, To Point
}

// Hit is a ray intersection: where it happened and how far it is from the
// ray origin.
type Hit struct {
	Point    Point
	Distance float64
}

// params solves s.From + t*(s.To-s.From) = o.From + u*(o.To-o.From).
// ok is false when the denominator is exactly zero (parallel, collinear or
// degenerate input). Near-parallel pairs still produce very large t/u values.
func (s Segment) params(o Segment) (t, u float64, ok bool) {
	x1, y1 := s.From.X, s.From.Y
	x2, y2 := s.To.X, s.To.Y
	x3, y3 := o.From.X, o.From.Y
	x4, y4 := o.To.X, o.To.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return 0, 0, false
	}

	t = ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u = ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / den
	return t, u, true
}

// At returns the point at parameter t along the segment.
func (s Segment) At(t float64) Point {
	return Point{
		X: s.From.X + t*(s.To.X-s.From.X),
		Y: s.From.Y + t*(s.To.Y-s.From.Y),
	}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return Distance(s.From, s.To)
}

// Intersect tests two bounded segments. Both parameters must be strictly
// inside (0, 1), so touching endpoints do not count. It returns the crossing
// point and its parameter along s.
func (s Segment) Intersect(o Segment) (Point, float64, bool) {
	t, u, ok := s.params(o)
	if !ok {
		return Point{}, 0, false
	}
	if 0 < t && t < 1 && 0 < u && u < 1 {
		return s.At(t), t, true
	}
	return Point{}, 0, false
}

// IntersectRay tests s as an obstacle edge against r. The edge parameter must
// be strictly inside (0, 1); the ray parameter only needs to be positive, so
// the ray keeps going past its current end point.
func (s Segment) IntersectRay(r Ray) (Hit, bool) {
	t, u, ok := s.params(r.Segment())
	if !ok {
		return Hit{}, false
	}
	if 0 < t && t < 1 && 0 < u {
		p := s.At(t)
		return Hit{Point: p, Distance: Distance(r.Origin, p)}, true
	}
	return Hit{}, false
}
