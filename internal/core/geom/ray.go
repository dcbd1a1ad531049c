package geom

import "math"

// Ray is a directed segment from a fixed origin. Only the end point moves
// while a ray is being resolved.
type Ray struct {
	Origin Point
	End    Point
}

// NewRay builds a ray of the given length. The direction is negated:
// the end sits at origin - length*(cos angle, sin angle), angle in radians.
func NewRay(origin Point, angle, length float64) Ray {
	return Ray{
		Origin: origin,
		End: Point{
			X: origin.X - length*math.Cos(angle),
			Y: origin.Y - length*math.Sin(angle),
		},
	}
}

// Length returns the distance from origin to end.
func (r Ray) Length() float64 {
	return Distance(r.Origin, r.End)
}

// WithLength returns the ray rescaled to |length| along its current
// direction. A zero-length ray has no direction and is returned unchanged.
func (r Ray) WithLength(length float64) Ray {
	current := r.Length()
	dir := r.End.Sub(r.Origin).Scale(1 / current)
	if current == 0 || !dir.IsFinite() {
		return r
	}
	return Ray{Origin: r.Origin, End: r.Origin.Add(dir.Scale(math.Abs(length)))}
}

// To returns the ray with its end moved to p.
func (r Ray) To(p Point) Ray {
	return Ray{Origin: r.Origin, End: p}
}

// Segment returns the ray as an origin-to-end segment.
func (r Ray) Segment() Segment {
	return Segment{From: r.Origin, To: r.End}
}
