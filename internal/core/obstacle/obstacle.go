// Package obstacle defines the static scene geometry rays are tested against.
package obstacle

import "chosenoffset.com/raycaster/internal/core/geom"

// Kind tags the obstacle variant so renderers can switch on it.
type Kind int

const (
	KindRect Kind = iota
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Obstacle is immutable geometry described by its boundary segments.
type Obstacle interface {
	Kind() Kind
	Edges() []geom.Segment
}

// Region is an obstacle with an interior, which is what the marching
// strategy needs.
type Region interface {
	Obstacle
	Contains(p geom.Point) bool
}

// NearestHit returns the closest edge intersection for the ray. Edges are
// tested in order and a later edge only wins if it is strictly closer.
func NearestHit(o Obstacle, r geom.Ray) (geom.Hit, bool) {
	var closest geom.Hit
	found := false

	for _, edge := range o.Edges() {
		hit, ok := edge.IntersectRay(r)
		if !ok {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}
