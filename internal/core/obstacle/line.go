package obstacle

import "chosenoffset.com/raycaster/internal/core/geom"

// Line is a free-standing wall segment.
type Line struct {
	geom.Segment
	edges []geom.Segment
}

// NewLine builds a wall from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Line {
	seg := geom.Segment{From: geom.Point{X: x1, Y: y1}, To: geom.Point{X: x2, Y: y2}}
	return &Line{Segment: seg, edges: []geom.Segment{seg}}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Edges() []geom.Segment { return l.edges }
