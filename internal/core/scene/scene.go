// Package scene groups the obstacles of a level and answers nearest-hit and
// containment queries against all of them.
package scene

import (
	"fmt"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/obstacle"
)

// Scene is an ordered, immutable set of obstacles.
type Scene struct {
	obstacles []obstacle.Obstacle
}

// New creates a scene from the given obstacles. The slice is copied.
func New(obstacles ...obstacle.Obstacle) *Scene {
	s := &Scene{obstacles: make([]obstacle.Obstacle, len(obstacles))}
	copy(s.obstacles, obstacles)
	return s
}

// Obstacles returns the obstacles in insertion order. Callers must not
// modify the slice.
func (s *Scene) Obstacles() []obstacle.Obstacle {
	return s.obstacles
}

// Len returns the number of obstacles.
func (s *Scene) Len() int {
	return len(s.obstacles)
}

// NearestHit returns the closest intersection across all obstacles. On equal
// distances the earlier obstacle wins.
func (s *Scene) NearestHit(r geom.Ray) (geom.Hit, bool) {
	var closest geom.Hit
	found := false

	for _, o := range s.obstacles {
		hit, ok := obstacle.NearestHit(o, r)
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

// Contains reports whether p is inside any obstacle that has an interior.
func (s *Scene) Contains(p geom.Point) bool {
	for _, o := range s.obstacles {
		if region, ok := o.(obstacle.Region); ok && region.Contains(p) {
			return true
		}
	}
	return false
}

// Marchable returns an error if any obstacle lacks an interior region.
func (s *Scene) Marchable() error {
	for i, o := range s.obstacles {
		if _, ok := o.(obstacle.Region); !ok {
			return fmt.Errorf("obstacle %d (%s) has no interior to march into", i, o.Kind())
		}
	}
	return nil
}
