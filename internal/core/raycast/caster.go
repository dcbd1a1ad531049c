// Package raycast sweeps a fan of rays around an origin and resolves each
// one against a scene.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/scene"
)

// Result is one resolved ray. When Hit is set, Ray.End is the intersection
// point.
type Result struct {
	Ray geom.Ray
	Hit bool
}

// Caster resolves rays with a fixed configuration. It holds no per-frame
// state, so the same caster can be reused for every frame.
type Caster struct {
	cfg Config
}

// New validates cfg and returns a caster for it.
func New(cfg Config) (*Caster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Caster{cfg: cfg}, nil
}

// Config returns the caster's settings.
func (c *Caster) Config() Config {
	return c.cfg
}

// Samples returns the number of rays per sweep.
func (c *Caster) Samples() int {
	return Samples(c.cfg.Resolution)
}

// Check reports whether the scene can be used with this caster's strategy.
func (c *Caster) Check(s *scene.Scene) error {
	if c.cfg.Strategy == Marching {
		return s.Marchable()
	}
	return nil
}

// Cast runs a full sweep from origin.
func (c *Caster) Cast(origin geom.Point, s *scene.Scene) []Result {
	return c.AppendCast(make([]Result, 0, c.Samples()), origin, s)
}

// AppendCast runs a full sweep from origin and appends the results to dst in
// increasing angle order.
func (c *Caster) AppendCast(dst []Result, origin geom.Point, s *scene.Scene) []Result {
	n := c.Samples()
	for i := 0; i < n; i++ {
		dst = append(dst, c.CastAt(origin, float64(i)*c.cfg.Resolution, s))
	}
	return dst
}

// CastAt resolves a single ray at the given angle in degrees.
func (c *Caster) CastAt(origin geom.Point, degrees float64, s *scene.Scene) Result {
	ray := geom.NewRay(origin, degrees*math.Pi/180, c.cfg.ProbeLength)

	switch c.cfg.Strategy {
	case Marching:
		return c.march(ray, s)
	default:
		return c.exact(ray, s)
	}
}

func (c *Caster) exact(ray geom.Ray, s *scene.Scene) Result {
	if hit, ok := s.NearestHit(ray); ok {
		return Result{Ray: ray.To(hit.Point), Hit: true}
	}
	return Result{Ray: ray.WithLength(c.cfg.MissLength)}
}

// march extends the ray until its end is inside a region. Running past
// MaxDistance stops the ray at the cap. Lengths are computed from the step
// count, and a step too small to change the length ends the march.
func (c *Caster) march(ray geom.Ray, s *scene.Scene) Result {
	start := ray.Length()
	length := start
	for i := 1; ; i++ {
		if s.Contains(ray.End) {
			return Result{Ray: ray, Hit: true}
		}
		next := start + float64(i)*c.cfg.Step
		if next > c.cfg.MaxDistance {
			return Result{Ray: ray.WithLength(c.cfg.MaxDistance)}
		}
		if next <= length {
			return Result{Ray: ray}
		}
		length = next
		ray = ray.WithLength(length)
	}
}
