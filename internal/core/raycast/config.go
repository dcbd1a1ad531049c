package raycast

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects how a ray finds its end point.
type Strategy int

const (
	// Exact intersects the ray with every obstacle edge once.
	Exact Strategy = iota
	// Marching grows the ray in fixed steps until it enters a region.
	Marching
)

func (s Strategy) String() string {
	switch s {
	case Exact:
		return "exact"
	case Marching:
		return "marching"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return Exact, nil
	case "marching", "march":
		return Marching, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Limits on the work a single sweep may do.
const (
	// MaxSamples bounds the rays per sweep, so the resolution may not go
	// below 360/MaxSamples degrees.
	MaxSamples = 1 << 20
	// MaxMarchSteps bounds the steps a marching ray takes to reach the cap.
	MaxMarchSteps = 1_000_000
)

// Config controls a sweep.
type Config struct {
	Strategy Strategy

	// Resolution is the angular step between rays, in degrees.
	Resolution float64

	// ProbeLength is the length rays start with. With the exact strategy only
	// its direction matters, since edges are tested past the ray end.
	ProbeLength float64

	// MissLength is the length an exact ray is given when nothing is hit.
	MissLength float64

	// Step and MaxDistance drive the marching strategy.
	Step        float64
	MaxDistance float64
}

// DefaultConfig returns the exact strategy at 0.1 degrees.
func DefaultConfig() Config {
	return Config{
		Strategy:    Exact,
		Resolution:  0.1,
		ProbeLength: 0.01,
		MissLength:  0.001,
		Step:        7,
		MaxDistance: 2250,
	}
}

// Validate checks the numeric settings for the selected strategy.
func (c Config) Validate() error {
	if err := CheckResolution(c.Resolution); err != nil {
		return err
	}
	if !(c.ProbeLength > 0) || math.IsInf(c.ProbeLength, 0) {
		return fmt.Errorf("probe length must be positive and finite, got %f", c.ProbeLength)
	}

	switch c.Strategy {
	case Exact:
		if !(c.MissLength > 0) || math.IsInf(c.MissLength, 0) {
			return fmt.Errorf("miss length must be positive and finite, got %f", c.MissLength)
		}
	case Marching:
		if !(c.MaxDistance > 0) || math.IsInf(c.MaxDistance, 0) {
			return fmt.Errorf("max distance must be positive and finite, got %f", c.MaxDistance)
		}
		if err := CheckMarch(c.Step, c.MaxDistance); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown strategy %v", c.Strategy)
	}
	return nil
}

// CheckResolution reports whether res is a usable angle between rays: in
// (0, 360] and coarse enough to stay within MaxSamples.
func CheckResolution(res float64) error {
	if !(res > 0 && res <= 360) {
		return fmt.Errorf("resolution must be in (0, 360], got %g", res)
	}
	if 360/res > MaxSamples {
		return fmt.Errorf("resolution %g gives more than %d rays per sweep", res, MaxSamples)
	}
	return nil
}

// CheckMarch reports whether a march with the given step reaches maxDistance
// within MaxMarchSteps.
func CheckMarch(step, maxDistance float64) error {
	if !(step > 0) {
		return fmt.Errorf("march step must be positive, got %g", step)
	}
	if maxDistance/step > MaxMarchSteps {
		return fmt.Errorf("march step %g needs more than %d steps to reach %g", step, MaxMarchSteps, maxDistance)
	}
	return nil
}

// Samples returns how many rays a sweep at the given resolution produces:
// floor(360 / resolution). The small bias keeps steps like 0.1, whose
// quotient lands just under an integer in binary, from losing a ray.
func Samples(resolution float64) int {
	if !(resolution > 0) {
		return 0
	}
	return int(math.Floor(360/resolution + 1e-9))
}
