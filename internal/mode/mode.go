// Package mode describes the four demo layouts and builds a ready-to-run
// scene and caster for each of them.
package mode

import (
	"fmt"
	"math/rand"
	"strings"

	"chosenoffset.com/raycaster/internal/core/obstacle"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/core/scene"
)

// Mode selects an obstacle layout and ray strategy.
type Mode int

const (
	// Box scatters boxes with no walls and resolves rays exactly.
	Box Mode = iota
	// SimpleBox marches rays into walled, scattered boxes.
	SimpleBox
	// Line uses free wall segments inside a line enclosure.
	Line
	// BrokenLine treats walled boxes as segments and marks their corners.
	BrokenLine
)

var names = map[Mode]string{
	Box:        "box",
	SimpleBox:  "sbox",
	Line:       "line",
	BrokenLine: "bline",
}

func (m Mode) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// All returns the modes in selection order.
func All() []Mode {
	return []Mode{Box, SimpleBox, Line, BrokenLine}
}

// Parse maps a mode name to a Mode. Anything unrecognised, including the
// empty string, selects Box.
func Parse(name string) Mode {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range names {
		if n == name {
			return m
		}
	}
	return Box
}

// Style holds drawing choices that have no effect on hit results.
type Style struct {
	ObstaclesFirst bool
	CornerMarkers  bool
	LineWidth      float32
}

// Bounds is the visible area obstacles are laid out in.
type Bounds struct {
	Width, Height float64
}

// Setup is everything the frame driver needs for one mode.
type Setup struct {
	Mode   Mode
	Scene  *scene.Scene
	Caster *raycast.Caster
	Style  Style
}

const (
	wallThickness  = 10
	maxDistance    = 2250
	maxRandomSize  = 300
	boxModeCount   = 6
	walledBoxCount = 8
)

// Preset returns the ray configuration and style for a mode.
func Preset(m Mode) (raycast.Config, Style) {
	switch m {
	case SimpleBox:
		return raycast.Config{
			Strategy:    raycast.Marching,
			Resolution:  0.1,
			ProbeLength: 0.01,
			Step:        7,
			MaxDistance: maxDistance,
		}, Style{}
	case Line:
		return raycast.Config{
			Strategy:    raycast.Exact,
			Resolution:  0.08,
			ProbeLength: 0.0001,
			MissLength:  0.0001,
		}, Style{LineWidth: 8}
	case BrokenLine:
		return raycast.Config{
			Strategy:    raycast.Exact,
			Resolution:  0.1,
			ProbeLength: 0.01,
			MissLength:  0.001,
		}, Style{CornerMarkers: true}
	default:
		return raycast.Config{
			Strategy:    raycast.Exact,
			Resolution:  0.1,
			ProbeLength: maxDistance,
			MissLength:  maxDistance,
		}, Style{}
	}
}

// Obstacles lays out the scene for a mode. rng is only used by the modes
// with randomly placed boxes.
func Obstacles(m Mode, b Bounds, rng *rand.Rand) ([]obstacle.Obstacle, error) {
	w, h := int(b.Width), int(b.Height)

	switch m {
	case Line:
		obstacles := scene.BoundaryLines(b.Width, b.Height)
		return append(obstacles,
			obstacle.NewLine(200, 200, 500, 800),
			obstacle.NewLine(600, 900, 1200, 400),
		), nil
	case SimpleBox, BrokenLine:
		boxes, err := scene.RandomBoxes(rng, scene.BoxRange{
			Count:   walledBoxCount,
			MinX:    wallThickness,
			MaxX:    w - 2*wallThickness,
			MinY:    wallThickness,
			MaxY:    h - 2*wallThickness,
			MinSize: 1,
			MaxSize: maxRandomSize,
		})
		if err != nil {
			return nil, err
		}
		return append(scene.BoundaryBoxes(b.Width, b.Height, wallThickness), boxes...), nil
	default:
		return scene.RandomBoxes(rng, scene.BoxRange{
			Count:   boxModeCount,
			MinX:    0,
			MaxX:    w,
			MinY:    0,
			MaxY:    h,
			MinSize: 1,
			MaxSize: maxRandomSize,
		})
	}
}

// Build creates the scene and caster for a mode. override, when non-nil, may
// adjust the preset configuration before the caster is created.
func Build(m Mode, b Bounds, rng *rand.Rand, override func(*raycast.Config)) (*Setup, error) {
	obstacles, err := Obstacles(m, b, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out %s: %w", m, err)
	}
	return BuildWithScene(m, scene.New(obstacles...), override)
}

// BuildWithScene pairs a mode's ray settings with an existing scene, such as
// one loaded from a level file.
func BuildWithScene(m Mode, s *scene.Scene, override func(*raycast.Config)) (*Setup, error) {
	cfg, style := Preset(m)
	if override != nil {
		override(&cfg)
	}

	caster, err := raycast.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid ray settings for %s: %w", m, err)
	}
	if err := caster.Check(s); err != nil {
		return nil, fmt.Errorf("scene cannot be used with %s: %w", m, err)
	}

	return &Setup{Mode: m, Scene: s, Caster: caster, Style: style}, nil
}
