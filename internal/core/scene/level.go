package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/obstacle"
)

// BoxData is a rectangle entry in a level file
type BoxData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LineData is a wall segment entry in a level file
type LineData struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// LevelData represents a hand-placed obstacle layout
type LevelData struct {
	Name          string     `json:"name"`
	Walls         string     `json:"walls"`          // "", "lines" or "boxes"
	WallThickness float64    `json:"wall_thickness"` // Used when walls is "boxes"
	Boxes         []BoxData  `json:"boxes"`
	Lines         []LineData `json:"lines"`
}

// Wall styles understood by LevelData.Walls.
const (
	WallsNone  = ""
	WallsLines = "lines"
	WallsBoxes = "boxes"
)

const defaultWallThickness = 10

// LoadLevel reads a level file from disk.
func LoadLevel(path string) (*LevelData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes and validates level JSON.
func ParseLevel(data []byte) (*LevelData, error) {
	var level LevelData
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// Validate checks that every obstacle is well formed.
func (l *LevelData) Validate() error {
	switch l.Walls {
	case WallsNone, WallsLines, WallsBoxes:
	default:
		return fmt.Errorf("unknown walls style %q", l.Walls)
	}
	if l.WallThickness < 0 {
		return fmt.Errorf("negative wall thickness: %f", l.WallThickness)
	}

	for i, b := range l.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("box %d has invalid size %fx%f", i, b.Width, b.Height)
		}
	}
	for i, ln := range l.Lines {
		if ln.X1 == ln.X2 && ln.Y1 == ln.Y2 {
			return fmt.Errorf("line %d has zero length", i)
		}
	}

	if len(l.Boxes) == 0 && len(l.Lines) == 0 && l.Walls == WallsNone {
		return fmt.Errorf("level has no obstacles")
	}
	return nil
}

// Build turns the level into a Scene for a w x h screen. Walls come first,
// then boxes, then lines.
func (l *LevelData) Build(w, h float64) *Scene {
	var obstacles []obstacle.Obstacle

	switch l.Walls {
	case WallsLines:
		obstacles = append(obstacles, BoundaryLines(w, h)...)
	case WallsBoxes:
		thickness := l.WallThickness
		if thickness == 0 {
			thickness = defaultWallThickness
		}
		obstacles = append(obstacles, BoundaryBoxes(w, h, thickness)...)
	}

	for _, b := range l.Boxes {
		obstacles = append(obstacles, obstacle.NewRect(b.X, b.Y, b.Width, b.Height))
	}
	for _, ln := range l.Lines {
		obstacles = append(obstacles, obstacle.NewLine(ln.X1, ln.Y1, ln.X2, ln.Y2))
	}

	return New(obstacles...)
}
