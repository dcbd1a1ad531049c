package game

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Player is the light source that follows the cursor.
type Player struct {
	Pos    geom.Point
	Radius float32
}

// Colors used by the frame.
var (
	BackgroundColor = color.RGBA{0x2C, 0x2C, 0x2C, 0xFF}
	RayColor        = color.NRGBA{0xFF, 0xFF, 0xFF, 0x2F}
	BoxColor        = color.RGBA{0x1D, 0x1F, 0x29, 0xFF}
	LineColor       = color.RGBA{0x1E, 0x90, 0xFF, 0xFF}
	CornerColor     = color.RGBA{0xFF, 0xA5, 0x00, 0xFF} // orange
	PlayerColor     = color.RGBA{0xEB, 0x1D, 0x34, 0xFF}
	TextColor       = color.White
)

const (
	playerRadius  = 10
	cornerRadius  = 5
	rayWidth      = 1
	fpsTextMargin = 10
)
