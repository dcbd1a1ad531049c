package game

import (
	"log"
	"time"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/mode"
	"chosenoffset.com/raycaster/internal/render"
)

var modeKeys = []render.Key{render.Key1, render.Key2, render.Key3, render.Key4}

// Game holds the per-frame state of the demo.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Player       Player
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Manager      *Manager
	Setup        *mode.Setup

	// Results holds the rays of the current frame; the slice is reused.
	Results []raycast.Result

	FPS     *FPSMeter
	ShowFPS bool

	// Now is the clock used for frame timing.
	Now func() time.Time

	obstacleLayer render.Image
	frameStart    time.Time
}

// New creates a game starting in the given mode.
func New(m *Manager, r render.Renderer, input render.InputManager, start mode.Mode) (*Game, error) {
	setup, err := m.Build(start)
	if err != nil {
		return nil, err
	}

	cfg := m.Config
	return &Game{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		Player: Player{
			Pos:    geom.Point{X: float64(cfg.ScreenWidth) / 2, Y: float64(cfg.ScreenHeight) / 2},
			Radius: playerRadius,
		},
		Renderer: r,
		InputMgr: input,
		Manager:  m,
		Setup:    setup,
		FPS:      NewFPSMeter(),
		ShowFPS:  cfg.ShowFPS,
		Now:      time.Now,
	}, nil
}

// Update reads input, moves the player to the cursor and casts the frame's
// rays.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminated
	}

	for i, key := range modeKeys {
		if g.InputMgr.IsKeyJustPressed(key) {
			g.SwitchMode(mode.All()[i])
		}
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Manager.Reseed(g.Now().UnixNano())
		g.SwitchMode(g.Setup.Mode)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.ShowFPS = !g.ShowFPS
	}

	x, y := g.InputMgr.GetCursorPosition()
	g.Player.Pos = geom.Clamp(geom.Point{X: float64(x), Y: float64(y)},
		float64(g.ScreenWidth), float64(g.ScreenHeight))

	g.frameStart = g.Now()
	g.Results = g.Setup.Caster.AppendCast(g.Results[:0], g.Player.Pos, g.Setup.Scene)
	return nil
}

// SwitchMode rebuilds the scene for md. On failure the current mode stays
// active.
func (g *Game) SwitchMode(md mode.Mode) {
	setup, err := g.Manager.Build(md)
	if err != nil {
		log.Printf("Failed to switch to %s: %v", md, err)
		return
	}

	g.Setup = setup
	g.Results = g.Results[:0]
	if g.obstacleLayer != nil {
		g.obstacleLayer.Dispose()
		g.obstacleLayer = nil
	}
	log.Printf("Switched to %s mode", md)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
