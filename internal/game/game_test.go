package game

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/mode"
	"chosenoffset.com/raycaster/internal/render"
)

// fakeRenderer records draw calls as "target:op" strings.
type fakeRenderer struct {
	ops       []string
	newImages int
}

type fakeImage struct {
	name     string
	r        *fakeRenderer
	disposed bool
}

func (r *fakeRenderer) record(dst render.Image, op string) {
	r.ops = append(r.ops, dst.(*fakeImage).name+":"+op)
}

func (r *fakeRenderer) NewImage(width, height int) render.Image {
	r.newImages++
	return &fakeImage{name: "layer", r: r}
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.record(dst, "rect")
}

func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.record(dst, "line")
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.record(dst, "circle")
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.record(dst, "text:"+text)
}

func (i *fakeImage) Fill(clr color.Color) {
	i.r.record(i, "fill")
}

func (i *fakeImage) DrawImage(src render.Image) {
	i.r.record(i, "image:"+src.(*fakeImage).name)
}

func (i *fakeImage) Dispose() {
	i.disposed = true
}

type fakeInput struct {
	x, y int
	just map[render.Key]bool
}

func (in *fakeInput) IsKeyJustPressed(key render.Key) bool {
	return in.just[key]
}

func (in *fakeInput) GetCursorPosition() (int, int) {
	return in.x, in.y
}

func (in *fakeInput) press(keys ...render.Key) {
	in.just = map[render.Key]bool{}
	for _, k := range keys {
		in.just[k] = true
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	cfg.Resolution = 30
	return cfg
}

func newTestGame(t *testing.T, start mode.Mode) (*Game, *fakeRenderer, *fakeInput) {
	t.Helper()
	r := &fakeRenderer{}
	in := &fakeInput{x: 100, y: 100}
	g, err := New(NewManager(testConfig(), nil), r, in, start)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clock := time.Unix(0, 0)
	g.Now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}
	return g, r, in
}

func count(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestUpdateClampsCursorAndCasts(t *testing.T) {
	g, _, in := newTestGame(t, mode.Box)
	in.x, in.y = -50, 5000

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Player.Pos != (geom.Point{X: 0, Y: 1080}) {
		t.Errorf("Expected clamped position (0, 1080), got %v", g.Player.Pos)
	}
	if len(g.Results) != 12 {
		t.Fatalf("Expected 12 rays at 30 degrees, got %d", len(g.Results))
	}
	for i, r := range g.Results {
		if r.Ray.Origin != g.Player.Pos {
			t.Errorf("ray %d: expected origin %v, got %v", i, g.Player.Pos, r.Ray.Origin)
		}
	}
}

func TestUpdateSwitchesModes(t *testing.T) {
	g, _, in := newTestGame(t, mode.Box)

	tests := []struct {
		key  render.Key
		want mode.Mode
	}{
		{render.Key3, mode.Line},
		{render.Key2, mode.SimpleBox},
		{render.Key4, mode.BrokenLine},
		{render.Key1, mode.Box},
	}

	for _, tt := range tests {
		in.press(tt.key)
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if g.Setup.Mode != tt.want {
			t.Errorf("Expected mode %v, got %v", tt.want, g.Setup.Mode)
		}
		if len(g.Results) != g.Setup.Caster.Samples() {
			t.Errorf("%v: expected %d rays, got %d", tt.want, g.Setup.Caster.Samples(), len(g.Results))
		}
	}
}

func TestUpdateEscapeTerminates(t *testing.T) {
	g, _, in := newTestGame(t, mode.Box)
	in.press(render.KeyEscape)

	if err := g.Update(); !errors.Is(err, render.ErrTerminated) {
		t.Errorf("Expected ErrTerminated, got %v", err)
	}
}

func TestUpdateReseedRebuildsScene(t *testing.T) {
	g, _, in := newTestGame(t, mode.SimpleBox)
	before := g.Manager.Seed()

	in.press(render.KeyR)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Manager.Seed() == before {
		t.Error("Expected a new seed")
	}
	if g.Setup.Mode != mode.SimpleBox {
		t.Errorf("Expected to stay in sbox, got %v", g.Setup.Mode)
	}
}

func TestDrawOrder(t *testing.T) {
	g, r, in := newTestGame(t, mode.Box)
	in.press()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	g.Draw(&fakeImage{name: "screen", r: r})

	if r.ops[0] != "screen:fill" {
		t.Errorf("Expected background fill first, got %s", r.ops[0])
	}
	if got := count(r.ops, "screen:line"); got != 12 {
		t.Errorf("Expected 12 ray lines on screen, got %d", got)
	}
	if got := count(r.ops, "layer:rect"); got != 6 {
		t.Errorf("Expected 6 boxes on the obstacle layer, got %d", got)
	}

	layerAt, lastRay := -1, -1
	for i, op := range r.ops {
		switch op {
		case "screen:image:layer":
			layerAt = i
		case "screen:line":
			lastRay = i
		}
	}
	if layerAt < lastRay {
		t.Error("Expected obstacles to be drawn over the rays")
	}

	last := r.ops[len(r.ops)-1]
	if !strings.HasPrefix(last, "screen:text:") || !strings.HasSuffix(last, "FPS") {
		t.Errorf("Expected FPS text last, got %s", last)
	}
	if r.ops[len(r.ops)-2] != "screen:circle" {
		t.Errorf("Expected player before the overlay, got %s", r.ops[len(r.ops)-2])
	}
}

func TestObstacleLayerIsCachedPerMode(t *testing.T) {
	g, r, in := newTestGame(t, mode.BrokenLine)
	screen := &fakeImage{name: "screen", r: r}

	in.press()
	g.Update()
	g.Draw(screen)
	g.Draw(screen)
	if r.newImages != 1 {
		t.Errorf("Expected one obstacle layer, got %d", r.newImages)
	}
	// 12 boxes with 4 corner markers each.
	if got := count(r.ops, "layer:circle"); got != 48 {
		t.Errorf("Expected 48 corner markers, got %d", got)
	}

	layer := g.obstacleLayer.(*fakeImage)
	in.press(render.Key3)
	g.Update()
	if !layer.disposed {
		t.Error("Expected the old layer to be disposed on mode switch")
	}
	g.Draw(screen)
	if r.newImages != 2 {
		t.Errorf("Expected a new layer after switching, got %d", r.newImages)
	}
}

func TestObstaclesFirstStyle(t *testing.T) {
	r := &fakeRenderer{}
	in := &fakeInput{}
	cfg := testConfig()
	cfg.ObstaclesFirst = true

	g, err := New(NewManager(cfg, nil), r, in, mode.Box)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Update()
	g.Draw(&fakeImage{name: "screen", r: r})

	var screenOps []string
	for _, op := range r.ops {
		if strings.HasPrefix(op, "screen:") {
			screenOps = append(screenOps, op)
		}
	}
	if screenOps[1] != "screen:image:layer" {
		t.Errorf("Expected obstacles right after the background, got %s", screenOps[1])
	}
}

func TestToggleFPS(t *testing.T) {
	g, r, in := newTestGame(t, mode.Box)
	in.press(render.KeyF)
	g.Update()
	if g.ShowFPS {
		t.Fatal("Expected FPS overlay to be hidden")
	}

	g.Draw(&fakeImage{name: "screen", r: r})
	for _, op := range r.ops {
		if strings.Contains(op, "text") {
			t.Errorf("Expected no text, got %s", op)
		}
	}
}

func TestFPSRecordsOncePerUpdate(t *testing.T) {
	g, r, in := newTestGame(t, mode.Box)
	screen := &fakeImage{name: "screen", r: r}

	in.press()
	g.Update()
	g.Draw(screen)
	g.Draw(screen)
	g.Draw(screen)

	// The fake clock advances 5ms per call: one sample from Update to the
	// first Draw, none for the repeated draws.
	if g.FPS.next != 1 {
		t.Fatalf("Expected 1 recorded frame, got %d", g.FPS.next)
	}
	if g.FPS.samples[0] != 5*time.Millisecond {
		t.Errorf("Expected a 5ms frame, got %v", g.FPS.samples[0])
	}
}

func TestLevelReplacesLayout(t *testing.T) {
	level, err := scene.ParseLevel([]byte(`{"name": "lines", "walls": "lines", "lines": [{"x1": 10, "y1": 10, "x2": 50, "y2": 90}]}`))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}

	r := &fakeRenderer{}
	in := &fakeInput{}
	g, err := New(NewManager(testConfig(), level), r, in, mode.Line)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Setup.Scene.Len() != 5 {
		t.Errorf("Expected 4 walls and 1 line, got %d", g.Setup.Scene.Len())
	}

	// Marching cannot use a line-only level; the game stays in line mode.
	in.press(render.Key2)
	g.Update()
	if g.Setup.Mode != mode.Line {
		t.Errorf("Expected failed switch to keep line mode, got %v", g.Setup.Mode)
	}
}

func TestManagerSeedIsDeterministic(t *testing.T) {
	a, err := NewManager(testConfig(), nil).Build(mode.Box)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := NewManager(testConfig(), nil).Build(mode.Box)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for i := range a.Scene.Obstacles() {
		ea := a.Scene.Obstacles()[i].Edges()
		eb := b.Scene.Obstacles()[i].Edges()
		for j := range ea {
			if ea[j] != eb[j] {
				t.Errorf("obstacle %d edge %d differs", i, j)
			}
		}
	}
}

func TestLayout(t *testing.T) {
	g, _, _ := newTestGame(t, mode.Box)
	w, h := g.Layout(640, 480)
	if w != 1920 || h != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", w, h)
	}
}
