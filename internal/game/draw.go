package game

import (
	"fmt"
	"time"

	"chosenoffset.com/raycaster/internal/core/obstacle"
	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the frame: background, rays and obstacles in the mode's
// order, the player, then the FPS overlay.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(BackgroundColor)

	if g.Setup.Style.ObstaclesFirst {
		g.drawObstacles(screen)
		g.drawRays(screen)
	} else {
		g.drawRays(screen)
		g.drawObstacles(screen)
	}

	g.Renderer.FillCircle(screen,
		float32(g.Player.Pos.X),
		float32(g.Player.Pos.Y),
		g.Player.Radius,
		PlayerColor)

	if g.ShowFPS {
		if !g.frameStart.IsZero() {
			g.FPS.Record(g.Now().Sub(g.frameStart))
			g.frameStart = time.Time{}
		}
		g.Renderer.DrawText(screen, fmt.Sprintf("%dFPS", g.FPS.FPS()), fpsTextMargin, fpsTextMargin, TextColor)
	}
}

func (g *Game) drawRays(screen render.Image) {
	for _, r := range g.Results {
		g.Renderer.StrokeLine(screen,
			float32(r.Ray.Origin.X), float32(r.Ray.Origin.Y),
			float32(r.Ray.End.X), float32(r.Ray.End.Y),
			rayWidth, RayColor)
	}
}

// drawObstacles blits the obstacle layer, rendering it first if needed. The
// scene never changes within a mode, so the layer is only rebuilt on a switch.
func (g *Game) drawObstacles(screen render.Image) {
	if g.obstacleLayer == nil {
		g.obstacleLayer = g.Renderer.NewImage(g.ScreenWidth, g.ScreenHeight)
		g.renderObstacles(g.obstacleLayer)
	}
	screen.DrawImage(g.obstacleLayer)
}

func (g *Game) renderObstacles(dst render.Image) {
	style := g.Setup.Style
	lineWidth := style.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	for _, o := range g.Setup.Scene.Obstacles() {
		switch o := o.(type) {
		case *obstacle.Rect:
			g.Renderer.FillRect(dst, float32(o.X()), float32(o.Y()), float32(o.Width()), float32(o.Height()), BoxColor)
			if style.CornerMarkers {
				for _, c := range o.Corners() {
					g.Renderer.FillCircle(dst, float32(c.X), float32(c.Y), cornerRadius, CornerColor)
				}
			}
		case *obstacle.Line:
			g.Renderer.StrokeLine(dst,
				float32(o.From.X), float32(o.From.Y),
				float32(o.To.X), float32(o.To.Y),
				lineWidth, LineColor)
		default:
			for _, e := range o.Edges() {
				g.Renderer.StrokeLine(dst,
					float32(e.From.X), float32(e.From.Y),
					float32(e.To.X), float32(e.To.Y),
					lineWidth, LineColor)
			}
		}
	}
}
