package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/ui"
)

// drawSession renders the play field: background grid, the word's cells,
// the brush cursor and the HUD, plus the trace overlay in debug mode.
func (g *Game) drawSession(s *Session) {
	if s == nil {
		return
	}
	g.drawGrid(s)
	g.drawCells(s)
	g.drawBrush(s)
	g.drawScrollbar(s)
	g.drawStatus(s)

	if s.Debug {
		g.drawDebugOverlay(s)
	}
}

// drawGrid paints the scrolling reference grid behind the canvas.
func (g *Game) drawGrid(s *Session) {
	w, h := g.cfg.ScreenWidth, g.cfg.ScreenHeight
	gridColor := rl.NewColor(40, 40, 40, 255)
	offset := int32(math.Mod(s.Camera.X, 50))
	for x := -offset; x < w; x += 50 {
		rl.DrawLine(x, 0, x, h, gridColor)
	}
	for y := int32(0); y < h; y += 50 {
		rl.DrawLine(0, y, w, y, gridColor)
	}
}

func (g *Game) drawCells(s *Session) {
	screenW := float64(g.cfg.ScreenWidth)
	for _, letter := range s.Goal.Letters {
		for _, cell := range letter.Cells {
			// Cull cells fully outside the view.
			visible := false
			for _, v := range cell.Vertices {
				sx := v.X() - s.Camera.X
				if sx > -50 && sx < screenW+50 {
					visible = true
					break
				}
			}
			if !visible {
				continue
			}

			fill := rl.NewColor(100, 100, 255, 255)
			if cell.Completed {
				fill = rl.NewColor(0, 255, 0, 255)
			} else if cell.Highlight {
				fill = rl.NewColor(255, 255, 0, 255)
			}
			g.fillCell(s, cell, fill)
			g.outlineCell(s, cell, rl.NewColor(50, 50, 50, 255))
		}
	}
}

func (g *Game) fillCell(s *Session, cell *CellGoal, color rl.Color) {
	// Cells are convex quads; a fan from vertex 0 fills them.
	v0 := screenVec(s, cell, 0)
	for i := 1; i < len(cell.Vertices)-1; i++ {
		// raylib fills counter-clockwise triangles; cell vertices are
		// clockwise in screen space, so the fan is emitted reversed.
		rl.DrawTriangle(v0, screenVec(s, cell, i+1), screenVec(s, cell, i), color)
	}
}

func (g *Game) outlineCell(s *Session, cell *CellGoal, color rl.Color) {
	n := len(cell.Vertices)
	for i := 0; i < n; i++ {
		a := screenVec(s, cell, i)
		b := screenVec(s, cell, (i+1)%n)
		rl.DrawLineV(a, b, color)
	}
}

func screenVec(s *Session, cell *CellGoal, i int) rl.Vector2 {
	p := s.Camera.ToScreen(cell.Vertices[i])
	return rl.Vector2{X: float32(p.X()), Y: float32(p.Y())}
}

func (g *Game) drawBrush(s *Session) {
	mouse := rl.GetMousePosition()
	radius := float32(s.Brush.Radius)
	rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), radius, rl.White)
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		rl.DrawCircle(int32(mouse.X), int32(mouse.Y), radius, rl.NewColor(255, 255, 255, 50))
	}

	if s.Debug {
		// Show the perimeter probes so the sampling is visible.
		for i := 0; i < s.Brush.Samples; i++ {
			angle := 2 * math.Pi * float64(i) / float64(s.Brush.Samples)
			px := float64(mouse.X) + math.Cos(angle)*s.Brush.Radius
			py := float64(mouse.Y) + math.Sin(angle)*s.Brush.Radius
			rl.DrawCircle(int32(px), int32(py), 2, rl.NewColor(0, 255, 255, 255))
		}
	}
}

// drawScrollbar shows the visible slice of a canvas wider than the
// screen.
func (g *Game) drawScrollbar(s *Session) {
	screenW := float64(g.cfg.ScreenWidth)
	if s.Goal.TotalWidth <= screenW {
		return
	}
	barY := g.cfg.ScreenHeight - 15
	rl.DrawRectangle(0, barY, g.cfg.ScreenWidth, 10, rl.NewColor(40, 40, 40, 255))

	viewRatio := screenW / s.Goal.TotalWidth
	thumbW := math.Max(50, screenW*viewRatio)
	scrollable := s.Goal.TotalWidth - screenW
	thumbX := s.Camera.X / scrollable * (screenW - thumbW)
	rl.DrawRectangleRounded(
		rl.NewRectangle(float32(thumbX), float32(barY), float32(thumbW), 10),
		0.5, 4, rl.NewColor(150, 150, 150, 255))
}

func (g *Game) drawStatus(s *Session) {
	rl.DrawText(fmt.Sprintf("Nivel %d: %s", g.level, s.Word), 20, 20, 30, rl.NewColor(200, 200, 200, 255))

	progress := float32(s.Goal.Progress())
	gui.ProgressBar(rl.NewRectangle(20, 60, 220, 24),
		"", fmt.Sprintf("%.0f%%", progress), &progress, 0, 100)

	if s.TimeLeft() > 0 {
		color := rl.NewColor(255, 255, 255, 255)
		if s.TimeLeft() < 10 {
			color = rl.NewColor(255, 100, 100, 255)
		}
		timer := ui.Label{
			Text:      fmt.Sprintf("Tiempo: %.1fs", s.TimeLeft()),
			FontSize:  30,
			Color:     color,
			Alignment: ui.TextAlignRight,
		}
		timer.Draw(rl.NewRectangle(0, 20, float32(g.cfg.ScreenWidth-20), 30))
	}

	rl.DrawText("TAB: traza DK | A/D: desplazar | ESC: menu",
		20, g.cfg.ScreenHeight-30, 16, rl.NewColor(100, 100, 100, 255))
}
