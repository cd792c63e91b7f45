package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/geom"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/hierarchy"
)

const (
	tracePanelWidth = 350
	traceStepHeight = 100
)

// drawDebugOverlay renders the descent trace of the cell nearest the
// cursor: one box per tested face with its level, vertex count, result
// and a mini rendering of the face polygon.
func (g *Game) drawDebugOverlay(s *Session) {
	cursor := s.CursorWorld()
	cell := s.Goal.ClosestCell(cursor)
	if cell == nil {
		return
	}

	g.outlineCell(s, cell, rl.NewColor(255, 0, 255, 255))

	trace := cell.DebugTrace(cursor, cursor)
	if len(trace) == 0 {
		return
	}

	panelX := g.cfg.ScreenWidth - tracePanelWidth
	rl.DrawRectangle(panelX, 0, tracePanelWidth, g.cfg.ScreenHeight, rl.NewColor(30, 30, 40, 240))
	rl.DrawText("DK Algorithm Trace", panelX+20, 20, 20, rl.White)

	y := int32(60)
	for i, step := range trace {
		if y > g.cfg.ScreenHeight-50 {
			break
		}
		g.drawTraceStep(panelX, y, step)
		if i < len(trace)-1 {
			cx := panelX + tracePanelWidth/2
			rl.DrawLine(cx, y+traceStepHeight, cx, y+traceStepHeight+20, rl.NewColor(100, 100, 100, 255))
		}
		y += traceStepHeight + 20
	}
}

func (g *Game) drawTraceStep(panelX, y int32, step hierarchy.TraceStep) {
	rect := rl.NewRectangle(float32(panelX+20), float32(y), tracePanelWidth-40, traceStepHeight)
	rl.DrawRectangleRounded(rect, 0.1, 4, rl.NewColor(50, 50, 60, 255))

	statusColor := rl.NewColor(255, 100, 100, 255)
	status := "MISS"
	if step.Hit {
		statusColor = rl.NewColor(100, 255, 100, 255)
		status = "INTERSECT"
	}
	rl.DrawRectangleRoundedLines(rect, 0.1, 4, statusColor)

	x := int32(rect.X) + 10
	rl.DrawText(fmt.Sprintf("Level %d", step.LevelIndex), x, y+10, 14, rl.NewColor(200, 200, 200, 255))
	rl.DrawText(fmt.Sprintf("Vertices: %d", len(step.Polygon)), x, y+30, 14, rl.NewColor(150, 150, 150, 255))
	rl.DrawText(fmt.Sprintf("Result: %s", status), x, y+50, 14, statusColor)

	g.drawMiniPolygon(rl.NewRectangle(rect.X+150, rect.Y+10, 140, 80), step.Polygon, statusColor)
}

// drawMiniPolygon fits the face polygon into box and draws its outline
// with the vertices marked.
func (g *Game) drawMiniPolygon(box rl.Rectangle, polygon []mgl64.Vec2, color rl.Color) {
	if len(polygon) < 3 {
		return
	}
	b := geom.PolygonBounds(polygon)
	w := b.Width()
	if w == 0 {
		w = 1
	}
	h := b.Height()
	if h == 0 {
		h = 1
	}
	scale := math.Min(float64(box.Width)/w, float64(box.Height)/h) * 0.8
	center := b.Center()
	cx := float64(box.X) + float64(box.Width)/2
	cy := float64(box.Y) + float64(box.Height)/2

	points := make([]rl.Vector2, len(polygon))
	for i, p := range polygon {
		points[i] = rl.Vector2{
			X: float32(cx + (p.X()-center.X())*scale),
			Y: float32(cy + (p.Y()-center.Y())*scale),
		}
	}
	for i := range points {
		next := points[(i+1)%len(points)]
		rl.DrawLineEx(points[i], next, 2, color)
	}
	for _, p := range points {
		rl.DrawCircle(int32(p.X), int32(p.Y), 2, rl.White)
	}
}
