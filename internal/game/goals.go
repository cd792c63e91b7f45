package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/glyph"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/hierarchy"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/mesh"
)

// Brush is the stroke sampler: besides the stroke segment itself, the
// brush probes points on a circle around the cursor so thick strokes
// register on every cell they cover.
type Brush struct {
	Radius  float64
	Samples int
}

// CellGoal is one convex cell of a letter with its own intersection
// hierarchy. The player completes it by stroking across it while
// holding the mouse button.
type CellGoal struct {
	Vertices  []mgl64.Vec2
	Completed bool
	Highlight bool

	hier *hierarchy.Hierarchy
}

// NewCellGoal builds the hierarchy for one convex cell.
func NewCellGoal(vertices []mgl64.Vec2, opts ...hierarchy.Option) (*CellGoal, error) {
	m, err := mesh.FromConvexPolygon(vertices)
	if err != nil {
		return nil, err
	}
	h, err := hierarchy.Build(m, opts...)
	if err != nil {
		return nil, err
	}
	return &CellGoal{Vertices: vertices, hier: h}, nil
}

// CheckCollision runs the segment query for one stroke step.
func (g *CellGoal) CheckCollision(last, cur mgl64.Vec2) bool {
	return g.hier.IntersectsSegment(last, cur)
}

// DebugTrace exposes the query trace for the debug overlay.
func (g *CellGoal) DebugTrace(last, cur mgl64.Vec2) []hierarchy.TraceStep {
	return g.hier.TraceIntersection(last, cur)
}

// hitByBrush tests the stroke segment and then the brush perimeter
// points (as degenerate segments) until one touches the cell.
func (g *CellGoal) hitByBrush(last, cur mgl64.Vec2, brush Brush) bool {
	if g.CheckCollision(last, cur) {
		return true
	}
	for i := 0; i < brush.Samples; i++ {
		angle := 2 * math.Pi * float64(i) / float64(brush.Samples)
		p := mgl64.Vec2{
			cur.X() + math.Cos(angle)*brush.Radius,
			cur.Y() + math.Sin(angle)*brush.Radius,
		}
		if g.hier.IntersectsSegment(p, p) {
			return true
		}
	}
	return false
}

// Update advances the cell for one frame of stroke input. It returns
// true on the frame the cell transitions to completed.
func (g *CellGoal) Update(last, cur mgl64.Vec2, brush Brush, clicking bool) bool {
	if g.Completed {
		return false
	}
	if g.hitByBrush(last, cur, brush) {
		g.Highlight = true
		if clicking {
			g.Completed = true
			return true
		}
	} else {
		g.Highlight = false
	}
	return false
}

// Center returns the cell centroid, used to find the cell nearest the
// cursor for the debug overlay.
func (g *CellGoal) Center() mgl64.Vec2 {
	var cx, cy float64
	for _, v := range g.Vertices {
		cx += v.X()
		cy += v.Y()
	}
	n := float64(len(g.Vertices))
	return mgl64.Vec2{cx / n, cy / n}
}

// LetterGoal groups the cells of one letter placed at an offset.
type LetterGoal struct {
	Char  rune
	Cells []*CellGoal
}

// NewLetterGoal rasterizes char at (x, y) with the given scale.
func NewLetterGoal(char rune, x, y, scale float64, opts ...hierarchy.Option) (*LetterGoal, error) {
	lg := &LetterGoal{Char: char}
	for _, poly := range glyph.CellPolygons(char, scale) {
		placed := make([]mgl64.Vec2, len(poly))
		for i, p := range poly {
			placed[i] = mgl64.Vec2{p.X() + x, p.Y() + y}
		}
		cell, err := NewCellGoal(placed, opts...)
		if err != nil {
			return nil, err
		}
		lg.Cells = append(lg.Cells, cell)
	}
	return lg, nil
}

// Update advances every cell; reports whether any cell completed this
// frame (used for the click sound).
func (lg *LetterGoal) Update(last, cur mgl64.Vec2, brush Brush, clicking bool) bool {
	hitAny := false
	for _, cell := range lg.Cells {
		if cell.Update(last, cur, brush, clicking) {
			hitAny = true
		}
	}
	return hitAny
}

// IsCompleted reports whether every cell of the letter is done.
func (lg *LetterGoal) IsCompleted() bool {
	for _, cell := range lg.Cells {
		if !cell.Completed {
			return false
		}
	}
	return true
}

// WordGoal lays the word's letters out on the canvas.
type WordGoal struct {
	Letters    []*LetterGoal
	TotalWidth float64
}

// NewWordGoal places word starting centered on screenWidth (or at the
// left margin when the word is wider than the screen).
func NewWordGoal(word string, startY, screenWidth, scale float64, opts ...hierarchy.Option) (*WordGoal, error) {
	letterSpacing := scale * 1.5
	wordSpacing := scale * 1.0

	var width float64
	for _, char := range word {
		if char == ' ' {
			width += wordSpacing
		} else {
			width += letterSpacing
		}
	}

	startX := 50.0
	if width < screenWidth {
		startX = (screenWidth - width) / 2
	}

	wg := &WordGoal{}
	x := startX
	for _, char := range word {
		if char == ' ' {
			x += wordSpacing
			continue
		}
		letter, err := NewLetterGoal(char, x, startY, scale, opts...)
		if err != nil {
			return nil, err
		}
		wg.Letters = append(wg.Letters, letter)
		x += letterSpacing
	}
	wg.TotalWidth = math.Max(width+100, screenWidth)
	return wg, nil
}

// Update advances every letter; reports whether any cell completed.
func (wg *WordGoal) Update(last, cur mgl64.Vec2, brush Brush, clicking bool) bool {
	hitAny := false
	for _, letter := range wg.Letters {
		if letter.Update(last, cur, brush, clicking) {
			hitAny = true
		}
	}
	return hitAny
}

// IsCompleted reports whether the whole word has been traced.
func (wg *WordGoal) IsCompleted() bool {
	for _, letter := range wg.Letters {
		if !letter.IsCompleted() {
			return false
		}
	}
	return true
}

// Progress returns the completed share of cells in percent.
func (wg *WordGoal) Progress() float64 {
	total, done := 0, 0
	for _, letter := range wg.Letters {
		for _, cell := range letter.Cells {
			total++
			if cell.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// InsideValidArea probes whether pos lies on any cell, using a short
// segment from pos to pos+(0.1, 0.1) the way the original stroke
// validation does.
func (wg *WordGoal) InsideValidArea(pos mgl64.Vec2) bool {
	p2 := mgl64.Vec2{pos.X() + 0.1, pos.Y() + 0.1}
	for _, letter := range wg.Letters {
		for _, cell := range letter.Cells {
			if cell.CheckCollision(pos, p2) {
				return true
			}
		}
	}
	return false
}

// ClosestCell returns the cell whose centroid is nearest to pos, or nil
// for an empty word.
func (wg *WordGoal) ClosestCell(pos mgl64.Vec2) *CellGoal {
	var closest *CellGoal
	best := math.Inf(1)
	for _, letter := range wg.Letters {
		for _, cell := range letter.Cells {
			c := cell.Center()
			d := (c.X()-pos.X())*(c.X()-pos.X()) + (c.Y()-pos.Y())*(c.Y()-pos.Y())
			if d < best {
				best = d
				closest = cell
			}
		}
	}
	return closest
}
