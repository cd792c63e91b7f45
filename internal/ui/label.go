package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// Label draws a line of text aligned within a rectangle.
type Label struct {
	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

// Draw renders the text within the given rect
func (l Label) Draw(rect rl.Rectangle) {
	if l.Text == "" {
		return
	}

	textWidth := float32(rl.MeasureText(l.Text, l.FontSize))

	var x float32
	switch l.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	y := rect.Y + (rect.Height-float32(l.FontSize))/2
	rl.DrawText(l.Text, int32(x), int32(y), l.FontSize, l.Color)
}

// DrawCentered is a convenience for one-off centered captions.
func DrawCentered(text string, centerX, y, fontSize int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, centerX-w/2, y, fontSize, color)
}
