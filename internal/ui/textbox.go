package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextBox is a single-line text input with a movable blinking cursor.
// The game uses it to let the player type the word to trace.
type TextBox struct {
	Rect     rl.Rectangle
	Text     string
	Active   bool
	MaxLen   int
	FontSize int32

	cursorPos int
	lastBlink time.Time
	blinkOn   bool
}

func NewTextBox(rect rl.Rectangle) *TextBox {
	return &TextBox{
		Rect:     rect,
		MaxLen:   24,
		FontSize: 36,
		blinkOn:  true,
	}
}

// Reset clears the content and deactivates the box.
func (tb *TextBox) Reset() {
	tb.Text = ""
	tb.cursorPos = 0
	tb.Active = false
}

// Update handles focus clicks and keyboard editing. Returns true when
// the player confirmed the input with Enter on non-empty text.
func (tb *TextBox) Update() bool {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		tb.Active = rl.CheckCollisionPointRec(rl.GetMousePosition(), tb.Rect)
	}
	if !tb.Active {
		return false
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if len(tb.Text) >= tb.MaxLen {
			continue
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == ' ' {
			tb.Text = tb.Text[:tb.cursorPos] + string(ch) + tb.Text[tb.cursorPos:]
			tb.cursorPos++
		}
	}

	if rl.IsKeyPressed(rl.KeyBackspace) && tb.cursorPos > 0 {
		tb.Text = tb.Text[:tb.cursorPos-1] + tb.Text[tb.cursorPos:]
		tb.cursorPos--
	}
	if rl.IsKeyPressed(rl.KeyDelete) && tb.cursorPos < len(tb.Text) {
		tb.Text = tb.Text[:tb.cursorPos] + tb.Text[tb.cursorPos+1:]
	}
	if rl.IsKeyPressed(rl.KeyLeft) && tb.cursorPos > 0 {
		tb.cursorPos--
	}
	if rl.IsKeyPressed(rl.KeyRight) && tb.cursorPos < len(tb.Text) {
		tb.cursorPos++
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		tb.cursorPos = 0
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		tb.cursorPos = len(tb.Text)
	}

	return rl.IsKeyPressed(rl.KeyEnter) && len(tb.Text) > 0
}

// Draw renders the box, its content and the blinking cursor.
func (tb *TextBox) Draw() {
	border := rl.NewColor(135, 206, 235, 255) // inactive: light sky blue
	if tb.Active {
		border = rl.NewColor(30, 144, 255, 255) // active: dodger blue
	}
	rl.DrawRectangleRec(tb.Rect, rl.NewColor(25, 25, 35, 255))
	rl.DrawRectangleLinesEx(tb.Rect, 2, border)

	tx := int32(tb.Rect.X) + 10
	ty := int32(tb.Rect.Y + (tb.Rect.Height-float32(tb.FontSize))/2)
	rl.DrawText(tb.Text, tx, ty, tb.FontSize, rl.White)

	if time.Since(tb.lastBlink) > 500*time.Millisecond {
		tb.blinkOn = !tb.blinkOn
		tb.lastBlink = time.Now()
	}
	if tb.Active && tb.blinkOn {
		cursorX := tx + rl.MeasureText(tb.Text[:tb.cursorPos], tb.FontSize)
		rl.DrawRectangle(cursorX+2, ty, 3, tb.FontSize, rl.White)
	}
}
