package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// Button is an interactive menu button. Hovering inflates the rectangle
// slightly; clicks are detected as press-and-release on the same button.
type Button struct {
	Rect  rl.Rectangle
	Text  string
	Value string // action tag naming what the button does (e.g. "PLAY")

	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color
	BorderColor   rl.Color
	FontSize      int32

	State    ButtonState
	Disabled bool

	OnClick Event

	wasPressed bool
}

// NewButton creates a button with the standard dark theme.
func NewButton(rect rl.Rectangle, text, value string) *Button {
	return &Button{
		Rect:          rect,
		Text:          text,
		Value:         value,
		NormalColor:   rl.NewColor(60, 60, 70, 255),
		HoverColor:    rl.NewColor(80, 80, 95, 255),
		PressedColor:  rl.NewColor(100, 100, 120, 255),
		DisabledColor: rl.NewColor(40, 40, 45, 255),
		BorderColor:   rl.NewColor(100, 100, 115, 255),
		FontSize:      28,
		State:         ButtonNormal,
	}
}

// Colored overrides the normal and hover colors, for the green/red
// play-and-quit pair on the title screen.
func (b *Button) Colored(normal, hover rl.Color) *Button {
	b.NormalColor = normal
	b.HoverColor = hover
	return b
}

// drawRect returns the rectangle to render: hovered buttons widen a bit.
func (b *Button) drawRect() rl.Rectangle {
	r := b.Rect
	if b.State == ButtonHovered || b.State == ButtonPressed {
		r.X -= 10
		r.Y -= 5
		r.Width += 20
		r.Height += 10
	}
	return r
}

// Update processes mouse input and returns true when the button was
// clicked this frame.
func (b *Button) Update() bool {
	if b.Disabled {
		b.State = ButtonDisabled
		return false
	}

	mouse := rl.GetMousePosition()
	hovered := rl.CheckCollisionPointRec(mouse, b.Rect)
	down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	released := rl.IsMouseButtonReleased(rl.MouseButtonLeft)

	clicked := false
	if hovered {
		if down {
			b.State = ButtonPressed
			b.wasPressed = true
		} else {
			b.State = ButtonHovered
		}
		if released && b.wasPressed {
			clicked = true
			b.OnClick.Invoke()
			b.wasPressed = false
		}
	} else {
		b.State = ButtonNormal
		if released {
			b.wasPressed = false
		}
	}
	return clicked
}

// Draw renders the button with a drop shadow and centered label.
func (b *Button) Draw() {
	rect := b.drawRect()

	var color rl.Color
	if b.Disabled {
		color = b.DisabledColor
	} else {
		switch b.State {
		case ButtonHovered:
			color = b.HoverColor
		case ButtonPressed:
			color = b.PressedColor
		default:
			color = b.NormalColor
		}
	}

	shadow := rect
	shadow.X += 4
	shadow.Y += 4
	rl.DrawRectangleRounded(shadow, 0.3, 8, rl.NewColor(20, 20, 20, 255))
	rl.DrawRectangleRounded(rect, 0.3, 8, color)
	rl.DrawRectangleRoundedLines(rect, 0.3, 8, rl.White)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	tx := int32(rect.X + (rect.Width-float32(textWidth))/2)
	ty := int32(rect.Y + (rect.Height-float32(b.FontSize))/2)
	rl.DrawText(b.Text, tx, ty, b.FontSize, rl.White)
}
