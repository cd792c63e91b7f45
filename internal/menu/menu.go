// Package menu implements the pre-game flow: title screen, mode select,
// word input and, for the time trial, the time select.
package menu

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/ui"
)

// Mode is the play mode picked in the menu.
type Mode int

const (
	ModeClassic Mode = iota
	ModeTimeTrial
)

// State identifies the current menu screen.
type State int

const (
	StateTitle State = iota
	StateSelectMode
	StateInputText
	StateSelectTime
)

// Result is produced when the player finishes the menu flow.
type Result struct {
	Word      string
	Mode      Mode
	TimeLimit int // seconds; 0 for classic
}

// Menu runs the screen flow until the player either starts a game or
// quits.
type Menu struct {
	screenW int32
	screenH int32

	state State
	mode  Mode

	btnPlay    *ui.Button
	btnQuit    *ui.Button
	btnClassic *ui.Button
	btnTimer   *ui.Button
	btnStart   *ui.Button
	btnBack    *ui.Button
	timeBtns    []*ui.Button
	timeSeconds []int

	input *ui.TextBox
}

func New(screenW, screenH int32) *Menu {
	cx := float32(screenW) / 2
	cy := float32(screenH) / 2

	m := &Menu{
		screenW: screenW,
		screenH: screenH,
		state:   StateTitle,
	}

	m.btnPlay = ui.NewButton(rl.NewRectangle(cx-150, cy, 300, 80), "JUGAR", "PLAY").
		Colored(rl.NewColor(0, 180, 0, 255), rl.NewColor(50, 230, 50, 255))
	m.btnQuit = ui.NewButton(rl.NewRectangle(cx-150, cy+100, 300, 80), "SALIR", "QUIT").
		Colored(rl.NewColor(180, 0, 0, 255), rl.NewColor(230, 50, 50, 255))

	modeY := cy - 80 + 50
	m.btnClassic = ui.NewButton(rl.NewRectangle(cx-150, modeY, 300, 80), "CLASICO", "CLASSIC").
		Colored(rl.NewColor(0, 100, 200, 255), rl.NewColor(0, 150, 255, 255))
	m.btnTimer = ui.NewButton(rl.NewRectangle(cx-150, modeY+110, 300, 80), "CONTRARRELOJ", "TIMER").
		Colored(rl.NewColor(200, 50, 0, 255), rl.NewColor(255, 100, 0, 255))

	inputW := float32(600)
	m.input = ui.NewTextBox(rl.NewRectangle(cx-inputW/2, cy-20, inputW, 60))

	startY := cy + 60
	m.btnStart = ui.NewButton(rl.NewRectangle(cx-100, startY, 200, 60), "EMPEZAR", "START").
		Colored(rl.NewColor(0, 200, 100, 255), rl.NewColor(50, 255, 100, 255))
	m.btnBack = ui.NewButton(rl.NewRectangle(cx-100, startY+80, 200, 60), "VOLVER", "BACK").
		Colored(rl.NewColor(100, 50, 50, 255), rl.NewColor(150, 80, 80, 255))

	timeY := cy + 50
	for i, choice := range []struct {
		label   string
		seconds int
	}{
		{"15s", 15}, {"30s", 30}, {"1m", 60}, {"3m", 180},
	} {
		x := cx - 220 + float32(i)*120
		btn := ui.NewButton(rl.NewRectangle(x, timeY, 100, 80), choice.label, choice.label).
			Colored(rl.NewColor(80, 80, 80, 255), rl.NewColor(120, 120, 120, 255))
		btn.FontSize = 24
		m.timeBtns = append(m.timeBtns, btn)
		m.timeSeconds = append(m.timeSeconds, choice.seconds)
	}

	return m
}

// Reset puts the menu back on the mode screen, used when a game returns
// to the menu.
func (m *Menu) Reset() {
	m.state = StateSelectMode
	m.input.Reset()
}

// goBack cascades one screen backwards.
func (m *Menu) goBack() {
	switch m.state {
	case StateSelectMode:
		m.state = StateTitle
	case StateInputText:
		m.state = StateSelectMode
		m.input.Reset()
	case StateSelectTime:
		m.state = StateInputText
	}
}

// Update processes one frame of menu input. It returns a Result when a
// game should start, and quit=true when the player wants out.
func (m *Menu) Update() (result *Result, quit bool) {
	if m.state != StateTitle {
		if m.btnBack.Update() || rl.IsKeyPressed(rl.KeyEscape) {
			m.goBack()
			return nil, false
		}
	}

	switch m.state {
	case StateTitle:
		if m.btnPlay.Update() {
			m.state = StateSelectMode
		}
		if m.btnQuit.Update() {
			return nil, true
		}

	case StateSelectMode:
		if m.btnClassic.Update() {
			m.mode = ModeClassic
			m.state = StateInputText
			m.input.Active = true
		}
		if m.btnTimer.Update() {
			m.mode = ModeTimeTrial
			m.state = StateInputText
			m.input.Active = true
		}

	case StateInputText:
		confirmed := m.input.Update()
		if m.btnStart.Update() && len(m.input.Text) > 0 {
			confirmed = true
		}
		if confirmed {
			if m.mode == ModeClassic {
				return &Result{Word: m.input.Text, Mode: ModeClassic}, false
			}
			m.state = StateSelectTime
		}

	case StateSelectTime:
		for i, btn := range m.timeBtns {
			if btn.Update() {
				return &Result{
					Word:      m.input.Text,
					Mode:      ModeTimeTrial,
					TimeLimit: m.timeSeconds[i],
				}, false
			}
		}
	}

	return nil, false
}

// Draw renders the current menu screen.
func (m *Menu) Draw() {
	cx := m.screenW / 2

	switch m.state {
	case StateTitle:
		ui.DrawCentered("ConvexGlyph", cx, m.screenH/4, 70, rl.White)
		ui.DrawCentered("Dobkin-Kirkpatrick trazado de letras", cx, m.screenH/4+80, 20, rl.Gray)
		m.btnPlay.Draw()
		m.btnQuit.Draw()

	case StateSelectMode:
		ui.DrawCentered("Elige un modo", cx, m.screenH/4, 50, rl.White)
		m.btnClassic.Draw()
		m.btnTimer.Draw()
		m.btnBack.Draw()

	case StateInputText:
		ui.DrawCentered("Escribe una palabra", cx, m.screenH/4, 50, rl.White)
		m.input.Draw()
		m.btnStart.Draw()
		m.btnBack.Draw()

	case StateSelectTime:
		ui.DrawCentered("Elige el tiempo", cx, m.screenH/4, 50, rl.White)
		for _, btn := range m.timeBtns {
			btn.Draw()
		}
		m.btnBack.Draw()
	}
}
