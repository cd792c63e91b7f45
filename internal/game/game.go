// Package game ties the pieces together: the menu flow, the per-word
// play session, the HUD and the debug overlay.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/audio"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/config"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/menu"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/ui"
)

type gameState int

const (
	stateMenu gameState = iota
	statePlaying
	stateFinished
)

// Game owns the window and the top-level state machine.
type Game struct {
	cfg   config.Config
	menu  *menu.Menu
	sound *audio.Manager

	state   gameState
	session *Session

	// Word progression: the typed word is level 1, each victory
	// advances through the configured word list.
	level      int
	lastResult menu.Result
}

func New(cfg config.Config) *Game {
	return &Game{
		cfg:   cfg,
		menu:  menu.New(cfg.ScreenWidth, cfg.ScreenHeight),
		state: stateMenu,
	}
}

// Run opens the window and drives the frame loop until the player quits.
func (g *Game) Run() {
	rl.InitWindow(g.cfg.ScreenWidth, g.cfg.ScreenHeight, "ConvexGlyph - DK Intersection")
	defer rl.CloseWindow()
	rl.SetTargetFPS(g.cfg.TargetFPS)
	rl.SetExitKey(0) // ESC navigates, it must not close the window
	applyTheme()

	g.sound = audio.Init()
	defer g.sound.Close()
	g.sound.Load("click", g.cfg.ClickSound)

	for !rl.WindowShouldClose() {
		if !g.update() {
			return
		}
		g.draw()
	}
}

// update advances one frame; returns false when the game should exit.
func (g *Game) update() bool {
	deltaTime := rl.GetFrameTime()

	switch g.state {
	case stateMenu:
		result, quit := g.menu.Update()
		if quit {
			return false
		}
		if result != nil {
			g.lastResult = *result
			g.level = 1
			// If the word produced no traceable cells, stay in the menu.
			g.startSession(result.Word)
		}

	case statePlaying:
		if !g.session.Update(deltaTime, func() { g.sound.Play("click") }) {
			if g.session.Outcome == SessionAborted {
				g.backToMenu()
			} else {
				g.state = stateFinished
			}
		}

	case stateFinished:
		won := g.session != nil && g.session.Outcome == SessionWon
		if rl.IsKeyPressed(rl.KeyEscape) {
			g.backToMenu()
		} else if rl.IsKeyPressed(rl.KeyEnter) || rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			if won {
				g.nextWord()
			} else {
				g.backToMenu()
			}
		}
	}
	return true
}

// startSession begins playing word with the mode and time limit the
// player picked in the menu. Returns false if the word has no cells.
func (g *Game) startSession(word string) bool {
	result := g.lastResult
	result.Word = word
	session, err := NewSession(result, g.cfg)
	if err != nil {
		return false
	}
	g.session = session
	g.state = statePlaying
	return true
}

// nextWord advances to the next entry of the configured word list,
// cycling when the list runs out.
func (g *Game) nextWord() {
	word := g.cfg.Words[(g.level-1)%len(g.cfg.Words)]
	g.level++
	if !g.startSession(word) {
		g.backToMenu()
	}
}

func (g *Game) backToMenu() {
	g.session = nil
	g.menu.Reset()
	g.state = stateMenu
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 30, 255))

	switch g.state {
	case stateMenu:
		g.menu.Draw()

	case statePlaying:
		g.drawSession(g.session)

	case stateFinished:
		g.drawSession(g.session)
		g.drawFinishBanner()
	}

	rl.EndDrawing()
}

func (g *Game) drawFinishBanner() {
	w, h := g.cfg.ScreenWidth, g.cfg.ScreenHeight
	rl.DrawRectangle(0, 0, w, h, rl.NewColor(0, 0, 0, 160))

	text := "VICTORIA"
	color := rl.NewColor(100, 255, 100, 255)
	hint := "ENTER: siguiente palabra | ESC: menu"
	if g.session != nil && g.session.Outcome == SessionTimeUp {
		text = "TIEMPO AGOTADO"
		color = rl.NewColor(255, 100, 100, 255)
		hint = "ENTER para volver al menu"
	}

	banner := ui.Label{Text: text, FontSize: 70, Color: color, Alignment: ui.TextAlignCenter}
	banner.Draw(rl.NewRectangle(0, float32(h/2-95), float32(w), 70))

	hintLabel := ui.Label{Text: hint, FontSize: 24, Color: rl.Gray, Alignment: ui.TextAlignCenter}
	hintLabel.Draw(rl.NewRectangle(0, float32(h/2+18), float32(w), 24))
}
