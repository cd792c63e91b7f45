package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/camera"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/config"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/hierarchy"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/menu"
)

// SessionOutcome signals how a play session ended.
type SessionOutcome int

const (
	SessionRunning SessionOutcome = iota
	SessionWon
	SessionTimeUp
	SessionAborted
)

// Session is one word being traced: the goals, the scroll camera, the
// stroke state and, for the time trial, the countdown.
type Session struct {
	Word    string
	Mode    menu.Mode
	Goal    *WordGoal
	Camera  *camera.ScrollCamera
	Brush   Brush
	Debug   bool
	Outcome SessionOutcome

	timeLeft float64 // seconds, time trial only
	lastPos  mgl64.Vec2
	hasLast  bool
}

// NewSession builds the hierarchies for every cell of the word and
// positions the camera at the canvas origin. A word with no traceable
// cells (only spaces) is an error.
func NewSession(result menu.Result, cfg config.Config) (*Session, error) {
	var opts []hierarchy.Option
	if cfg.DegreeLimit > 0 {
		opts = append(opts, hierarchy.WithDegreeLimit(cfg.DegreeLimit))
	}
	startY := float64(cfg.ScreenHeight)/2 - cfg.LetterScale/2
	goal, err := NewWordGoal(result.Word, startY, float64(cfg.ScreenWidth), cfg.LetterScale, opts...)
	if err != nil {
		return nil, err
	}
	if len(goal.Letters) == 0 {
		return nil, fmt.Errorf("game: word %q has no traceable cells", result.Word)
	}

	cam := camera.New(float64(cfg.ScreenWidth))
	cam.TotalWidth = goal.TotalWidth

	return &Session{
		Word:   result.Word,
		Mode:   result.Mode,
		Goal:   goal,
		Camera: cam,
		Brush: Brush{
			Radius:  cfg.BrushRadius,
			Samples: cfg.BrushSamples,
		},
		timeLeft: float64(result.TimeLimit),
	}, nil
}

// Update advances the session one frame and returns true while it keeps
// running. Completion events (any cell finished this frame) are reported
// through onCellDone.
func (s *Session) Update(deltaTime float32, onCellDone func()) bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		s.Outcome = SessionAborted
		return false
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		s.Debug = !s.Debug
	}

	s.Camera.Update(deltaTime)

	mouse := rl.GetMousePosition()
	cur := s.Camera.ToWorld(mgl64.Vec2{float64(mouse.X), float64(mouse.Y)})
	if !s.hasLast {
		s.lastPos = cur
		s.hasLast = true
	}
	clicking := rl.IsMouseButtonDown(rl.MouseButtonLeft)

	if s.Goal.Update(s.lastPos, cur, s.Brush, clicking) && onCellDone != nil {
		onCellDone()
	}
	s.lastPos = cur

	if s.Goal.IsCompleted() {
		s.Outcome = SessionWon
		return false
	}

	if s.Mode == menu.ModeTimeTrial {
		s.timeLeft -= float64(deltaTime)
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.Outcome = SessionTimeUp
			return false
		}
	}
	return true
}

// CursorWorld returns the current mouse position in canvas coordinates.
func (s *Session) CursorWorld() mgl64.Vec2 {
	mouse := rl.GetMousePosition()
	return s.Camera.ToWorld(mgl64.Vec2{float64(mouse.X), float64(mouse.Y)})
}

// TimeLeft returns the remaining seconds of a time trial.
func (s *Session) TimeLeft() float64 { return s.timeLeft }
