package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScrollCamera pans horizontally across the word canvas. The canvas is
// wider than the screen for long words; the camera clamps to its edges.
type ScrollCamera struct {
	X          float64
	Speed      float64 // pixels per second
	ScreenW    float64
	TotalWidth float64
}

func New(screenW float64) *ScrollCamera {
	return &ScrollCamera{
		Speed:   600,
		ScreenW: screenW,
	}
}

// Update moves the camera from held keys (A/D or the arrow keys) and
// clamps to the scrollable range.
func (c *ScrollCamera) Update(deltaTime float32) {
	dt := float64(deltaTime)
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		c.X -= c.Speed * dt
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		c.X += c.Speed * dt
	}

	maxX := c.TotalWidth - c.ScreenW
	if maxX < 0 {
		maxX = 0
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.X > maxX {
		c.X = maxX
	}
}

// ToWorld converts a screen position to canvas coordinates.
func (c *ScrollCamera) ToWorld(screen mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{screen.X() + c.X, screen.Y()}
}

// ToScreen converts a canvas position to screen coordinates.
func (c *ScrollCamera) ToScreen(world mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{world.X() - c.X, world.Y()}
}
