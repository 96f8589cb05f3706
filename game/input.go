package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/diolix/bevy-snake-game/systems"
)

// handleInput samples keyboard state for the frame.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showControls = !g.showControls
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.held = systems.Held{
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Down:  rl.IsKeyDown(rl.KeyDown),
		Up:    rl.IsKeyDown(rl.KeyUp),
		Right: rl.IsKeyDown(rl.KeyRight),
	}
}

// handleResize checks for window resize and updates the cached dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
}
