package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/diolix/bevy-snake-game/components"
)

// Board colors.
var (
	backgroundColor = rl.NewColor(10, 10, 10, 255)
	headColor       = rl.NewColor(179, 179, 179, 255)
	segmentColor    = rl.NewColor(77, 77, 77, 255)
	foodColor       = rl.NewColor(255, 0, 255, 255)
)

// Draw renders the board and HUD. No-op in headless mode.
func (g *Game) Draw() {
	if g.headless {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawBoard()
	g.drawHUD()

	rl.EndDrawing()
}

// cellRect converts a grid position and sprite footprint to screen pixels.
// Grid (0,0) is the bottom-left cell; screen y grows downward.
func (g *Game) cellRect(pos components.Position, size components.Size) rl.Rectangle {
	tileW := g.screenWidth / float32(g.arenaW)
	tileH := g.screenHeight / float32(g.arenaH)

	w := size.Width * tileW
	h := size.Height * tileH

	cx := float32(pos.X)*tileW + tileW/2
	cy := g.screenHeight - (float32(pos.Y)*tileH + tileH/2)

	return rl.Rectangle{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// drawBoard renders every board entity as a rectangle scaled to its cell.
func (g *Game) drawBoard() {
	query := g.boardFilter.Query()
	for query.Next() {
		pos, size, occ := query.Get()

		var color rl.Color
		switch occ.Kind {
		case components.KindHead:
			color = headColor
		case components.KindBody:
			color = segmentColor
		default:
			color = foodColor
		}

		rl.DrawRectangleRec(g.cellRect(*pos, *size), color)
	}
}

// drawHUD renders the text overlay and the optional control strip.
func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("Length: %d", len(g.segments)), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Round: %d  Tick: %d", g.rounds+1, g.tick), 10, 35, 20, rl.White)
	if g.paused {
		rl.DrawText("PAUSED", 10, 60, 20, rl.Yellow)
	}

	if !g.showControls {
		return
	}

	x := g.screenWidth - 120
	if gui.Button(rl.Rectangle{X: x, Y: 10, Width: 110, Height: 24}, pauseLabel(g.paused)) {
		g.paused = !g.paused
	}

	steps := gui.SliderBar(
		rl.Rectangle{X: x, Y: 44, Width: 110, Height: 16},
		"speed", fmt.Sprintf("%dx", g.stepsPerUpdate),
		float32(g.stepsPerUpdate), 1, 10,
	)
	g.stepsPerUpdate = int(steps + 0.5)
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	if g.stepsPerUpdate > 10 {
		g.stepsPerUpdate = 10
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
