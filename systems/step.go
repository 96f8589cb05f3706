// Package systems provides the pure simulation systems for the snake game.
package systems

import "github.com/diolix/bevy-snake-game/components"

// StepResult holds the outcome of one movement tick.
type StepResult struct {
	// Chain is the post-move position of every segment, head first.
	Chain []components.Position
	// TailVacated is the cell the tail held before the move.
	TailVacated components.Position
	// HitWall is set when the new head position leaves the arena.
	HitWall bool
	// HitSelf is set when the new head position lands on the pre-move chain.
	HitSelf bool
}

// Step advances a segment chain one cell along heading. prev is the pre-move
// chain, head first, and must be non-empty. The move is committed even when
// a collision is flagged; the caller decides what to do with the signals at
// end of frame.
func Step(prev []components.Position, heading components.Direction, arenaW, arenaH int32) StepResult {
	dx, dy := heading.Vector()
	newHead := components.Position{X: prev[0].X + dx, Y: prev[0].Y + dy}

	res := StepResult{
		Chain:       make([]components.Position, len(prev)),
		TailVacated: prev[len(prev)-1],
	}

	if newHead.X < 0 || newHead.Y < 0 || newHead.X >= arenaW || newHead.Y >= arenaH {
		res.HitWall = true
	}

	// The self check runs against the pre-move snapshot, so passing through
	// the cell the tail is about to vacate still counts as a collision.
	for _, p := range prev {
		if p == newHead {
			res.HitSelf = true
			break
		}
	}

	res.Chain[0] = newHead
	for i := 1; i < len(prev); i++ {
		res.Chain[i] = prev[i-1]
	}

	return res
}
