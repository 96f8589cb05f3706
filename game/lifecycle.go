package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/diolix/bevy-snake-game/components"
	"github.com/diolix/bevy-snake-game/config"
)

// Sprite footprints relative to one grid cell.
const (
	headScale    = 0.8
	segmentScale = 0.65
	foodScale    = 0.8
)

// spawnSnake creates the canonical starting chain: a head plus one body
// segment at the configured cells, heading up.
func (g *Game) spawnSnake() {
	cfg := config.Cfg()

	pos := components.Position{X: int32(cfg.Snake.HeadX), Y: int32(cfg.Snake.HeadY)}
	size := components.Square(headScale)
	occ := components.Occupant{Kind: components.KindHead}
	head := g.boardMapper.NewEntity(&pos, &size, &occ)

	g.segments = g.segments[:0]
	g.segments = append(g.segments,
		head,
		g.spawnSegment(components.Position{X: int32(cfg.Snake.TailX), Y: int32(cfg.Snake.TailY)}),
	)

	g.heading = components.DirUp
	g.lastTailValid = false
	g.pendingGrowth = 0
	g.roundStartTick = g.tick
}

// spawnSegment creates one body segment at the given cell.
func (g *Game) spawnSegment(at components.Position) ecs.Entity {
	pos := at
	size := components.Square(segmentScale)
	occ := components.Occupant{Kind: components.KindBody}
	return g.boardMapper.NewEntity(&pos, &size, &occ)
}

// spawnFood creates one food pellet at a uniformly random cell. Overlap
// with the snake or with other food is not prevented.
func (g *Game) spawnFood() {
	pos := components.Position{
		X: int32(g.rng.Float32() * float32(g.arenaW)),
		Y: int32(g.rng.Float32() * float32(g.arenaH)),
	}
	size := components.Square(foodScale)
	occ := components.Occupant{Kind: components.KindFood}
	g.boardMapper.NewEntity(&pos, &size, &occ)
	g.foodCount++
	g.collector.RecordFoodSpawned()
}

// clearBoard despawns every board entity, snake and food alike.
func (g *Game) clearBoard() {
	// First pass: collect entities (must complete before modifying)
	var all []ecs.Entity
	query := g.boardFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}

	for _, e := range all {
		g.boardMapper.Remove(e)
	}

	g.segments = g.segments[:0]
	g.foodCount = 0
	g.lastTailValid = false
}
