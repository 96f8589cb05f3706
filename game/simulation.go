package game

import (
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/diolix/bevy-snake-game/components"
	"github.com/diolix/bevy-snake-game/systems"
	"github.com/diolix/bevy-snake-game/telemetry"
)

// step advances the simulation by one frame. Execution order is fixed:
// direction input is applied before the movement tick, movement and its
// collision check complete before the round-reset consumer, and the eating
// check feeds the growth consumer within the same frame.
func (g *Game) step(dt time.Duration) {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.heading = systems.Arbitrate(g.heading, g.held)

	g.perf.StartPhase(telemetry.PhaseMovement)
	if g.moveClock.Advance(dt) {
		g.stepMovement()
	}

	g.perf.StartPhase(telemetry.PhaseEating)
	g.stepEating()

	g.perf.StartPhase(telemetry.PhaseGrowth)
	g.stepGrowth()

	g.perf.StartPhase(telemetry.PhaseReset)
	g.stepRoundReset()

	g.perf.StartPhase(telemetry.PhaseSpawner)
	if g.spawnClock.Advance(dt) {
		g.spawnFood()
	}

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
}

// stepMovement advances the chain one cell along the current heading and
// raises a game-over signal on wall or self collision. The move itself is
// committed either way; the signal is consumed at end of frame.
func (g *Game) stepMovement() {
	if len(g.segments) == 0 {
		slog.Error("movement tick with no snake on the board")
		return
	}

	prev := make([]components.Position, 0, len(g.segments))
	for _, e := range g.segments {
		pos := g.posMap.Get(e)
		if pos == nil {
			slog.Error("segment without a position, skipping movement tick", "index", len(prev))
			return
		}
		prev = append(prev, *pos)
	}

	res := systems.Step(prev, g.heading, g.arenaW, g.arenaH)
	if res.HitWall || res.HitSelf {
		g.gameOver = true
		g.collector.RecordCollision(res.HitWall)
	}

	for i, e := range g.segments {
		if pos := g.posMap.Get(e); pos != nil {
			*pos = res.Chain[i]
		}
	}

	g.lastTail = res.TailVacated
	g.lastTailValid = true
}

// stepEating compares the head cell against every live food cell. Each
// exact match despawns that food and raises one growth signal, so stacked
// pellets yield one signal apiece.
func (g *Game) stepEating() {
	if len(g.segments) == 0 {
		return
	}
	headPos := g.posMap.Get(g.segments[0])
	if headPos == nil {
		return
	}
	head := *headPos

	// First pass: collect matches (must complete before modifying)
	var eaten []ecs.Entity
	query := g.boardFilter.Query()
	for query.Next() {
		pos, _, occ := query.Get()
		if occ.Kind == components.KindFood && *pos == head {
			eaten = append(eaten, query.Entity())
		}
	}

	for _, e := range eaten {
		g.boardMapper.Remove(e)
		g.foodCount--
		g.pendingGrowth++
		g.collector.RecordFoodEaten()
	}
}

// stepGrowth consumes at most one growth signal per frame, appending a new
// segment at the cell the tail vacated on the last movement tick. Signals
// beyond the first stay pending for following frames.
func (g *Game) stepGrowth() {
	if g.pendingGrowth == 0 {
		return
	}
	if !g.lastTailValid {
		slog.Warn("growth signal with no recorded tail cell, dropping", "pending", g.pendingGrowth)
		g.pendingGrowth = 0
		return
	}

	g.pendingGrowth--
	g.segments = append(g.segments, g.spawnSegment(g.lastTail))
	g.collector.RecordGrowth()
}

// stepRoundReset consumes a pending game-over signal. Any number of signals
// raised during the frame triggers a single reset: every entity despawns
// and the canonical starting snake respawns. Food resumes on its own clock.
func (g *Game) stepRoundReset() {
	if !g.gameOver {
		return
	}
	g.gameOver = false
	g.rounds++

	length := len(g.segments)
	duration := g.tick - g.roundStartTick
	g.collector.RecordRound(length, duration)
	slog.Info("round over", "round", g.rounds, "length", length, "ticks", duration)

	g.clearBoard()
	g.spawnSnake()
}

// flushTelemetry emits window stats on the collector's cadence.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, len(g.segments), g.foodCount)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
