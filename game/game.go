// Package game owns the simulation state and the frame loop.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/diolix/bevy-snake-game/components"
	"github.com/diolix/bevy-snake-game/config"
	"github.com/diolix/bevy-snake-game/systems"
	"github.com/diolix/bevy-snake-game/telemetry"
)

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity registry access
	boardMapper *ecs.Map3[components.Position, components.Size, components.Occupant]
	boardFilter *ecs.Filter3[components.Position, components.Size, components.Occupant]
	posMap      *ecs.Map1[components.Position]

	// Chain order, head first. The registry owns entity lifetime; this
	// slice owns only the ordering.
	segments []ecs.Entity

	// Direction state: current heading plus the per-frame key snapshot.
	heading components.Direction
	held    systems.Held

	// Cell the tail vacated on the most recent movement tick. Only valid
	// between a movement tick and the growth that consumes it.
	lastTail      components.Position
	lastTailValid bool

	// Signals raised during the frame, drained by their consumers.
	pendingGrowth int
	gameOver      bool

	// Cadence clocks
	moveClock  *cadenceClock
	spawnClock *cadenceClock

	frameDT        time.Duration
	arenaW, arenaH int32

	// State
	tick           int32
	rounds         int
	roundStartTick int32
	foodCount      int
	paused         bool
	stepsPerUpdate int
	headless       bool
	logStats       bool

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	// Window dimensions
	screenWidth, screenHeight float32
	showControls              bool
}

// Options configures game construction.
type Options struct {
	Seed           int64 // 0 = time-based
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	StepsPerUpdate int
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a new game instance. Config must be initialized
// before calling.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(seed)),
		boardMapper: ecs.NewMap3[
			components.Position,
			components.Size,
			components.Occupant,
		](world),
		boardFilter: ecs.NewFilter3[
			components.Position,
			components.Size,
			components.Occupant,
		](world),
		posMap:         ecs.NewMap1[components.Position](world),
		arenaW:         cfg.Derived.ArenaW32,
		arenaH:         cfg.Derived.ArenaH32,
		frameDT:        cfg.Derived.FrameDT,
		moveClock:      newCadenceClock(cfg.Derived.MovementInterval),
		spawnClock:     newCadenceClock(cfg.Derived.FoodSpawnInterval),
		stepsPerUpdate: steps,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	g.collector = telemetry.NewCollector(statsWindow, float32(cfg.Frame.DT))
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
		}
	}

	g.spawnSnake()

	return g
}

// Update samples input and runs one or more simulation frames.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.frameDT)
	}
}

// UpdateHeadless advances the simulation without touching the window or
// keyboard. Input arrives through SetHeld.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.frameDT)
	}
}

// SetHeld replaces the per-frame snapshot of held directional keys. The
// graphical loop feeds this from the keyboard; a headless driver calls it
// directly.
func (g *Game) SetHeld(h systems.Held) {
	g.held = h
}

// Heading returns the snake's current heading.
func (g *Game) Heading() components.Direction {
	return g.heading
}

// SegmentPositions returns the chain cells, head first, for rendering.
func (g *Game) SegmentPositions() []components.Position {
	out := make([]components.Position, 0, len(g.segments))
	for _, e := range g.segments {
		if pos := g.posMap.Get(e); pos != nil {
			out = append(out, *pos)
		}
	}
	return out
}

// FoodPositions returns every live food cell, for rendering.
func (g *Game) FoodPositions() []components.Position {
	var out []components.Position
	query := g.boardFilter.Query()
	for query.Next() {
		pos, _, occ := query.Get()
		if occ.Kind == components.KindFood {
			out = append(out, *pos)
		}
	}
	return out
}

// Tick returns the current frame counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// Rounds returns the number of rounds ended since startup.
func (g *Game) Rounds() int {
	return g.rounds
}

// Unload flushes and closes telemetry outputs.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
	}
}
