// Package telemetry aggregates simulation events into windowed statistics.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	foodSpawned int
	foodEaten   int
	growth      int
	wallDeaths  int
	selfDeaths  int

	// Per-round samples for current window
	roundLengths   []float64 // chain length when the round ended
	roundDurations []float64 // round duration in frames
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// RecordFoodSpawned records one food pellet appearing on the board.
func (c *Collector) RecordFoodSpawned() {
	c.foodSpawned++
}

// RecordFoodEaten records the head landing on a food pellet.
func (c *Collector) RecordFoodEaten() {
	c.foodEaten++
}

// RecordGrowth records one segment appended to the chain.
func (c *Collector) RecordGrowth() {
	c.growth++
}

// RecordCollision records a terminal collision. wall distinguishes leaving
// the arena from running into the body.
func (c *Collector) RecordCollision(wall bool) {
	if wall {
		c.wallDeaths++
	} else {
		c.selfDeaths++
	}
}

// RecordRound records a finished round: the chain length at death and how
// many frames the round lasted.
func (c *Collector) RecordRound(length int, durationTicks int32) {
	c.roundLengths = append(c.roundLengths, float64(length))
	c.roundDurations = append(c.roundDurations, float64(durationTicks))
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// chainLength and foodOnBoard are sampled at window end.
func (c *Collector) Flush(currentTick int32, chainLength, foodOnBoard int) WindowStats {
	lengthMean, lengthStd := ComputeRoundStats(c.roundLengths)
	ticksMean, ticksStd := ComputeRoundStats(c.roundDurations)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		ChainLength: chainLength,
		FoodOnBoard: foodOnBoard,

		FoodSpawned: c.foodSpawned,
		FoodEaten:   c.foodEaten,
		Growth:      c.growth,

		Rounds:     len(c.roundLengths),
		WallDeaths: c.wallDeaths,
		SelfDeaths: c.selfDeaths,

		RoundLengthMean: lengthMean,
		RoundLengthStd:  lengthStd,
		RoundTicksMean:  ticksMean,
		RoundTicksStd:   ticksStd,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.foodSpawned = 0
	c.foodEaten = 0
	c.growth = 0
	c.wallDeaths = 0
	c.selfDeaths = 0
	c.roundLengths = c.roundLengths[:0]
	c.roundDurations = c.roundDurations[:0]

	return stats
}
