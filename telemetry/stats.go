package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Board state at window end
	ChainLength int `csv:"chain_length"`
	FoodOnBoard int `csv:"food_on_board"`

	// Events during window
	FoodSpawned int `csv:"food_spawned"`
	FoodEaten   int `csv:"food_eaten"`
	Growth      int `csv:"growth"`

	// Rounds ended during window
	Rounds     int `csv:"rounds"`
	WallDeaths int `csv:"wall_deaths"`
	SelfDeaths int `csv:"self_deaths"`

	// Per-round distribution
	RoundLengthMean float64 `csv:"round_length_mean"`
	RoundLengthStd  float64 `csv:"round_length_std"`
	RoundTicksMean  float64 `csv:"round_ticks_mean"`
	RoundTicksStd   float64 `csv:"round_ticks_std"`
}

// ComputeRoundStats calculates mean and standard deviation of per-round
// samples. Returns zeros for an empty slice; std is zero for a single
// sample.
func ComputeRoundStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}
	return mean, std
}

// LogStats writes the window to the structured log.
func (s WindowStats) LogStats() {
	slog.Info("window stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"chain_length", s.ChainLength,
		"food_on_board", s.FoodOnBoard,
		"food_spawned", s.FoodSpawned,
		"food_eaten", s.FoodEaten,
		"growth", s.Growth,
		"rounds", s.Rounds,
		"wall_deaths", s.WallDeaths,
		"self_deaths", s.SelfDeaths,
		"round_length_mean", s.RoundLengthMean,
		"round_ticks_mean", s.RoundTicksMean,
	)
}
