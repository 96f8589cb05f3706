package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowBoundaries(t *testing.T) {
	// 1 second windows at 60 frames per second
	c := NewCollector(1.0, 1.0/60.0)

	if c.ShouldFlush(59) {
		t.Error("window flushed one frame early")
	}
	if !c.ShouldFlush(60) {
		t.Error("window not flushed at the boundary")
	}

	c.Flush(60, 2, 0)

	if c.ShouldFlush(119) {
		t.Error("second window flushed early")
	}
	if !c.ShouldFlush(120) {
		t.Error("second window not flushed at the boundary")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// A window shorter than one frame still spans at least one frame.
	c := NewCollector(0.001, 1.0/60.0)
	if c.ShouldFlush(0) {
		t.Error("flushed before any frame elapsed")
	}
	if !c.ShouldFlush(1) {
		t.Error("minimum window should flush after one frame")
	}
}

func TestCollectorFlushResetsCounters(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	c.RecordFoodSpawned()
	c.RecordFoodSpawned()
	c.RecordFoodEaten()
	c.RecordGrowth()
	c.RecordCollision(true)
	c.RecordCollision(false)
	c.RecordRound(5, 120)
	c.RecordRound(3, 40)

	stats := c.Flush(60, 2, 1)

	if stats.FoodSpawned != 2 || stats.FoodEaten != 1 || stats.Growth != 1 {
		t.Errorf("food stats = spawned %d eaten %d growth %d, want 2/1/1",
			stats.FoodSpawned, stats.FoodEaten, stats.Growth)
	}
	if stats.Rounds != 2 || stats.WallDeaths != 1 || stats.SelfDeaths != 1 {
		t.Errorf("round stats = %d rounds, %d wall, %d self, want 2/1/1",
			stats.Rounds, stats.WallDeaths, stats.SelfDeaths)
	}
	if math.Abs(stats.RoundLengthMean-4.0) > 0.001 {
		t.Errorf("round length mean = %v, want 4.0", stats.RoundLengthMean)
	}
	if math.Abs(stats.RoundTicksMean-80.0) > 0.001 {
		t.Errorf("round ticks mean = %v, want 80.0", stats.RoundTicksMean)
	}
	if stats.ChainLength != 2 || stats.FoodOnBoard != 1 {
		t.Errorf("board sample = length %d food %d, want 2/1", stats.ChainLength, stats.FoodOnBoard)
	}

	// Counters reset for the next window
	next := c.Flush(120, 2, 0)
	if next.FoodSpawned != 0 || next.Rounds != 0 || next.RoundLengthMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("window start = %d, want 60", next.WindowStartTick)
	}
}

func TestComputeRoundStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single sample", []float64{7}, 7, 0},
		{"two samples", []float64{2, 4}, 3, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := ComputeRoundStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 0.001 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
		})
	}
}
