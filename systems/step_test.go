package systems

import (
	"reflect"
	"testing"

	"github.com/diolix/bevy-snake-game/components"
)

func pos(x, y int32) components.Position {
	return components.Position{X: x, Y: y}
}

func TestStepChainShift(t *testing.T) {
	tests := []struct {
		name      string
		prev      []components.Position
		heading   components.Direction
		wantChain []components.Position
		wantTail  components.Position
	}{
		{
			name:      "head only pair moves right",
			prev:      []components.Position{pos(5, 5), pos(4, 5)},
			heading:   components.DirRight,
			wantChain: []components.Position{pos(6, 5), pos(5, 5)},
			wantTail:  pos(4, 5),
		},
		{
			name:      "each segment takes its predecessor's cell",
			prev:      []components.Position{pos(5, 5), pos(5, 4), pos(5, 3), pos(4, 3)},
			heading:   components.DirUp,
			wantChain: []components.Position{pos(5, 6), pos(5, 5), pos(5, 4), pos(5, 3)},
			wantTail:  pos(4, 3),
		},
		{
			name:      "moving down",
			prev:      []components.Position{pos(2, 7), pos(2, 8)},
			heading:   components.DirDown,
			wantChain: []components.Position{pos(2, 6), pos(2, 7)},
			wantTail:  pos(2, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Step(tt.prev, tt.heading, 10, 10)
			if res.HitWall || res.HitSelf {
				t.Fatalf("unexpected collision: wall=%v self=%v", res.HitWall, res.HitSelf)
			}
			if !reflect.DeepEqual(res.Chain, tt.wantChain) {
				t.Errorf("chain = %v, want %v", res.Chain, tt.wantChain)
			}
			if res.TailVacated != tt.wantTail {
				t.Errorf("tail vacated = %v, want %v", res.TailVacated, tt.wantTail)
			}
		})
	}
}

func TestStepWallCollision(t *testing.T) {
	tests := []struct {
		name     string
		head     components.Position
		heading  components.Direction
		wantHead components.Position
		wantWall bool
	}{
		{"right edge", pos(9, 5), components.DirRight, pos(10, 5), true},
		{"left edge", pos(0, 5), components.DirLeft, pos(-1, 5), true},
		{"top edge", pos(5, 9), components.DirUp, pos(5, 10), true},
		{"bottom edge", pos(5, 0), components.DirDown, pos(5, -1), true},
		{"one short of the edge", pos(8, 5), components.DirRight, pos(9, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := []components.Position{tt.head, pos(tt.head.X, tt.head.Y-1)}
			if tt.heading == components.DirDown {
				prev[1] = pos(tt.head.X, tt.head.Y+1)
			}
			res := Step(prev, tt.heading, 10, 10)
			if res.HitWall != tt.wantWall {
				t.Errorf("HitWall = %v, want %v", res.HitWall, tt.wantWall)
			}
			// The move is committed even on collision.
			if res.Chain[0] != tt.wantHead {
				t.Errorf("head = %v, want %v", res.Chain[0], tt.wantHead)
			}
		})
	}
}

func TestStepSelfCollision(t *testing.T) {
	// Chain looping back on itself: head (5,5), body wrapping so the cell
	// to the right of the head is occupied.
	prev := []components.Position{pos(5, 5), pos(5, 6), pos(6, 6), pos(6, 5)}

	res := Step(prev, components.DirRight, 10, 10)
	if !res.HitSelf {
		t.Fatal("expected self collision when head moves onto the body")
	}
	if res.HitWall {
		t.Error("wall collision flagged on an interior move")
	}
}

func TestStepSelfCollisionAgainstVacatedTail(t *testing.T) {
	// The tail at (6,5) moves off this tick, but the check runs against the
	// pre-move snapshot, so entering that cell is still terminal.
	prev := []components.Position{pos(5, 5), pos(5, 6), pos(6, 6), pos(6, 5)}

	res := Step(prev, components.DirRight, 10, 10)
	if !res.HitSelf {
		t.Fatal("expected collision against the cell the tail is vacating")
	}
	if res.TailVacated != pos(6, 5) {
		t.Errorf("tail vacated = %v, want %v", res.TailVacated, pos(6, 5))
	}
}

func TestStepNoCollisionBehindHead(t *testing.T) {
	prev := []components.Position{pos(5, 5), pos(5, 4), pos(5, 3)}

	res := Step(prev, components.DirUp, 10, 10)
	if res.HitWall || res.HitSelf {
		t.Fatalf("unexpected collision: wall=%v self=%v", res.HitWall, res.HitSelf)
	}
}

func TestStepDeterministic(t *testing.T) {
	prev := []components.Position{pos(5, 5), pos(5, 4), pos(5, 3), pos(4, 3)}

	a := Step(prev, components.DirRight, 10, 10)
	b := Step(prev, components.DirRight, 10, 10)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different results: %+v vs %+v", a, b)
	}
}
