package systems

import (
	"testing"

	"github.com/diolix/bevy-snake-game/components"
)

func TestHeldResolvePriority(t *testing.T) {
	tests := []struct {
		name   string
		held   Held
		want   components.Direction
		wantOK bool
	}{
		{"nothing held", Held{}, 0, false},
		{"single left", Held{Left: true}, components.DirLeft, true},
		{"single right", Held{Right: true}, components.DirRight, true},
		{"left beats everything", Held{Left: true, Down: true, Up: true, Right: true}, components.DirLeft, true},
		{"down beats up and right", Held{Down: true, Up: true, Right: true}, components.DirDown, true},
		{"up beats right", Held{Up: true, Right: true}, components.DirUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.held.Resolve()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArbitrate(t *testing.T) {
	tests := []struct {
		name    string
		current components.Direction
		held    Held
		want    components.Direction
	}{
		{"no key keeps heading", components.DirUp, Held{}, components.DirUp},
		{"turn left from up", components.DirUp, Held{Left: true}, components.DirLeft},
		{"reverse up to down rejected", components.DirUp, Held{Down: true}, components.DirUp},
		{"reverse down to up rejected", components.DirDown, Held{Up: true}, components.DirDown},
		{"reverse left to right rejected", components.DirLeft, Held{Right: true}, components.DirLeft},
		{"reverse right to left rejected", components.DirRight, Held{Left: true}, components.DirRight},
		{"same direction kept", components.DirRight, Held{Right: true}, components.DirRight},
		{"rejected priority winner shadows other held keys", components.DirRight, Held{Left: true, Down: true}, components.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Arbitrate(tt.current, tt.held); got != tt.want {
				t.Errorf("Arbitrate(%v, %+v) = %v, want %v", tt.current, tt.held, got, tt.want)
			}
		})
	}
}
