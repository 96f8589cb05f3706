package systems

import "github.com/diolix/bevy-snake-game/components"

// Held is a per-frame snapshot of the directional keys currently held down.
type Held struct {
	Left, Down, Up, Right bool
}

// Resolve picks the requested direction from the held keys. When several
// keys are held at once the first match wins, checked in the order Left,
// Down, Up, Right. ok is false when no key is held.
func (h Held) Resolve() (dir components.Direction, ok bool) {
	switch {
	case h.Left:
		return components.DirLeft, true
	case h.Down:
		return components.DirDown, true
	case h.Up:
		return components.DirUp, true
	case h.Right:
		return components.DirRight, true
	default:
		return 0, false
	}
}

// Arbitrate applies one frame of direction input to the current heading.
// The requested direction is adopted unless it would reverse the snake into
// its own neck; then the current heading is kept.
func Arbitrate(current components.Direction, held Held) components.Direction {
	requested, ok := held.Resolve()
	if !ok {
		return current
	}
	if requested == current.Opposite() {
		return current
	}
	return requested
}
