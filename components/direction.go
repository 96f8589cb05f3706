package components

// Direction is one of the four headings the snake can travel in.
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Vector returns the unit grid step for one movement tick along d.
func (d Direction) Vector() (dx, dy int32) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}
