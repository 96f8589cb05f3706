// Package components defines ECS components for the simulation.
package components

// Kind tags a board entity as part of the snake or as a food pellet.
type Kind uint8

const (
	KindHead Kind = iota
	KindBody
	KindFood
)

// Occupant marks an entity as occupying a cell on the board.
type Occupant struct {
	Kind Kind
}

// Position is an entity's cell on the arena grid.
// (0,0) is the bottom-left cell; y grows upward.
type Position struct {
	X, Y int32
}

// Size is an entity's sprite footprint relative to one grid cell.
type Size struct {
	Width, Height float32
}

// Square returns a Size with equal width and height.
func Square(x float32) Size {
	return Size{Width: x, Height: x}
}
