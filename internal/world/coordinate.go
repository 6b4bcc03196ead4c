package world

import "fmt"

// Coordinate is a 2D integer position. It addresses rooms in labyrinth
// space and cells in map space; the two spaces share this one type.
type Coordinate struct {
	X, Y int
}

// C is a shorthand constructor for a Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Step returns the coordinate one cell away in the given direction.
// Stepping None returns the coordinate unchanged.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String returns the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
