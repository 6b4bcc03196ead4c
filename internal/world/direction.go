// Package world provides the labyrinth simulation: rooms, walls,
// inhabitants, items and maze generation.
package world

// Direction is a compass direction, or None when no side is meant.
type Direction int

const (
	None Direction = iota
	North
	East
	South
	West
)

// Cardinal lists the four real directions in fixed N, E, S, W order.
// Iteration over this slice keeps wall handling and generation deterministic.
var Cardinal = [4]Direction{North, East, South, West}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Delta returns the coordinate offset of one step in this direction.
// Screen convention: north decreases Y, south increases it.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return None
	}
}
