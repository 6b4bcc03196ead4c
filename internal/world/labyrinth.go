package world

import "errors"

const (
	// MaxDimension caps each axis so the grid stays label-friendly
	// and interactive-sized.
	MaxDimension = 20

	// Default labyrinth dimensions.
	DefaultXSize = 8
	DefaultYSize = 6
)

// ErrInvalidSize is returned when a labyrinth dimension is not in 1..MaxDimension.
var ErrInvalidSize = errors.New("world: labyrinth dimensions must be between 1 and 20")

// room is one traversable cell of the labyrinth. Wall flags are kept
// consistent on both sides of every shared wall by SetWall.
type room struct {
	walls      [4]bool // indexed by Direction - 1, in Cardinal order
	inhabitant Inhabitant
	item       Item
}

// Labyrinth is the maze simulation: a room grid with per-side walls,
// room contents and a single exit on the outer boundary.
// Rooms are indexed first with the y-coordinate, then with the x-coordinate.
type Labyrinth struct {
	xSize, ySize int
	rooms        [][]room
	exitRoom     Coordinate
	exitSide     Direction
}

// NewLabyrinth creates a fully walled labyrinth of the given room-grid
// dimensions. Every wall flag starts true and there is no exit yet.
func NewLabyrinth(xSize, ySize int) (*Labyrinth, error) {
	if xSize < 1 || ySize < 1 || xSize > MaxDimension || ySize > MaxDimension {
		return nil, ErrInvalidSize
	}

	rooms := make([][]room, ySize)
	for y := range rooms {
		rooms[y] = make([]room, xSize)
		for x := range rooms[y] {
			rooms[y][x] = room{walls: [4]bool{true, true, true, true}}
		}
	}

	return &Labyrinth{
		xSize: xSize,
		ySize: ySize,
		rooms: rooms,
	}, nil
}

// XSize returns the number of room columns.
func (l *Labyrinth) XSize() int {
	return l.xSize
}

// YSize returns the number of room rows.
func (l *Labyrinth) YSize() int {
	return l.ySize
}

// InBounds reports whether c addresses a room of the labyrinth.
func (l *Labyrinth) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < l.xSize && c.Y >= 0 && c.Y < l.ySize
}

// WallExists reports whether the room at c has a wall on side d.
// Out-of-range coordinates and direction None read as solid wall, so the
// query is total and the outside of the labyrinth is impassable.
func (l *Labyrinth) WallExists(c Coordinate, d Direction) bool {
	if !l.InBounds(c) || d == None {
		return true
	}
	return l.rooms[c.Y][c.X].walls[d-1]
}

// SetWall sets the wall on side d of the room at c, and the matching flag
// of the adjacent room, keeping both sides of the shared wall consistent.
// Out-of-range coordinates and direction None are ignored.
func (l *Labyrinth) SetWall(c Coordinate, d Direction, exists bool) {
	if !l.InBounds(c) || d == None {
		return
	}
	l.rooms[c.Y][c.X].walls[d-1] = exists
	if n := c.Step(d); l.InBounds(n) {
		l.rooms[n.Y][n.X].walls[d.Opposite()-1] = exists
	}
}

// InhabitantAt returns the inhabitant of the room at c, or NoInhabitant
// if c is out of range.
func (l *Labyrinth) InhabitantAt(c Coordinate) Inhabitant {
	if !l.InBounds(c) {
		return NoInhabitant
	}
	return l.rooms[c.Y][c.X].inhabitant
}

// SetInhabitant places inh in the room at c. Out-of-range coordinates
// are ignored.
func (l *Labyrinth) SetInhabitant(c Coordinate, inh Inhabitant) {
	if !l.InBounds(c) {
		return
	}
	l.rooms[c.Y][c.X].inhabitant = inh
}

// ItemAt returns the item in the room at c, or NoItem if c is out of range.
func (l *Labyrinth) ItemAt(c Coordinate) Item {
	if !l.InBounds(c) {
		return NoItem
	}
	return l.rooms[c.Y][c.X].item
}

// SetItem places itm in the room at c. Out-of-range coordinates are ignored.
func (l *Labyrinth) SetItem(c Coordinate, itm Item) {
	if !l.InBounds(c) {
		return
	}
	l.rooms[c.Y][c.X].item = itm
}

// Exit returns the room adjacent to the exit and the outer side the exit
// opens through. Before generation both values are zero.
func (l *Labyrinth) Exit() (Coordinate, Direction) {
	return l.exitRoom, l.exitSide
}

// SetExit opens the outer wall on side d of the room at c and records it
// as the exit. The previous exit wall, if any, is closed again.
func (l *Labyrinth) SetExit(c Coordinate, d Direction) {
	if !l.InBounds(c) || d == None {
		return
	}
	if l.exitSide != None {
		l.SetWall(l.exitRoom, l.exitSide, true)
	}
	l.SetWall(c, d, false)
	l.exitRoom = c
	l.exitSide = d
}

// CanMove reports whether a step from c in direction d lands in another
// room: the wall must be absent and the target in bounds. Leaving through
// the exit is not a move between rooms and reports false here.
func (l *Labyrinth) CanMove(c Coordinate, d Direction) bool {
	return !l.WallExists(c, d) && l.InBounds(c.Step(d))
}
