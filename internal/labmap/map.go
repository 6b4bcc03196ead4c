package labmap

import (
	"io"
	"os"

	"github.com/carlsonchan/labyrinth/internal/world"
)

// Maze is the read-only view of the labyrinth the map synchronizes from.
// The maze is always the source of truth; the map never writes back.
// *world.Labyrinth satisfies this interface.
type Maze interface {
	WallExists(c world.Coordinate, d world.Direction) bool
	InhabitantAt(c world.Coordinate) world.Inhabitant
	ItemAt(c world.Coordinate) world.Item
	Exit() (world.Coordinate, world.Direction)
}

// Map holds the renderable map of a labyrinth. It owns its cell grid
// exclusively and borrows the maze reference: the maze must outlive
// the map.
//
// Rooms are indexed first with the y-coordinate, then with the x-coordinate.
type Map struct {
	maze         Maze
	xSize, ySize int // room-grid extents, immutable after construction

	mapXSize, mapYSize int // 2*size+1 per axis
	grid               [][]Cell

	out io.Writer
}

// New builds a map for a maze of xSize by ySize rooms. The grid is fully
// populated: rooms at odd/odd map coordinates, borders everywhere else.
// Fails with ErrNilMaze if maze is nil and ErrZeroSize if either extent
// is zero.
func New(maze Maze, xSize, ySize int) (*Map, error) {
	if maze == nil {
		return nil, ErrNilMaze
	}
	if xSize < 1 || ySize < 1 {
		return nil, ErrZeroSize
	}

	mapXSize := 2*xSize + 1
	mapYSize := 2*ySize + 1

	grid := make([][]Cell, mapYSize)
	for y := range grid {
		grid[y] = make([]Cell, mapXSize)
		for x := range grid[y] {
			if x%2 == 1 && y%2 == 1 {
				grid[y][x] = NewRoomCell()
			} else {
				grid[y][x] = NewBorderCell()
			}
		}
	}

	return &Map{
		maze:     maze,
		xSize:    xSize,
		ySize:    ySize,
		mapXSize: mapXSize,
		mapYSize: mapYSize,
		grid:     grid,
		out:      os.Stdout,
	}, nil
}

// SetOutput redirects Display's rendering to w instead of stdout.
func (m *Map) SetOutput(w io.Writer) {
	m.out = w
}

// WithinBoundsOfMap reports whether c lies inside the map grid.
func (m *Map) WithinBoundsOfMap(c world.Coordinate) bool {
	return c.X >= 0 && c.X < m.mapXSize && c.Y >= 0 && c.Y < m.mapYSize
}

// IsRoom reports whether the map coordinate c designates a room rather
// than a border. Fails with ErrOutOfRange if c is outside the map.
func (m *Map) IsRoom(c world.Coordinate) (bool, error) {
	if !m.WithinBoundsOfMap(c) {
		return false, ErrOutOfRange
	}
	return c.X%2 == 1 && c.Y%2 == 1, nil
}

// LabyrinthToMap converts a labyrinth room coordinate to the room's map
// coordinate. Fails with ErrOutOfRange if c is outside the labyrinth.
func (m *Map) LabyrinthToMap(c world.Coordinate) (world.Coordinate, error) {
	if c.X < 0 || c.X >= m.xSize || c.Y < 0 || c.Y >= m.ySize {
		return world.Coordinate{}, ErrOutOfRange
	}
	return world.Coordinate{X: 2*c.X + 1, Y: 2*c.Y + 1}, nil
}

// MapToLabyrinth converts a map room coordinate back to the labyrinth
// room it mirrors. Fails with ErrOutOfRange if c is outside the map and
// ErrNotARoom if c addresses a border, which has no labyrinth counterpart.
func (m *Map) MapToLabyrinth(c world.Coordinate) (world.Coordinate, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return world.Coordinate{}, err
	}
	if !room {
		return world.Coordinate{}, ErrNotARoom
	}
	return world.Coordinate{X: (c.X - 1) / 2, Y: (c.Y - 1) / 2}, nil
}

// Size returns the map-grid dimensions in cells.
func (m *Map) Size() (x, y int) {
	return m.mapXSize, m.mapYSize
}

// IsExit reports whether the border at map coordinate c holds the exit.
// Fails with ErrOutOfRange outside the map and ErrNotABorder on a room.
func (m *Map) IsExit(c world.Coordinate) (bool, error) {
	cell, err := m.at(c)
	if err != nil {
		return false, err
	}
	if cell.IsRoom() {
		return false, ErrNotABorder
	}
	return cell.IsExit()
}

// Sync pulls the map to the maze's current truth: UpdateBorders, then
// UpdateRooms, then CleanBorders. Cleanup must come last so explicitly
// present maze walls are never stripped.
func (m *Map) Sync() {
	m.UpdateBorders()
	m.UpdateRooms()
	m.CleanBorders()
}

// at returns the cell at map coordinate c.
func (m *Map) at(c world.Coordinate) (Cell, error) {
	if !m.WithinBoundsOfMap(c) {
		return nil, ErrOutOfRange
	}
	return m.grid[c.Y][c.X], nil
}
