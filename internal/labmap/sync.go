package labmap

import "github.com/carlsonchan/labyrinth/internal/world"

// UpdateBorders pulls wall truth from the maze into the map's border
// segments. For every room and direction the room-facing flag of the
// adjacent segment is set to the maze's wall state: walls present in the
// map but absent from the maze are cleared, walls absent from both stay
// absent. The exit flag is re-derived from the maze's exit location.
func (m *Map) UpdateBorders() {
	for y := 0; y < m.ySize; y++ {
		for x := 0; x < m.xSize; x++ {
			rc := world.Coordinate{X: x, Y: y}
			mc := world.Coordinate{X: 2*x + 1, Y: 2*y + 1}
			for _, d := range world.Cardinal {
				sc := mc.Step(d)
				_ = m.grid[sc.Y][sc.X].SetWall(d.Opposite(), m.maze.WallExists(rc, d))
			}
		}
	}

	for y := 0; y < m.mapYSize; y++ {
		for x := 0; x < m.mapXSize; x++ {
			if cell := m.grid[y][x]; !cell.IsRoom() {
				_ = cell.SetExit(false)
			}
		}
	}
	exitRoom, exitSide := m.maze.Exit()
	if exitSide == world.None {
		return
	}
	if mc, err := m.LabyrinthToMap(exitRoom); err == nil {
		seg := mc.Step(exitSide)
		_ = m.grid[seg.Y][seg.X].SetExit(true)
	}
}

// UpdateRooms copies every room's current inhabitant and item from the
// maze into the corresponding map cell.
func (m *Map) UpdateRooms() {
	for y := 0; y < m.ySize; y++ {
		for x := 0; x < m.xSize; x++ {
			rc := world.Coordinate{X: x, Y: y}
			cell := m.grid[2*y+1][2*x+1]
			_ = cell.SetInhabitant(m.maze.InhabitantAt(rc))
			_ = cell.SetItem(m.maze.ItemAt(rc))
		}
	}
}

// CleanBorders strips border flags that are structural defaults rather
// than maze walls, so the rendered map only shows meaningful lines:
//
//   - flags pointing outside the grid (exterior stubs) are cleared;
//   - each segment's along-the-run flags are set to whether the segment
//     actually carries a wall;
//   - each corner's four flags are recomputed as "the adjoining in-grid
//     segment carries a wall".
//
// Room-facing flags of in-grid segments are never touched here, so walls
// UpdateBorders just pulled from the maze always survive cleaning. Must
// run after UpdateBorders; running it first computes corners from stale
// default flags.
func (m *Map) CleanBorders() {
	// Exterior stubs.
	for y := 0; y < m.mapYSize; y++ {
		for x := 0; x < m.mapXSize; x++ {
			c := world.Coordinate{X: x, Y: y}
			cell := m.grid[y][x]
			if cell.IsRoom() {
				continue
			}
			for _, d := range world.Cardinal {
				if !m.WithinBoundsOfMap(c.Step(d)) {
					_ = cell.SetWall(d, false)
				}
			}
		}
	}

	// Segment along-the-run flags.
	for y := 0; y < m.mapYSize; y++ {
		for x := 0; x < m.mapXSize; x++ {
			if x%2 == y%2 {
				continue // rooms and corners
			}
			c := world.Coordinate{X: x, Y: y}
			cell := m.grid[y][x]
			present := m.segmentHasWall(c)
			if x%2 == 0 { // vertical segment, runs north-south
				_ = cell.SetWall(world.North, present)
				_ = cell.SetWall(world.South, present)
			} else { // horizontal segment, runs east-west
				_ = cell.SetWall(world.East, present)
				_ = cell.SetWall(world.West, present)
			}
		}
	}

	// Corners join only the segments that carry walls.
	for y := 0; y < m.mapYSize; y += 2 {
		for x := 0; x < m.mapXSize; x += 2 {
			c := world.Coordinate{X: x, Y: y}
			cell := m.grid[y][x]
			for _, d := range world.Cardinal {
				n := c.Step(d)
				_ = cell.SetWall(d, m.WithinBoundsOfMap(n) && m.segmentHasWall(n))
			}
		}
	}
}

// segmentHasWall reports whether the border segment at c carries a wall,
// read from the room-facing flags whose neighbor lies inside the grid.
// c must address a segment: exactly one odd coordinate.
func (m *Map) segmentHasWall(c world.Coordinate) bool {
	cell := m.grid[c.Y][c.X]
	var facing [2]world.Direction
	if c.X%2 == 0 { // vertical segment, rooms to the east and west
		facing = [2]world.Direction{world.East, world.West}
	} else { // horizontal segment, rooms to the north and south
		facing = [2]world.Direction{world.North, world.South}
	}
	for _, d := range facing {
		if !m.WithinBoundsOfMap(c.Step(d)) {
			continue
		}
		if wall, _ := cell.IsWall(d); wall {
			return true
		}
	}
	return false
}
