package labmap

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carlsonchan/labyrinth/internal/telemetry"
	"github.com/carlsonchan/labyrinth/internal/world"
)

// Room glyphs. An inhabitant takes precedence over an item; an empty
// room renders blank.
const (
	GlyphEmpty         = ' '
	GlyphMinotaur      = 'M'
	GlyphMinotaurDead  = 'm'
	GlyphMirror        = 'O'
	GlyphMirrorCracked = '0'
	GlyphBullet        = '•'
	GlyphTreasure      = 'T'
)

// cornerGlyphs maps a corner's wall-flag bitmask (north=1, east=2,
// south=4, west=8) to its box-drawing rune, including the half-stub
// runes for single flags.
var cornerGlyphs = [16]rune{
	' ', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// Display synchronizes the map with the maze and writes the rendered
// grid, axis labels and legend to the configured output. The passes run
// in the required order: UpdateBorders, UpdateRooms, CleanBorders.
func (m *Map) Display(ctx context.Context) error {
	tracer := telemetry.Tracer("labmap")
	_, span := tracer.Start(ctx, "map.display")
	defer span.End()
	span.SetAttributes(
		attribute.Int("map.x_size", m.mapXSize),
		attribute.Int("map.y_size", m.mapYSize),
	)

	m.Sync()

	var b strings.Builder
	m.labelXAxis(&b)
	for y := 0; y < m.mapYSize; y++ {
		m.labelYAxis(&b, y)
		for x := 0; x < m.mapXSize; x++ {
			c := world.Coordinate{X: x, Y: y}
			var g rune
			var err error
			if room, _ := m.IsRoom(c); room {
				g, err = m.DisplayRoom(c)
			} else {
				g, err = m.DisplayBorder(c)
			}
			if err != nil {
				return err
			}
			b.WriteRune(g)
		}
		b.WriteByte('\n')
	}
	m.legend(&b)

	_, err := io.WriteString(m.out, b.String())
	return err
}

// DisplayRoom returns the glyph for the room at map coordinate c: its
// inhabitant if any, else its item, else blank. Fails with ErrOutOfRange
// if c is outside the map and ErrNotARoom if c addresses a border.
func (m *Map) DisplayRoom(c world.Coordinate) (rune, error) {
	if _, err := m.MapToLabyrinth(c); err != nil {
		return 0, err
	}
	cell := m.grid[c.Y][c.X]

	inh, err := cell.Inhabitant()
	if err != nil {
		return 0, err
	}
	switch inh {
	case world.Minotaur:
		return GlyphMinotaur, nil
	case world.MinotaurDead:
		return GlyphMinotaurDead, nil
	case world.Mirror:
		return GlyphMirror, nil
	case world.MirrorCracked:
		return GlyphMirrorCracked, nil
	}

	itm, err := cell.Item()
	if err != nil {
		return 0, err
	}
	switch itm {
	case world.Bullet:
		return GlyphBullet, nil
	case world.Treasure:
		return GlyphTreasure, nil
	}
	return GlyphEmpty, nil
}

// DisplayBorder returns the glyph for the border at map coordinate c.
// Segments render a single line rune or blank depending on whether they
// carry a wall; corners render the box-drawing rune joining their set
// wall flags. Fails with ErrOutOfRange if c is outside the map and
// ErrNotABorder if c addresses a room.
func (m *Map) DisplayBorder(c world.Coordinate) (rune, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return 0, err
	}
	if room {
		return 0, ErrNotABorder
	}

	if c.X%2 != c.Y%2 { // segment
		if !m.segmentHasWall(c) {
			return GlyphEmpty, nil
		}
		if c.X%2 == 0 {
			return '│', nil
		}
		return '─', nil
	}

	cell := m.grid[c.Y][c.X]
	mask := 0
	for i, d := range world.Cardinal {
		if wall, _ := cell.IsWall(d); wall {
			mask |= 1 << i
		}
	}
	return cornerGlyphs[mask], nil
}

// labelXAxis writes the x-coordinate digits of the room columns, aligned
// over the map grid. Indices wrap at ten to keep the row one glyph wide.
func (m *Map) labelXAxis(b *strings.Builder) {
	b.WriteString(yLabelPad)
	for x := 0; x < m.mapXSize; x++ {
		if x%2 == 1 {
			fmt.Fprintf(b, "%d", ((x-1)/2)%10)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('\n')
}

const yLabelPad = "   "

// labelYAxis writes the y-coordinate of a room row, or matching padding
// on border rows so the grid stays aligned.
func (m *Map) labelYAxis(b *strings.Builder, y int) {
	if y%2 == 1 {
		fmt.Fprintf(b, "%2d ", (y-1)/2)
	} else {
		b.WriteString(yLabelPad)
	}
}

// legend writes the fixed symbol legend below the map.
func (m *Map) legend(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString("Legend:\n")
	b.WriteString("  Inhabitants:          Items:\n")
	b.WriteString("    M minotaur            • bullet\n")
	b.WriteString("    m minotaur (dead)     T treasure\n")
	b.WriteString("    O mirror\n")
	b.WriteString("    0 mirror (cracked)\n")
}
