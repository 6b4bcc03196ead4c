package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/carlsonchan/labyrinth/internal/gamedata"
	"github.com/carlsonchan/labyrinth/internal/labmap"
	"github.com/carlsonchan/labyrinth/internal/world"
)

// PlayerGlyph marks the player's room in the interactive view. The
// printed map has no player symbol; only this view overlays one.
const PlayerGlyph = '@'

// Renderer draws the synchronized labyrinth map to the screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
}

// NewRenderer creates a renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render synchronizes the map with the maze and draws it cell by cell,
// with the player overlaid and status and message lines below the grid.
func (r *Renderer) Render(m *labmap.Map, playerRoom world.Coordinate, status, message string) {
	r.screen.Clear()

	m.Sync()
	mapX, mapY := m.Size()

	for y := 0; y < mapY; y++ {
		for x := 0; x < mapX; x++ {
			c := world.C(x, y)
			if room, _ := m.IsRoom(c); room {
				glyph, err := m.DisplayRoom(c)
				if err != nil {
					continue
				}
				r.screen.SetContent(x, y, glyph, r.roomStyle(glyph))
				continue
			}
			glyph, err := m.DisplayBorder(c)
			if err != nil {
				continue
			}
			style := tcell.StyleDefault.Foreground(r.theme.Wall)
			if exit, _ := m.IsExit(c); exit {
				style = tcell.StyleDefault.Foreground(r.theme.Exit).Bold(true)
			}
			r.screen.SetContent(x, y, glyph, style)
		}
	}

	// Player on top of whatever the room shows.
	if mc, err := m.LabyrinthToMap(playerRoom); err == nil {
		playerStyle := tcell.StyleDefault.Foreground(r.theme.Player).Bold(true)
		r.screen.SetContent(mc.X, mc.Y, PlayerGlyph, playerStyle)
	}

	r.renderLine(status, mapY+1)
	r.renderLine(message, mapY+2)

	r.screen.Show()
}

// roomStyle returns the style matching a room glyph.
func (r *Renderer) roomStyle(glyph rune) tcell.Style {
	switch glyph {
	case labmap.GlyphMinotaur, labmap.GlyphMinotaurDead:
		return tcell.StyleDefault.Foreground(r.theme.Minotaur)
	case labmap.GlyphMirror, labmap.GlyphMirrorCracked:
		return tcell.StyleDefault.Foreground(r.theme.Mirror)
	case labmap.GlyphBullet, labmap.GlyphTreasure:
		return tcell.StyleDefault.Foreground(r.theme.Item)
	default:
		return tcell.StyleDefault.Foreground(r.theme.Room)
	}
}

// renderLine writes a full line of text at the given row.
func (r *Renderer) renderLine(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.theme.Text)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
