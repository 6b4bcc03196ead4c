package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef is the raw theme as stored in theme.json: one hex color per
// glyph class.
type ThemeDef struct {
	Wall     string `json:"wall"`
	Room     string `json:"room"`
	Player   string `json:"player"`
	Minotaur string `json:"minotaur"`
	Mirror   string `json:"mirror"`
	Item     string `json:"item"`
	Exit     string `json:"exit"`
	Text     string `json:"text"`
}

// Theme holds the parsed terminal colors used by the renderer.
type Theme struct {
	Wall     tcell.Color
	Room     tcell.Color
	Player   tcell.Color
	Minotaur tcell.Color
	Mirror   tcell.Color
	Item     tcell.Color
	Exit     tcell.Color
	Text     tcell.Color
}

// LoadTheme loads and parses the embedded theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return parseTheme(def)
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// parseTheme converts every hex color of the definition.
func parseTheme(def ThemeDef) (Theme, error) {
	var theme Theme
	for _, field := range []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"wall", def.Wall, &theme.Wall},
		{"room", def.Room, &theme.Room},
		{"player", def.Player, &theme.Player},
		{"minotaur", def.Minotaur, &theme.Minotaur},
		{"mirror", def.Mirror, &theme.Mirror},
		{"item", def.Item, &theme.Item},
		{"exit", def.Exit, &theme.Exit},
		{"text", def.Text, &theme.Text},
	} {
		color, err := ParseHexColor(field.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme color %q: %w", field.name, err)
		}
		*field.dst = color
	}
	return theme, nil
}
