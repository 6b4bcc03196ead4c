// Package game provides the turn-based labyrinth game: setup, the
// interactive loop and encounter resolution.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the running game: the player moves, the minotaur answers.
	StatePlaying State = iota
	// StateWon means the player escaped through the exit with the treasure.
	StateWon
	// StateLost means the player died in the labyrinth.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}
