package game

import (
	"os"
	"strconv"

	"github.com/carlsonchan/labyrinth/internal/gamedata"
)

// Config holds game configuration options. Values come from LABYRINTH_*
// environment variables with sensible defaults; the command line may
// override them afterwards.
type Config struct {
	// Width and Height override the scenario's labyrinth dimensions
	// when positive.
	Width  int
	Height int

	// Seed for random number generation, for reproducible labyrinths.
	// A seed of 0 means a time-based seed.
	Seed int64

	// Scenario selects a board setup from the embedded scenarios.
	Scenario string

	// PrintOnly renders the map once to stdout instead of starting the
	// interactive game.
	PrintOnly bool
}

// FromEnv builds a Config from the environment.
func FromEnv() Config {
	return Config{
		Width:     envInt("LABYRINTH_WIDTH", 0),
		Height:    envInt("LABYRINTH_HEIGHT", 0),
		Seed:      envInt64("LABYRINTH_SEED", 0),
		Scenario:  envString("LABYRINTH_SCENARIO", gamedata.DefaultScenarioID),
		PrintOnly: envBool("LABYRINTH_PRINT_ONLY", false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
