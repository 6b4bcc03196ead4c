package gamedata

import "errors"

// DefaultScenarioID is the scenario used when none is requested.
const DefaultScenarioID = "classic"

// ScenarioDef defines a named board setup loaded from JSON. Every
// scenario places one minotaur, one mirror and one treasure; the bullet
// count varies.
type ScenarioDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "classic")
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line flavor text
	Width       int    `json:"width"`       // Labyrinth room columns
	Height      int    `json:"height"`      // Labyrinth room rows
	Bullets     int    `json:"bullets"`     // Bullets scattered in the labyrinth
}

// ScenarioRegistry holds loaded scenario definitions and provides lookup.
type ScenarioRegistry struct {
	scenarios map[string]*ScenarioDef
	all       []ScenarioDef
}

// NewScenarioRegistry creates a registry from loaded scenario definitions.
func NewScenarioRegistry(scenarios []ScenarioDef) *ScenarioRegistry {
	registry := &ScenarioRegistry{
		scenarios: make(map[string]*ScenarioDef),
		all:       scenarios,
	}
	for i := range scenarios {
		registry.scenarios[scenarios[i].ID] = &scenarios[i]
	}
	return registry
}

// LoadScenarioRegistry loads and creates a registry from the embedded
// scenarios.json.
func LoadScenarioRegistry() (*ScenarioRegistry, error) {
	scenarios, err := Load[[]ScenarioDef]("scenarios.json")
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios loaded from scenarios.json")
	}
	return NewScenarioRegistry(scenarios), nil
}

// MustLoadScenarioRegistry loads a registry, panicking on error.
func MustLoadScenarioRegistry() *ScenarioRegistry {
	registry, err := LoadScenarioRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the scenario with the given ID, or nil if not found.
func (r *ScenarioRegistry) GetByID(id string) *ScenarioDef {
	return r.scenarios[id]
}

// Default returns the default scenario.
func (r *ScenarioRegistry) Default() *ScenarioDef {
	return r.scenarios[DefaultScenarioID]
}

// All returns all scenario definitions.
func (r *ScenarioRegistry) All() []ScenarioDef {
	return r.all
}

// Count returns the number of scenarios in the registry.
func (r *ScenarioRegistry) Count() int {
	return len(r.all)
}
