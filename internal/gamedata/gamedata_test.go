package gamedata

import "testing"

func TestLoadScenarios(t *testing.T) {
	registry, err := LoadScenarioRegistry()
	if err != nil {
		t.Fatalf("Failed to load scenarios: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 scenarios, got %d", registry.Count())
	}

	expectedIDs := map[string]bool{"classic": false, "grand": false, "closet": false}
	for _, s := range registry.All() {
		if _, ok := expectedIDs[s.ID]; ok {
			expectedIDs[s.ID] = true
		}
	}
	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected scenario %q not found", id)
		}
	}

	def := registry.Default()
	if def == nil {
		t.Fatal("Default scenario missing")
	}
	if def.ID != DefaultScenarioID {
		t.Errorf("Default scenario = %q, want %q", def.ID, DefaultScenarioID)
	}

	for _, s := range registry.All() {
		if s.Width < 1 || s.Height < 1 {
			t.Errorf("Scenario %q has degenerate dimensions %dx%d", s.ID, s.Width, s.Height)
		}
		if s.Bullets < 1 {
			t.Errorf("Scenario %q has no bullets; the minotaur would be unbeatable", s.ID)
		}
	}
}

func TestLoadScenarioUnknownID(t *testing.T) {
	registry, err := LoadScenarioRegistry()
	if err != nil {
		t.Fatalf("Failed to load scenarios: %v", err)
	}
	if registry.GetByID("does-not-exist") != nil {
		t.Error("GetByID for unknown scenario should return nil")
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	// Every class must parse to a real RGB color, not the zero value.
	if theme.Wall == theme.Player {
		t.Error("Wall and player colors should differ")
	}
}

func TestParseHexColor(t *testing.T) {
	if _, err := ParseHexColor("#FFD700"); err != nil {
		t.Errorf("valid color rejected: %v", err)
	}
	if _, err := ParseHexColor("FFD700"); err != nil {
		t.Errorf("valid color without # rejected: %v", err)
	}
	if _, err := ParseHexColor("#FFD7"); err == nil {
		t.Error("short color accepted")
	}
	if _, err := ParseHexColor("#GGGGGG"); err == nil {
		t.Error("non-hex color accepted")
	}
}
