package catalog

import (
	"testing"

	"PlanetDefense/internal/sim"
)

// TestRegistryEntriesValid verifies every built-in strategy passes its own
// validation and keeps probabilities in range.
func TestRegistryEntriesValid(t *testing.T) {
	if len(StrategyRegistry) == 0 {
		t.Fatal("strategy registry is empty")
	}
	for id, s := range StrategyRegistry {
		if s.ID != id {
			t.Errorf("registry key %s disagrees with strategy ID %s", id, s.ID)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("built-in strategy %s fails validation: %v", id, err)
		}
	}
}

func TestGetStrategyValid(t *testing.T) {
	s, err := GetStrategy("kinetic-impactor")
	if err != nil {
		t.Fatalf("expected no error retrieving kinetic-impactor, got %v", err)
	}
	if s == nil {
		t.Fatal("expected strategy, got nil")
	}
	if s.Code != "KI-1" {
		t.Errorf("expected code KI-1, got %s", s.Code)
	}
	if s.SuccessRate != 0.75 {
		t.Errorf("expected success rate 0.75, got %g", s.SuccessRate)
	}
}

func TestGetStrategyInvalid(t *testing.T) {
	s, err := GetStrategy("orbital-laser-shark")
	if err == nil {
		t.Fatal("expected error retrieving unknown strategy, got nil")
	}
	if s != nil {
		t.Fatal("expected nil strategy for unknown ID")
	}
	if err := func() error { _, e := GetStrategy(""); return e }(); err == nil {
		t.Fatal("expected error for empty ID")
	}
}

// TestGetStrategyReturnsCopy verifies callers cannot mutate the registry
// through the returned pointer.
func TestGetStrategyReturnsCopy(t *testing.T) {
	s, err := GetStrategy("gravity-tractor")
	if err != nil {
		t.Fatalf("expected gravity-tractor, got %v", err)
	}
	s.SuccessRate = 0

	again, err := GetStrategy("gravity-tractor")
	if err != nil {
		t.Fatalf("expected gravity-tractor on second lookup, got %v", err)
	}
	if again.SuccessRate != 0.65 {
		t.Errorf("registry entry mutated through returned pointer: success rate %g", again.SuccessRate)
	}
}

// TestSanitizeStrategy verifies out-of-range numbers are clamped rather than
// propagated into the outcome model.
func TestSanitizeStrategy(t *testing.T) {
	dirty := Strategy{
		ID:            "test",
		Name:          "Test",
		SuccessRate:   1.7,
		Effectiveness: sim.Effectiveness{Small: -0.2, Medium: 1.4, Large: 0.5},
		LeadTimeYears: -3,
		CostBillion:   -1,
		TechReadiness: 42,
	}
	clean := SanitizeStrategy(dirty)
	if clean.SuccessRate != 1 {
		t.Errorf("expected success rate clamped to 1, got %g", clean.SuccessRate)
	}
	if clean.Effectiveness.Small != 0 || clean.Effectiveness.Medium != 1 || clean.Effectiveness.Large != 0.5 {
		t.Errorf("effectiveness not clamped: %+v", clean.Effectiveness)
	}
	if clean.LeadTimeYears != 0 || clean.CostBillion != 0 {
		t.Errorf("negative lead time or cost survived sanitize: %g, %g", clean.LeadTimeYears, clean.CostBillion)
	}
	if clean.TechReadiness != 9 {
		t.Errorf("expected tech readiness clamped to 9, got %d", clean.TechReadiness)
	}
}

// TestStrategiesStableOrder verifies the listing is sorted by ID so the
// dashboard renders the same order on every request.
func TestStrategiesStableOrder(t *testing.T) {
	list := Strategies()
	if len(list) != len(StrategyRegistry) {
		t.Fatalf("expected %d strategies, got %d", len(StrategyRegistry), len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("listing not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}
