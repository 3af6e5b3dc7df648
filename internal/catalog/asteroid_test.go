package catalog

import (
	"testing"
)

// TestGenerateAsteroidsDeterministic verifies the same seed yields the same
// roster, so a restarted server serves an identical dashboard.
func TestGenerateAsteroidsDeterministic(t *testing.T) {
	first := GenerateAsteroids(12, 42)
	second := GenerateAsteroids(12, 42)
	if len(first) != 12 || len(second) != 12 {
		t.Fatalf("expected 12 asteroids, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("roster differs at index %d for identical seeds: %+v vs %+v", i, first[i], second[i])
		}
	}

	other := GenerateAsteroids(12, 43)
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical rosters")
	}
}

// TestGeneratedAsteroidsValid verifies every generated entry passes physical
// validation and keeps its display scales in range.
func TestGeneratedAsteroidsValid(t *testing.T) {
	for _, a := range GenerateAsteroids(50, 7) {
		if err := a.Validate(); err != nil {
			t.Errorf("generated asteroid fails validation: %v", err)
		}
		if a.TorinoScale < 0 || a.TorinoScale > 10 {
			t.Errorf("asteroid %s torino scale out of range: %d", a.ID, a.TorinoScale)
		}
		if a.DiameterM < genDiameterMinM || a.DiameterM > genDiameterMaxM {
			t.Errorf("asteroid %s diameter out of range: %g", a.ID, a.DiameterM)
		}
		if a.VelocityKmS < genVelocityMin || a.VelocityKmS > genVelocityMax {
			t.Errorf("asteroid %s velocity out of range: %g", a.ID, a.VelocityKmS)
		}
		if a.ImpactProbability <= 0 || a.ImpactProbability > genProbabilityHi {
			t.Errorf("asteroid %s impact probability out of range: %g", a.ID, a.ImpactProbability)
		}
		if a.Name == "" || a.DiscoveredAt == "" || a.CloseApproachAt == "" {
			t.Errorf("asteroid %s missing display fields: %+v", a.ID, a)
		}
	}
}

// TestGenerateAsteroidsUniqueIDs verifies roster IDs are unique lookup keys.
func TestGenerateAsteroidsUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range GenerateAsteroids(30, 99) {
		if seen[a.ID] {
			t.Errorf("duplicate asteroid ID %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestGenerateAsteroidsEmpty(t *testing.T) {
	if roster := GenerateAsteroids(0, 1); roster != nil {
		t.Errorf("expected nil roster for zero count, got %d entries", len(roster))
	}
	if roster := GenerateAsteroids(-3, 1); roster != nil {
		t.Errorf("expected nil roster for negative count, got %d entries", len(roster))
	}
}
