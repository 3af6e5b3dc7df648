package sim

import (
	"math"
	"testing"
)

// TestImpactEnergyZeroInputs verifies the energy formula vanishes when either
// factor is zero.
func TestImpactEnergyZeroInputs(t *testing.T) {
	if e := ImpactEnergyMT(0, 20); e != 0 {
		t.Errorf("expected zero energy for zero mass, got %g", e)
	}
	if e := ImpactEnergyMT(1e10, 0); e != 0 {
		t.Errorf("expected zero energy for zero velocity, got %g", e)
	}
}

// TestImpactEnergyMonotonic verifies energy strictly increases in mass and in
// velocity while the other input is held fixed.
func TestImpactEnergyMonotonic(t *testing.T) {
	masses := []float64{1e6, 1e8, 1e10, 1e12}
	prev := 0.0
	for _, m := range masses {
		e := ImpactEnergyMT(m, 20)
		if e <= prev {
			t.Errorf("energy not increasing in mass: mass %g gave %g after %g", m, e, prev)
		}
		prev = e
	}

	velocities := []float64{5, 11, 20, 42, 70}
	prev = 0.0
	for _, v := range velocities {
		e := ImpactEnergyMT(1e10, v)
		if e <= prev {
			t.Errorf("energy not increasing in velocity: velocity %g gave %g after %g", v, e, prev)
		}
		prev = e
	}
}

// TestImpactEnergyKnownValue pins the kinetic energy conversion for a
// reference asteroid: 1e10 kg at 20 km/s is 2e18 J, about 478 MT.
func TestImpactEnergyKnownValue(t *testing.T) {
	got := ImpactEnergyMT(1e10, 20)
	want := 0.5 * 1e10 * 20000 * 20000 / 4.184e15
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %g MT, got %g MT", want, got)
	}
	if math.Abs(got-478.0114) > 0.001 {
		t.Errorf("expected about 478.011 MT, got %g", got)
	}

	// 478 MT sits in the 100-1000 MT band.
	band := ClassifySeverity(got)
	if band.Label != "Continental Devastation" {
		t.Errorf("expected Continental Devastation for %g MT, got %s", got, band.Label)
	}
}

// TestDamageRadius verifies the radius scaling is zero at zero, defined for
// all non-negative energies, and monotone non-decreasing.
func TestDamageRadius(t *testing.T) {
	if r := DamageRadiusKm(0); r != 0 {
		t.Errorf("expected zero radius at zero energy, got %g", r)
	}

	energies := []float64{0, 0.001, 0.01, 1, 10, 100, 1000, 10000, 1e6}
	prev := -1.0
	for _, e := range energies {
		r := DamageRadiusKm(e)
		if math.IsNaN(r) || r < 0 {
			t.Fatalf("radius undefined for energy %g: %g", e, r)
		}
		if r < prev {
			t.Errorf("radius decreased: energy %g gave %g after %g", e, r, prev)
		}
		prev = r
	}

	// Sub-linear growth: a thousandfold energy jump must not grow the radius
	// a thousandfold.
	small := DamageRadiusKm(1)
	big := DamageRadiusKm(1000)
	if big >= small*1000 {
		t.Errorf("radius scaling not sub-linear: r(1)=%g r(1000)=%g", small, big)
	}
}

// TestSeverityBoundaries verifies energy exactly at a threshold falls into the
// lower band (strict > comparison).
func TestSeverityBoundaries(t *testing.T) {
	cases := []struct {
		energy    float64
		wantExact string
		wantAbove string
	}{
		{10000, "Global Catastrophe", "Extinction Event"},
		{1000, "Continental Devastation", "Global Catastrophe"},
		{100, "Regional Disaster", "Continental Devastation"},
		{10, "City Destroyer", "Regional Disaster"},
		{1, "Local Impact", "City Destroyer"},
		{0.01, "Minor Event", "Local Impact"},
	}
	for _, c := range cases {
		if got := ClassifySeverity(c.energy); got.Label != c.wantExact {
			t.Errorf("energy %g exactly at threshold: expected %s, got %s", c.energy, c.wantExact, got.Label)
		}
		if got := ClassifySeverity(c.energy * 1.0001); got.Label != c.wantAbove {
			t.Errorf("energy just above %g: expected %s, got %s", c.energy, c.wantAbove, got.Label)
		}
	}
}

// TestSeverityTotalCoverage verifies every non-negative energy lands in
// exactly one band with a coherent casualty range.
func TestSeverityTotalCoverage(t *testing.T) {
	energies := []float64{0, 1e-9, 0.005, 0.01, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 1e5, 1e9}
	for _, e := range energies {
		band := ClassifySeverity(e)
		if band.Label == "" {
			t.Errorf("no band matched energy %g", e)
		}
		if band.Casualties.Min > band.Casualties.Max {
			t.Errorf("band %s has inverted casualty range %d > %d", band.Label, band.Casualties.Min, band.Casualties.Max)
		}
	}

	if got := ClassifySeverity(0); got.Label != "Minor Event" {
		t.Errorf("expected Minor Event at zero energy, got %s", got.Label)
	}
	if got := ClassifySeverity(1e9); got.Label != "Extinction Event" {
		t.Errorf("expected Extinction Event at 1e9 MT, got %s", got.Label)
	}
}

// TestEquivalentNukes pins the reference yield: 0.015 MT maps back to exactly
// one weapon, and the count is never negative.
func TestEquivalentNukes(t *testing.T) {
	if got := EquivalentNukes(0.015); got != 1 {
		t.Errorf("expected 1 reference weapon for 0.015 MT, got %d", got)
	}
	if got := EquivalentNukes(0.0225); got != 2 { // 1.5 weapons rounds up
		t.Errorf("expected 2 for 0.0225 MT, got %d", got)
	}
	if got := EquivalentNukes(0); got != 0 {
		t.Errorf("expected 0 for zero energy, got %d", got)
	}
	if got := EquivalentNukes(-5); got != 0 {
		t.Errorf("expected 0 for negative energy, got %d", got)
	}
	if got := EquivalentNukes(15); got != 1000 {
		t.Errorf("expected 1000 for 15 MT, got %d", got)
	}
}

// TestEstimateDamageConsistent verifies the bundled estimate agrees with the
// individual formulas on every call.
func TestEstimateDamageConsistent(t *testing.T) {
	first := EstimateDamage(1e10, 20)
	second := EstimateDamage(1e10, 20)
	if first != second {
		t.Fatalf("estimate not deterministic: %+v vs %+v", first, second)
	}
	if first.ImpactEnergyMT != ImpactEnergyMT(1e10, 20) {
		t.Errorf("bundled energy disagrees with ImpactEnergyMT")
	}
	if first.DestructionRadiusKm != DamageRadiusKm(first.ImpactEnergyMT) {
		t.Errorf("bundled radius disagrees with DamageRadiusKm")
	}
	if first.Severity != ClassifySeverity(first.ImpactEnergyMT) {
		t.Errorf("bundled severity disagrees with ClassifySeverity")
	}
}

// TestImpactOdds verifies the odds conversion guards degenerate probabilities.
func TestImpactOdds(t *testing.T) {
	if got := ImpactOdds(0.001); got != 1000 {
		t.Errorf("expected 1 in 1000 odds, got 1 in %d", got)
	}
	if got := ImpactOdds(1); got != 1 {
		t.Errorf("expected 1 in 1 for certain impact, got 1 in %d", got)
	}
	if got := ImpactOdds(0); got != 0 {
		t.Errorf("expected 0 sentinel for zero probability, got %d", got)
	}
	if got := ImpactOdds(-0.5); got != 0 {
		t.Errorf("expected 0 sentinel for negative probability, got %d", got)
	}
}
