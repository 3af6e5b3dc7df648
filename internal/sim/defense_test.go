package sim

import (
	"math"
	"testing"
)

// TestSizeClassBoundaries verifies the half-open partition of diameter.
func TestSizeClassBoundaries(t *testing.T) {
	cases := []struct {
		diameter float64
		want     SizeClass
	}{
		{0, SizeSmall},
		{50, SizeSmall},
		{99.999, SizeSmall},
		{100, SizeMedium},
		{250, SizeMedium},
		{499.999, SizeMedium},
		{500, SizeLarge},
		{600, SizeLarge},
		{10000, SizeLarge},
	}
	for _, c := range cases {
		if got := SizeClassOf(c.diameter); got != c.want {
			t.Errorf("diameter %g m: expected %s, got %s", c.diameter, c.want, got)
		}
	}
}

// TestEffectivenessLookupNoInterpolation verifies the per-class lookup jumps
// discontinuously at a class boundary.
func TestEffectivenessLookupNoInterpolation(t *testing.T) {
	profile := StrategyProfile{
		SuccessRate:   1,
		Effectiveness: Effectiveness{Small: 0.9, Medium: 0.5, Large: 0.1},
	}
	if got := EffectivenessFor(profile, 99); got != 0.9 {
		t.Errorf("expected small multiplier 0.9 at 99 m, got %g", got)
	}
	if got := EffectivenessFor(profile, 100); got != 0.5 {
		t.Errorf("expected medium multiplier 0.5 at 100 m, got %g", got)
	}
	if got := EffectivenessFor(profile, 500); got != 0.1 {
		t.Errorf("expected large multiplier 0.1 at 500 m, got %g", got)
	}
}

// TestSuccessProbabilitySmallTarget covers the 50 m asteroid scenario:
// 0.8 base rate with 0.9 small effectiveness gives 0.72.
func TestSuccessProbabilitySmallTarget(t *testing.T) {
	profile := StrategyProfile{
		SuccessRate:   0.8,
		Effectiveness: Effectiveness{Small: 0.9, Medium: 0.75, Large: 0.3},
	}
	got := SuccessProbability(profile, 50)
	if math.Abs(got-0.72) > 1e-12 {
		t.Fatalf("expected success probability 0.72, got %g", got)
	}
}

// TestSuccessProbabilityLargeTarget covers the 600 m asteroid scenario end to
// end: 0.5 base rate with 0.3 large effectiveness gives 0.15, and a Local
// Impact baseline of {1000, 100000} mitigates to {850, 85000}.
func TestSuccessProbabilityLargeTarget(t *testing.T) {
	profile := StrategyProfile{
		SuccessRate:   0.5,
		Effectiveness: Effectiveness{Small: 0.9, Medium: 0.6, Large: 0.3},
	}
	p := SuccessProbability(profile, 600)
	if math.Abs(p-0.15) > 1e-12 {
		t.Fatalf("expected success probability 0.15, got %g", p)
	}

	baseline := CasualtyRange{Min: 1000, Max: 100000}
	mitigated := MitigatedCasualties(baseline, p)
	if mitigated.Min != 850 || mitigated.Max != 85000 {
		t.Errorf("expected mitigated {850, 85000}, got {%d, %d}", mitigated.Min, mitigated.Max)
	}

	protected := LivesProtected(baseline, mitigated)
	if protected.Min != 150 || protected.Max != 15000 {
		t.Errorf("expected lives protected {150, 15000}, got {%d, %d}", protected.Min, protected.Max)
	}
}

// TestSuccessProbabilityRange verifies the result stays in [0,1] even for
// malformed catalog entries.
func TestSuccessProbabilityRange(t *testing.T) {
	profiles := []StrategyProfile{
		{SuccessRate: 0.5, Effectiveness: Effectiveness{Small: 0.9, Medium: 0.6, Large: 0.3}},
		{SuccessRate: 1.8, Effectiveness: Effectiveness{Small: 1.2, Medium: 1.2, Large: 1.2}},
		{SuccessRate: -0.3, Effectiveness: Effectiveness{Small: 0.5, Medium: 0.5, Large: 0.5}},
	}
	diameters := []float64{0, 50, 100, 499, 500, 5000}
	for _, profile := range profiles {
		for _, d := range diameters {
			p := SuccessProbability(profile, d)
			if p < 0 || p > 1 {
				t.Errorf("success probability out of range for rate %g diameter %g: %g", profile.SuccessRate, d, p)
			}
		}
	}
}

// TestMitigatedCasualtiesEndpoints verifies p=0 reproduces the baseline and
// p=1 yields zero casualties.
func TestMitigatedCasualtiesEndpoints(t *testing.T) {
	baseline := CasualtyRange{Min: 12345, Max: 987654}
	if got := MitigatedCasualties(baseline, 0); got != baseline {
		t.Errorf("expected baseline at p=0, got {%d, %d}", got.Min, got.Max)
	}
	if got := MitigatedCasualties(baseline, 1); got.Min != 0 || got.Max != 0 {
		t.Errorf("expected zero casualties at p=1, got {%d, %d}", got.Min, got.Max)
	}
}

// TestLivesProtectedNonNegative sweeps p across [0,1] and verifies the delta
// never goes negative and higher p never protects fewer lives.
func TestLivesProtectedNonNegative(t *testing.T) {
	baseline := CasualtyRange{Min: 1e5, Max: 1e6}
	prev := CasualtyRange{Min: -1, Max: -1}
	for p := 0.0; p <= 1.0; p += 0.05 {
		mitigated := MitigatedCasualties(baseline, p)
		protected := LivesProtected(baseline, mitigated)
		if protected.Min < 0 || protected.Max < 0 {
			t.Fatalf("negative lives protected at p=%g: {%d, %d}", p, protected.Min, protected.Max)
		}
		if protected.Min < prev.Min || protected.Max < prev.Max {
			t.Errorf("lives protected decreased at p=%g: {%d, %d} after {%d, %d}", p, protected.Min, protected.Max, prev.Min, prev.Max)
		}
		prev = protected
	}
}
