package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks precondition violations on physical or catalog data.
// Callers can match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidateBody checks the physical parameters the impact model divides and
// multiplies by. Degenerate inputs are reported here instead of surfacing as
// NaN or negative outputs downstream.
func ValidateBody(diameterM, massKg, velocityKmS, impactProbability float64) error {
	if !(diameterM > 0) {
		return fmt.Errorf("%w: diameter must be positive, got %g m", ErrInvalidInput, diameterM)
	}
	if !(massKg > 0) {
		return fmt.Errorf("%w: mass must be positive, got %g kg", ErrInvalidInput, massKg)
	}
	if !(velocityKmS > 0) {
		return fmt.Errorf("%w: velocity must be positive, got %g km/s", ErrInvalidInput, velocityKmS)
	}
	if !(impactProbability > 0 && impactProbability <= 1) {
		return fmt.Errorf("%w: impact probability must be in (0,1], got %g", ErrInvalidInput, impactProbability)
	}
	return nil
}

// ValidateProfile checks a strategy's outcome inputs against their documented
// ranges.
func ValidateProfile(p StrategyProfile) error {
	if p.SuccessRate < 0 || p.SuccessRate > 1 {
		return fmt.Errorf("%w: success rate must be in [0,1], got %g", ErrInvalidInput, p.SuccessRate)
	}
	for _, m := range []struct {
		class string
		value float64
	}{
		{"small", p.Effectiveness.Small},
		{"medium", p.Effectiveness.Medium},
		{"large", p.Effectiveness.Large},
	} {
		if m.value < 0 || m.value > 1 {
			return fmt.Errorf("%w: %s effectiveness must be in [0,1], got %g", ErrInvalidInput, m.class, m.value)
		}
	}
	return nil
}
