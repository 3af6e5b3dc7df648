package sim

// OutcomeParams bounds the randomized deflection draw. All values are
// percentages of trajectory change.
type OutcomeParams struct {
	SuccessDeflectMin float64 // lower bound when the deflection succeeds
	SuccessDeflectMax float64 // exclusive upper bound on success
	FailureDeflectMin float64 // lower bound when the deflection fails
	FailureDeflectMax float64 // exclusive upper bound on failure
}

// DefaultOutcomeParams returns the stock deflection draw ranges: [50,100) on
// success, [0,30) on failure.
func DefaultOutcomeParams() OutcomeParams {
	return OutcomeParams{
		SuccessDeflectMin: 50,
		SuccessDeflectMax: 100,
		FailureDeflectMin: 0,
		FailureDeflectMax: 30,
	}
}

// SanitizeOutcomeParams clamps malformed draw ranges back to the defaults.
func SanitizeOutcomeParams(p OutcomeParams) OutcomeParams {
	defaults := DefaultOutcomeParams()
	if !(p.SuccessDeflectMin >= 0) {
		p.SuccessDeflectMin = defaults.SuccessDeflectMin
	}
	if !(p.SuccessDeflectMax > p.SuccessDeflectMin) {
		p.SuccessDeflectMax = defaults.SuccessDeflectMax
		if p.SuccessDeflectMax <= p.SuccessDeflectMin {
			p.SuccessDeflectMax = p.SuccessDeflectMin + 1
		}
	}
	if !(p.FailureDeflectMin >= 0) {
		p.FailureDeflectMin = defaults.FailureDeflectMin
	}
	if !(p.FailureDeflectMax > p.FailureDeflectMin) {
		p.FailureDeflectMax = defaults.FailureDeflectMax
		if p.FailureDeflectMax <= p.FailureDeflectMin {
			p.FailureDeflectMax = p.FailureDeflectMin + 1
		}
	}
	return p
}

// Outcome is the randomized result of one deflection attempt. The deflection
// percentage feeds the narrative summary only; casualty math uses the
// deterministic success probability.
type Outcome struct {
	Success           bool    `json:"success"`
	DeflectionPercent float64 `json:"deflectionPercent"`
}

// SimulateOutcome draws a pass/fail result biased by the strategy's base
// success rate. The rng must yield uniform values in [0,1); passing a seeded
// source makes the draw deterministic for tests.
func SimulateOutcome(successRate float64, params OutcomeParams, rng func() float64) Outcome {
	if rng == nil {
		return Outcome{}
	}
	params = SanitizeOutcomeParams(params)
	if rng() < Clamp(successRate, 0, 1) {
		span := params.SuccessDeflectMax - params.SuccessDeflectMin
		return Outcome{Success: true, DeflectionPercent: params.SuccessDeflectMin + rng()*span}
	}
	span := params.FailureDeflectMax - params.FailureDeflectMin
	return Outcome{Success: false, DeflectionPercent: params.FailureDeflectMin + rng()*span}
}
