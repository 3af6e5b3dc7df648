package mission

import (
	"fmt"
	"time"

	"PlanetDefense/internal/catalog"
	"PlanetDefense/internal/sim"
)

// Status tracks a mission through its lifecycle. Running missions always
// reach Complete; there is no failure state and no cancellation.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
)

// Result is the terminal mission verdict. A failed deflection is still a
// reported outcome, never an error.
type Result string

const (
	ResultDeflected Result = "DEFLECTED"
	ResultPartial   Result = "PARTIAL"
)

// Phase names the scripted stages a running mission advances through.
type Phase string

const (
	PhaseLaunch     Phase = "launch"
	PhaseTransit    Phase = "transit"
	PhaseIntercept  Phase = "intercept"
	PhaseAssessment Phase = "assessment"
)

// phaseOrder drives the progress stream; assessment is always last.
var phaseOrder = []Phase{PhaseLaunch, PhaseTransit, PhaseIntercept, PhaseAssessment}

// Plan holds the deterministic pre-mission numbers: what the formulas say
// before any dice are rolled.
type Plan struct {
	SuccessProbability float64           `json:"successProbability"`
	SizeClass          string            `json:"sizeClass"`
	Baseline           sim.Estimate      `json:"baseline"`
	Mitigated          sim.CasualtyRange `json:"mitigated"`
	LivesProtected     sim.CasualtyRange `json:"livesProtected"`
}

// BuildPlan validates the asteroid and strategy and computes the
// effectiveness-adjusted defense numbers.
func BuildPlan(a *catalog.Asteroid, s *catalog.Strategy) (Plan, error) {
	if a == nil || s == nil {
		return Plan{}, fmt.Errorf("plan requires an asteroid and a strategy")
	}
	if err := a.Validate(); err != nil {
		return Plan{}, err
	}
	if err := s.Validate(); err != nil {
		return Plan{}, err
	}

	baseline := sim.EstimateDamage(a.MassKg, a.VelocityKmS)
	p := sim.SuccessProbability(s.Profile(), a.DiameterM)
	mitigated := sim.MitigatedCasualties(baseline.Severity.Casualties, p)
	return Plan{
		SuccessProbability: p,
		SizeClass:          a.SizeClass().String(),
		Baseline:           baseline,
		Mitigated:          mitigated,
		LivesProtected:     sim.LivesProtected(baseline.Severity.Casualties, mitigated),
	}, nil
}

// Report is the terminal mission summary rendered by the results view.
type Report struct {
	Result            Result      `json:"result"`
	Outcome           sim.Outcome `json:"outcome"`
	Plan              Plan        `json:"plan"`
	NewMissDistanceKm float64     `json:"newMissDistanceKm"`
	Summary           string      `json:"summary"`
}

// Update is one progress frame pushed to mission subscribers.
type Update struct {
	MissionID string  `json:"missionId"`
	Status    Status  `json:"status"`
	Phase     Phase   `json:"phase"`
	Progress  float64 `json:"progress"`
	Report    *Report `json:"report,omitempty"`
}

// Mission is one deflection attempt against one asteroid with one strategy.
type Mission struct {
	ID         string            `json:"id"`
	Asteroid   catalog.Asteroid  `json:"asteroid"`
	Strategy   catalog.Strategy  `json:"strategy"`
	Plan       Plan              `json:"plan"`
	Status     Status            `json:"status"`
	Phase      Phase             `json:"phase"`
	Progress   float64           `json:"progress"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt *time.Time        `json:"finishedAt,omitempty"`
	Report     *Report           `json:"report,omitempty"`
}

// lunar distance scales the narrative miss-distance number.
const lunarDistanceKm = 384400.0

// buildReport converts a drawn outcome into the terminal summary.
func buildReport(m *Mission, outcome sim.Outcome) *Report {
	result := ResultPartial
	if outcome.Success {
		result = ResultDeflected
	}
	missKm := outcome.DeflectionPercent / 100 * lunarDistanceKm

	var summary string
	if outcome.Success {
		summary = fmt.Sprintf("%s deflected %s: trajectory shifted %.1f%%, new closest approach %s km",
			m.Strategy.Name, m.Asteroid.Name, outcome.DeflectionPercent, sim.FormatScientific(missKm))
	} else {
		summary = fmt.Sprintf("%s shifted %s only %.1f%%: impact corridor reduced but not cleared",
			m.Strategy.Name, m.Asteroid.Name, outcome.DeflectionPercent)
	}

	return &Report{
		Result:            result,
		Outcome:           outcome,
		Plan:              m.Plan,
		NewMissDistanceKm: missKm,
		Summary:           summary,
	}
}
