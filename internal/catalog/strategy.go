package catalog

import (
	"fmt"
	"sort"

	"PlanetDefense/internal/sim"
)

// Strategy describes one entry in the planetary defense playbook. The numeric
// fields feed the outcome model; the rest is briefing copy for the dashboard.
type Strategy struct {
	ID            string            `json:"id"`
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	SuccessRate   float64           `json:"successRate"`
	Effectiveness sim.Effectiveness `json:"effectiveness"`
	LeadTimeYears float64           `json:"leadTimeYears"`
	CostBillion   float64           `json:"costBillion"`
	TechReadiness int               `json:"techReadiness"`
	Pros          []string          `json:"pros"`
	Cons          []string          `json:"cons"`
}

// Profile extracts the slice of the strategy the outcome model consumes.
func (s *Strategy) Profile() sim.StrategyProfile {
	return sim.StrategyProfile{
		SuccessRate:   s.SuccessRate,
		Effectiveness: s.Effectiveness,
	}
}

// Validate checks the strategy's numeric fields against their documented
// ranges.
func (s *Strategy) Validate() error {
	if s == nil {
		return fmt.Errorf("strategy is nil")
	}
	if s.ID == "" {
		return fmt.Errorf("strategy ID cannot be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("strategy %s missing display name", s.ID)
	}
	if err := sim.ValidateProfile(s.Profile()); err != nil {
		return fmt.Errorf("strategy %s: %w", s.ID, err)
	}
	return nil
}

// StrategyRegistry holds the built-in defense playbook keyed by identifier.
var StrategyRegistry = map[string]Strategy{
	"kinetic-impactor": {
		ID:          "kinetic-impactor",
		Code:        "KI-1",
		Name:        "Kinetic Impactor",
		Description: "Slam a massive spacecraft into the asteroid to nudge its orbit off the collision course.",
		SuccessRate: 0.75,
		Effectiveness: sim.Effectiveness{
			Small:  0.90,
			Medium: 0.75,
			Large:  0.35,
		},
		LeadTimeYears: 5,
		CostBillion:   0.5,
		TechReadiness: 9,
		Pros:          []string{"Flight proven", "Cheapest option", "Short development cycle"},
		Cons:          []string{"Weak against large bodies", "Single shot, no course correction"},
	},
	"nuclear-standoff": {
		ID:          "nuclear-standoff",
		Code:        "NS-2",
		Name:        "Nuclear Standoff Burst",
		Description: "Detonate a nuclear device at standoff distance, ablating the surface to push the asteroid aside.",
		SuccessRate: 0.85,
		Effectiveness: sim.Effectiveness{
			Small:  0.95,
			Medium: 0.85,
			Large:  0.60,
		},
		LeadTimeYears: 8,
		CostBillion:   8,
		TechReadiness: 3,
		Pros:          []string{"Highest delivered impulse", "Only credible option for large bodies"},
		Cons:          []string{"Treaty complications", "Fragmentation risk", "Untested in deep space"},
	},
	"gravity-tractor": {
		ID:          "gravity-tractor",
		Code:        "GT-3",
		Name:        "Gravity Tractor",
		Description: "Park a heavy spacecraft alongside the asteroid and let mutual gravity tow it off course over years.",
		SuccessRate: 0.65,
		Effectiveness: sim.Effectiveness{
			Small:  0.80,
			Medium: 0.50,
			Large:  0.15,
		},
		LeadTimeYears: 15,
		CostBillion:   2,
		TechReadiness: 4,
		Pros:          []string{"Precisely controllable", "No debris"},
		Cons:          []string{"Needs decades of warning", "Tiny thrust on big targets"},
	},
	"laser-ablation": {
		ID:          "laser-ablation",
		Code:        "LA-4",
		Name:        "Laser Ablation Array",
		Description: "Vaporize surface material with a focused laser array; the escaping plume acts as a slow rocket.",
		SuccessRate: 0.55,
		Effectiveness: sim.Effectiveness{
			Small:  0.85,
			Medium: 0.45,
			Large:  0.20,
		},
		LeadTimeYears: 10,
		CostBillion:   4,
		TechReadiness: 2,
		Pros:          []string{"Continuous thrust", "Works on spinning bodies"},
		Cons:          []string{"Power plant far beyond current tech", "Long dwell time required"},
	},
	"ion-beam-shepherd": {
		ID:          "ion-beam-shepherd",
		Code:        "IB-5",
		Name:        "Ion Beam Shepherd",
		Description: "Hover ahead of the asteroid and blast it with an ion engine exhaust stream to decelerate it.",
		SuccessRate: 0.60,
		Effectiveness: sim.Effectiveness{
			Small:  0.80,
			Medium: 0.55,
			Large:  0.25,
		},
		LeadTimeYears: 12,
		CostBillion:   3,
		TechReadiness: 3,
		Pros:          []string{"No contact with the surface", "Fine-grained control"},
		Cons:          []string{"Needs twin thrusters to hold position", "Slow by design"},
	},
}

// GetStrategy retrieves a strategy from the registry by ID.
func GetStrategy(id string) (*Strategy, error) {
	if id == "" {
		return nil, fmt.Errorf("strategy not found: empty id")
	}
	strategy, ok := StrategyRegistry[id]
	if !ok {
		return nil, fmt.Errorf("strategy not found: %s", id)
	}
	return &strategy, nil
}

// Strategies returns the registry contents in stable ID order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(StrategyRegistry))
	for _, s := range StrategyRegistry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SanitizeStrategy clamps a strategy's numeric fields into their valid
// ranges so a malformed catalog file cannot push probabilities outside [0,1].
func SanitizeStrategy(s Strategy) Strategy {
	s.SuccessRate = sim.Clamp(s.SuccessRate, 0, 1)
	s.Effectiveness.Small = sim.Clamp(s.Effectiveness.Small, 0, 1)
	s.Effectiveness.Medium = sim.Clamp(s.Effectiveness.Medium, 0, 1)
	s.Effectiveness.Large = sim.Clamp(s.Effectiveness.Large, 0, 1)
	if s.LeadTimeYears < 0 {
		s.LeadTimeYears = 0
	}
	if s.CostBillion < 0 {
		s.CostBillion = 0
	}
	if s.TechReadiness < 1 {
		s.TechReadiness = 1
	}
	if s.TechReadiness > 9 {
		s.TechReadiness = 9
	}
	return s
}
