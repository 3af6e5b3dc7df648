package server

import (
	"PlanetDefense/internal/catalog"
	"PlanetDefense/internal/mission"
	"PlanetDefense/internal/sim"
)

type asteroidDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DiameterM         float64 `json:"diameter_m"`
	MassKg            float64 `json:"mass_kg"`
	VelocityKmS       float64 `json:"velocity_km_s"`
	TorinoScale       int     `json:"torino_scale"`
	PalermoScale      float64 `json:"palermo_scale"`
	ImpactProbability float64 `json:"impact_probability"`
	ImpactOdds        int64   `json:"impact_odds"`
	DistanceAU        float64 `json:"distance_au"`
	SizeClass         string  `json:"size_class"`
	DiscoveredAt      string  `json:"discovered_at"`
	CloseApproachAt   string  `json:"close_approach_at"`
}

type assessmentDTO struct {
	AsteroidID          string            `json:"asteroid_id"`
	ImpactEnergyMT      float64           `json:"impact_energy_mt"`
	ImpactEnergyDisplay string            `json:"impact_energy_display"`
	DestructionRadiusKm float64           `json:"destruction_radius_km"`
	Severity            string            `json:"severity"`
	CasualtiesMin       int64             `json:"casualties_min"`
	CasualtiesMax       int64             `json:"casualties_max"`
	CasualtiesDisplay   string            `json:"casualties_display"`
	EquivalentNukes     int64             `json:"equivalent_nukes"`
	ImpactOdds          int64             `json:"impact_odds"`
	Bands               []severityBandDTO `json:"bands"`
}

type severityBandDTO struct {
	Label         string `json:"label"`
	CasualtiesMin int64  `json:"casualties_min"`
	CasualtiesMax int64  `json:"casualties_max"`
}

type strategyDTO struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	SuccessRate   float64  `json:"success_rate"`
	Small         float64  `json:"effectiveness_small"`
	Medium        float64  `json:"effectiveness_medium"`
	Large         float64  `json:"effectiveness_large"`
	LeadTimeYears float64  `json:"lead_time_years"`
	CostBillion   float64  `json:"cost_billion"`
	TechReadiness int      `json:"tech_readiness"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
}

type planDTO struct {
	AsteroidID         string  `json:"asteroid_id"`
	StrategyID         string  `json:"strategy_id"`
	SizeClass          string  `json:"size_class"`
	SuccessProbability float64 `json:"success_probability"`
	BaselineMin        int64   `json:"baseline_casualties_min"`
	BaselineMax        int64   `json:"baseline_casualties_max"`
	MitigatedMin       int64   `json:"mitigated_casualties_min"`
	MitigatedMax       int64   `json:"mitigated_casualties_max"`
	ProtectedMin       int64   `json:"lives_protected_min"`
	ProtectedMax       int64   `json:"lives_protected_max"`
}

type reportDTO struct {
	Result            string  `json:"result"`
	DeflectionPercent float64 `json:"deflection_percent"`
	NewMissDistanceKm float64 `json:"new_miss_distance_km"`
	Summary           string  `json:"summary"`
}

type missionDTO struct {
	ID         string     `json:"id"`
	AsteroidID string     `json:"asteroid_id"`
	StrategyID string     `json:"strategy_id"`
	Status     string     `json:"status"`
	Phase      string     `json:"phase,omitempty"`
	Progress   float64    `json:"progress"`
	StartedAt  string     `json:"started_at"`
	FinishedAt string     `json:"finished_at,omitempty"`
	Plan       planDTO    `json:"plan"`
	Report     *reportDTO `json:"report,omitempty"`
}

type launchRequestDTO struct {
	AsteroidID string `json:"asteroidId"`
	StrategyID string `json:"strategyId"`
}

type missionUpdateDTO struct {
	MissionID string     `json:"mission_id"`
	Status    string     `json:"status"`
	Phase     string     `json:"phase"`
	Progress  float64    `json:"progress"`
	Report    *reportDTO `json:"report,omitempty"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func asteroidToDTO(a catalog.Asteroid) asteroidDTO {
	return asteroidDTO{
		ID:                a.ID,
		Name:              a.Name,
		DiameterM:         a.DiameterM,
		MassKg:            a.MassKg,
		VelocityKmS:       a.VelocityKmS,
		TorinoScale:       a.TorinoScale,
		PalermoScale:      a.PalermoScale,
		ImpactProbability: a.ImpactProbability,
		ImpactOdds:        sim.ImpactOdds(a.ImpactProbability),
		DistanceAU:        a.DistanceAU,
		SizeClass:         a.SizeClass().String(),
		DiscoveredAt:      a.DiscoveredAt,
		CloseApproachAt:   a.CloseApproachAt,
	}
}

func assessmentToDTO(a catalog.Asteroid, est sim.Estimate) assessmentDTO {
	ladder := sim.SeverityBands()
	bands := make([]severityBandDTO, 0, len(ladder))
	for _, band := range ladder {
		bands = append(bands, severityBandDTO{
			Label:         band.Label,
			CasualtiesMin: band.Casualties.Min,
			CasualtiesMax: band.Casualties.Max,
		})
	}
	return assessmentDTO{
		AsteroidID:          a.ID,
		ImpactEnergyMT:      est.ImpactEnergyMT,
		ImpactEnergyDisplay: sim.FormatScientific(est.ImpactEnergyMT),
		DestructionRadiusKm: est.DestructionRadiusKm,
		Severity:            est.Severity.Label,
		CasualtiesMin:       est.Severity.Casualties.Min,
		CasualtiesMax:       est.Severity.Casualties.Max,
		CasualtiesDisplay:   sim.FormatCount(est.Severity.Casualties.Max),
		EquivalentNukes:     est.EquivalentNukes,
		ImpactOdds:          sim.ImpactOdds(a.ImpactProbability),
		Bands:               bands,
	}
}

func strategyToDTO(s catalog.Strategy) strategyDTO {
	return strategyDTO{
		ID:            s.ID,
		Code:          s.Code,
		Name:          s.Name,
		Description:   s.Description,
		SuccessRate:   s.SuccessRate,
		Small:         s.Effectiveness.Small,
		Medium:        s.Effectiveness.Medium,
		Large:         s.Effectiveness.Large,
		LeadTimeYears: s.LeadTimeYears,
		CostBillion:   s.CostBillion,
		TechReadiness: s.TechReadiness,
		Pros:          s.Pros,
		Cons:          s.Cons,
	}
}

func planToDTO(asteroidID, strategyID string, p mission.Plan) planDTO {
	return planDTO{
		AsteroidID:         asteroidID,
		StrategyID:         strategyID,
		SizeClass:          p.SizeClass,
		SuccessProbability: p.SuccessProbability,
		BaselineMin:        p.Baseline.Severity.Casualties.Min,
		BaselineMax:        p.Baseline.Severity.Casualties.Max,
		MitigatedMin:       p.Mitigated.Min,
		MitigatedMax:       p.Mitigated.Max,
		ProtectedMin:       p.LivesProtected.Min,
		ProtectedMax:       p.LivesProtected.Max,
	}
}

func reportToDTO(r *mission.Report) *reportDTO {
	if r == nil {
		return nil
	}
	return &reportDTO{
		Result:            string(r.Result),
		DeflectionPercent: r.Outcome.DeflectionPercent,
		NewMissDistanceKm: r.NewMissDistanceKm,
		Summary:           r.Summary,
	}
}

func missionToDTO(m mission.Mission) missionDTO {
	dto := missionDTO{
		ID:         m.ID,
		AsteroidID: m.Asteroid.ID,
		StrategyID: m.Strategy.ID,
		Status:     string(m.Status),
		Phase:      string(m.Phase),
		Progress:   m.Progress,
		StartedAt:  m.StartedAt.UTC().Format(timeLayout),
		Plan:       planToDTO(m.Asteroid.ID, m.Strategy.ID, m.Plan),
		Report:     reportToDTO(m.Report),
	}
	if m.FinishedAt != nil {
		dto.FinishedAt = m.FinishedAt.UTC().Format(timeLayout)
	}
	return dto
}

func updateToDTO(u mission.Update) missionUpdateDTO {
	return missionUpdateDTO{
		MissionID: u.MissionID,
		Status:    string(u.Status),
		Phase:     string(u.Phase),
		Progress:  u.Progress,
		Report:    reportToDTO(u.Report),
	}
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
