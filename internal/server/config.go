package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"PlanetDefense/internal/mission"
)

// EngineParams bundles the runtime tuning: roster generation and mission
// pacing. Defaults reproduce the stock game numbers.
type EngineParams struct {
	RosterSize int
	RosterSeed int64
	Mission    mission.Params
}

// DefaultEngineParams returns the stock tuning: a twelve-asteroid roster and
// the four-phase scripted mission.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		RosterSize: 12,
		RosterSeed: 2029,
		Mission:    mission.DefaultParams(),
	}
}

// SanitizeEngineParams repairs nonsensical tuning values.
func SanitizeEngineParams(p EngineParams) EngineParams {
	defaults := DefaultEngineParams()
	if p.RosterSize <= 0 {
		p.RosterSize = defaults.RosterSize
	}
	if p.RosterSeed == 0 {
		p.RosterSeed = defaults.RosterSeed
	}
	p.Mission = mission.SanitizeParams(p.Mission)
	return p
}

type deflectConfig struct {
	SuccessMin *float64 `json:"successMin"`
	SuccessMax *float64 `json:"successMax"`
	FailureMin *float64 `json:"failureMin"`
	FailureMax *float64 `json:"failureMax"`
}

type missionConfig struct {
	PhaseMillis      *int           `json:"phaseMillis"`
	RetentionMinutes *int           `json:"retentionMinutes"`
	Deflect          *deflectConfig `json:"deflect"`
}

type rosterConfig struct {
	Size *int   `json:"size"`
	Seed *int64 `json:"seed"`
}

type engineConfig struct {
	Roster  *rosterConfig  `json:"roster"`
	Mission *missionConfig `json:"mission"`
}

// EngineOverrides represents optional command-line overrides for the engine
// tuning. Nil fields leave the file or default value in place.
type EngineOverrides struct {
	RosterSize       *int
	RosterSeed       *int64
	PhaseMillis      *int
	RetentionMinutes *int
	SuccessMin       *float64
	SuccessMax       *float64
	FailureMin       *float64
	FailureMax       *float64
}

func (o EngineOverrides) apply(base EngineParams) EngineParams {
	if o.RosterSize != nil {
		base.RosterSize = *o.RosterSize
	}
	if o.RosterSeed != nil {
		base.RosterSeed = *o.RosterSeed
	}
	if o.PhaseMillis != nil {
		base.Mission.PhaseDuration = time.Duration(*o.PhaseMillis) * time.Millisecond
	}
	if o.RetentionMinutes != nil {
		base.Mission.Retention = time.Duration(*o.RetentionMinutes) * time.Minute
	}
	if o.SuccessMin != nil {
		base.Mission.Outcome.SuccessDeflectMin = *o.SuccessMin
	}
	if o.SuccessMax != nil {
		base.Mission.Outcome.SuccessDeflectMax = *o.SuccessMax
	}
	if o.FailureMin != nil {
		base.Mission.Outcome.FailureDeflectMin = *o.FailureMin
	}
	if o.FailureMax != nil {
		base.Mission.Outcome.FailureDeflectMax = *o.FailureMax
	}
	return SanitizeEngineParams(base)
}

func mergeEngineConfig(base EngineParams, cfg *engineConfig) EngineParams {
	if cfg == nil {
		return base
	}
	if cfg.Roster != nil {
		if cfg.Roster.Size != nil {
			base.RosterSize = *cfg.Roster.Size
		}
		if cfg.Roster.Seed != nil {
			base.RosterSeed = *cfg.Roster.Seed
		}
	}
	if cfg.Mission != nil {
		if cfg.Mission.PhaseMillis != nil {
			base.Mission.PhaseDuration = time.Duration(*cfg.Mission.PhaseMillis) * time.Millisecond
		}
		if cfg.Mission.RetentionMinutes != nil {
			base.Mission.Retention = time.Duration(*cfg.Mission.RetentionMinutes) * time.Minute
		}
		if d := cfg.Mission.Deflect; d != nil {
			if d.SuccessMin != nil {
				base.Mission.Outcome.SuccessDeflectMin = *d.SuccessMin
			}
			if d.SuccessMax != nil {
				base.Mission.Outcome.SuccessDeflectMax = *d.SuccessMax
			}
			if d.FailureMin != nil {
				base.Mission.Outcome.FailureDeflectMin = *d.FailureMin
			}
			if d.FailureMax != nil {
				base.Mission.Outcome.FailureDeflectMax = *d.FailureMax
			}
		}
	}
	return SanitizeEngineParams(base)
}

func loadEngineParamsFromFile(path string, base EngineParams) (EngineParams, error) {
	if path == "" {
		return SanitizeEngineParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return SanitizeEngineParams(base), nil
		}
		return SanitizeEngineParams(base), fmt.Errorf("read engine config %q: %w", cleanPath, err)
	}
	var cfg engineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SanitizeEngineParams(base), fmt.Errorf("parse engine config %q: %w", cleanPath, err)
	}
	return mergeEngineConfig(SanitizeEngineParams(base), &cfg), nil
}

func applyEngineOverrides(base EngineParams, overrides EngineOverrides) EngineParams {
	return overrides.apply(base)
}
