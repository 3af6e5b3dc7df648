package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"PlanetDefense/internal/sim"
)

// Catalog is the resolved content the server works from: the defense playbook
// plus the asteroid roster.
type Catalog struct {
	strategies map[string]Strategy
	asteroids  []Asteroid
	byID       map[string]int
}

// Default builds a catalog from the built-in strategy registry and a
// generated asteroid roster.
func Default(rosterSize int, seed int64) *Catalog {
	c := &Catalog{
		strategies: make(map[string]Strategy, len(StrategyRegistry)),
		byID:       make(map[string]int),
	}
	for id, s := range StrategyRegistry {
		c.strategies[id] = SanitizeStrategy(s)
	}
	c.setAsteroids(GenerateAsteroids(rosterSize, seed))
	return c
}

func (c *Catalog) setAsteroids(roster []Asteroid) {
	c.asteroids = roster
	c.byID = make(map[string]int, len(roster))
	for i := range roster {
		c.byID[roster[i].ID] = i
	}
}

// Strategy looks up a playbook entry by ID.
func (c *Catalog) Strategy(id string) (*Strategy, error) {
	s, ok := c.strategies[id]
	if !ok {
		return nil, fmt.Errorf("strategy not found: %s", id)
	}
	return &s, nil
}

// Strategies returns the playbook in stable ID order.
func (c *Catalog) Strategies() []Strategy {
	out := make([]Strategy, 0, len(c.strategies))
	for _, s := range c.strategies {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Asteroid looks up a roster entry by ID.
func (c *Catalog) Asteroid(id string) (*Asteroid, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("asteroid not found: %s", id)
	}
	a := c.asteroids[i]
	return &a, nil
}

// Asteroids returns the roster in its generated order.
func (c *Catalog) Asteroids() []Asteroid {
	return append([]Asteroid(nil), c.asteroids...)
}

// Counts reports roster and playbook sizes for the metrics gauges.
func (c *Catalog) Counts() (asteroids, strategies int) {
	return len(c.asteroids), len(c.strategies)
}

type effectivenessConfig struct {
	Small  *float64 `json:"small"`
	Medium *float64 `json:"medium"`
	Large  *float64 `json:"large"`
}

type strategyConfig struct {
	ID            string               `json:"id"`
	Code          *string              `json:"code"`
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	SuccessRate   *float64             `json:"successRate"`
	Effectiveness *effectivenessConfig `json:"effectiveness"`
	LeadTimeYears *float64             `json:"leadTimeYears"`
	CostBillion   *float64             `json:"costBillion"`
	TechReadiness *int                 `json:"techReadiness"`
	Pros          []string             `json:"pros"`
	Cons          []string             `json:"cons"`
}

type catalogConfig struct {
	Strategies []strategyConfig `json:"strategies"`
	Asteroids  []Asteroid       `json:"asteroids"`
}

func mergeStrategy(base Strategy, cfg strategyConfig) Strategy {
	if cfg.Code != nil {
		base.Code = *cfg.Code
	}
	if cfg.Name != nil {
		base.Name = *cfg.Name
	}
	if cfg.Description != nil {
		base.Description = *cfg.Description
	}
	if cfg.SuccessRate != nil {
		base.SuccessRate = *cfg.SuccessRate
	}
	if cfg.Effectiveness != nil {
		if cfg.Effectiveness.Small != nil {
			base.Effectiveness.Small = *cfg.Effectiveness.Small
		}
		if cfg.Effectiveness.Medium != nil {
			base.Effectiveness.Medium = *cfg.Effectiveness.Medium
		}
		if cfg.Effectiveness.Large != nil {
			base.Effectiveness.Large = *cfg.Effectiveness.Large
		}
	}
	if cfg.LeadTimeYears != nil {
		base.LeadTimeYears = *cfg.LeadTimeYears
	}
	if cfg.CostBillion != nil {
		base.CostBillion = *cfg.CostBillion
	}
	if cfg.TechReadiness != nil {
		base.TechReadiness = *cfg.TechReadiness
	}
	if cfg.Pros != nil {
		base.Pros = cfg.Pros
	}
	if cfg.Cons != nil {
		base.Cons = cfg.Cons
	}
	return SanitizeStrategy(base)
}

// Load resolves the catalog from an optional JSON file layered over the
// defaults. A missing file is not an error; the defaults are served as-is.
// File strategies merge field-by-field onto registry entries with the same ID
// and append otherwise. A non-empty asteroid list in the file replaces the
// generated roster, dropping entries that fail validation.
func Load(path string, rosterSize int, seed int64) (*Catalog, error) {
	c := Default(rosterSize, seed)
	if path == "" {
		return c, nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read catalog %q: %w", cleanPath, err)
	}
	var cfg catalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return c, fmt.Errorf("parse catalog %q: %w", cleanPath, err)
	}

	for _, sc := range cfg.Strategies {
		if sc.ID == "" {
			continue
		}
		base, ok := c.strategies[sc.ID]
		if !ok {
			base = Strategy{ID: sc.ID, TechReadiness: 1}
		}
		merged := mergeStrategy(base, sc)
		if err := merged.Validate(); err != nil {
			return c, fmt.Errorf("catalog %q: %w", cleanPath, err)
		}
		c.strategies[sc.ID] = merged
	}

	if len(cfg.Asteroids) > 0 {
		roster := make([]Asteroid, 0, len(cfg.Asteroids))
		for i := range cfg.Asteroids {
			a := cfg.Asteroids[i]
			if err := a.Validate(); err != nil {
				return c, fmt.Errorf("catalog %q: %w", cleanPath, err)
			}
			a.ImpactProbability = sim.Clamp(a.ImpactProbability, 0, 1)
			roster = append(roster, a)
		}
		c.setAsteroids(roster)
	}
	return c, nil
}
