package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"PlanetDefense/internal/sim"
)

// Asteroid is one entry in the threat roster. Physical fields feed the impact
// model; the scales and dates are display flavor.
type Asteroid struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DiameterM         float64 `json:"diameterM"`
	MassKg            float64 `json:"massKg"`
	VelocityKmS       float64 `json:"velocityKmS"`
	TorinoScale       int     `json:"torinoScale"`
	PalermoScale      float64 `json:"palermoScale"`
	ImpactProbability float64 `json:"impactProbability"`
	DistanceAU        float64 `json:"distanceAu"`
	DiscoveredAt      string  `json:"discoveredAt"`
	CloseApproachAt   string  `json:"closeApproachAt"`
}

// Validate checks the asteroid's physical parameters.
func (a *Asteroid) Validate() error {
	if a == nil {
		return fmt.Errorf("asteroid is nil")
	}
	if a.ID == "" {
		return fmt.Errorf("asteroid ID cannot be empty")
	}
	if err := sim.ValidateBody(a.DiameterM, a.MassKg, a.VelocityKmS, a.ImpactProbability); err != nil {
		return fmt.Errorf("asteroid %s: %w", a.ID, err)
	}
	return nil
}

// SizeClass buckets the asteroid's diameter for effectiveness lookup.
func (a *Asteroid) SizeClass() sim.SizeClass {
	return sim.SizeClassOf(a.DiameterM)
}

// Generation ranges for fictional asteroids. Densities span rubble piles to
// iron bodies; velocities span Earth-crossing encounter speeds.
const (
	genDiameterMinM  = 20.0
	genDiameterMaxM  = 1500.0
	genDensityMin    = 2000.0 // kg/m^3
	genDensityMax    = 8000.0
	genVelocityMin   = 11.0 // km/s
	genVelocityMax   = 72.0
	genProbabilityLo = 1e-6
	genProbabilityHi = 0.02
	genDistanceMinAU = 0.05
	genDistanceMaxAU = 4.5
)

var designationSuffixes = []string{"AA", "BX", "CQ", "DF", "EK", "FN", "GT", "HV", "JR", "KM", "LP", "NW", "PX", "QD", "RS", "TH", "UV", "WZ", "XK", "YL"}

// GenerateAsteroids builds a deterministic fictional threat roster. The same
// seed always yields the same roster, so a restarted server serves the same
// dashboard.
func GenerateAsteroids(n int, seed int64) []Asteroid {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	year := time.Now().Year()
	roster := make([]Asteroid, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, generateAsteroid(rng, year, i))
	}
	return roster
}

func generateAsteroid(rng *rand.Rand, year, ordinal int) Asteroid {
	// Skew the diameter draw toward small bodies; big ones are rare.
	u := rng.Float64()
	diameter := genDiameterMinM + (genDiameterMaxM-genDiameterMinM)*u*u

	density := randomBetween(rng, genDensityMin, genDensityMax)
	radius := diameter / 2
	mass := density * (4.0 / 3.0) * math.Pi * radius * radius * radius

	velocity := randomBetween(rng, genVelocityMin, genVelocityMax)

	// Log-uniform draw keeps tiny probabilities common and percent-level
	// threats rare.
	logLo := math.Log10(genProbabilityLo)
	logHi := math.Log10(genProbabilityHi)
	probability := math.Pow(10, randomBetween(rng, logLo, logHi))

	suffix := designationSuffixes[rng.Intn(len(designationSuffixes))]
	name := fmt.Sprintf("%d %s%d", year-rng.Intn(6), suffix, 100+rng.Intn(900))

	approach := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 30+rng.Intn(365*8))
	discovered := approach.AddDate(-1-rng.Intn(10), 0, -rng.Intn(300))

	a := Asteroid{
		ID:                fmt.Sprintf("ast-%03d", ordinal+1),
		Name:              name,
		DiameterM:         diameter,
		MassKg:            mass,
		VelocityKmS:       velocity,
		ImpactProbability: probability,
		DistanceAU:        randomBetween(rng, genDistanceMinAU, genDistanceMaxAU),
		DiscoveredAt:      discovered.Format("2006-01-02"),
		CloseApproachAt:   approach.Format("2006-01-02"),
	}
	a.TorinoScale = torinoFor(&a)
	a.PalermoScale = palermoFor(&a, rng)
	return a
}

// torinoFor derives the 0-10 display rating from size class and impact odds.
// Display flavor only; nothing downstream computes from it.
func torinoFor(a *Asteroid) int {
	base := 0
	switch a.SizeClass() {
	case sim.SizeSmall:
		base = 1
	case sim.SizeMedium:
		base = 4
	case sim.SizeLarge:
		base = 7
	}
	switch {
	case a.ImpactProbability >= 0.01:
		base += 3
	case a.ImpactProbability >= 0.001:
		base += 2
	case a.ImpactProbability >= 0.0001:
		base += 1
	}
	if base > 10 {
		base = 10
	}
	return base
}

// palermoFor derives the real-valued display rating with a little jitter.
func palermoFor(a *Asteroid, rng *rand.Rand) float64 {
	p := math.Log10(a.ImpactProbability) + float64(a.TorinoScale)*0.35
	p += randomBetween(rng, -0.4, 0.4)
	return math.Round(p*100) / 100
}

func randomBetween(rng *rand.Rand, a, b float64) float64 {
	if a == b {
		return a
	}
	lo := math.Min(a, b)
	hi := math.Max(a, b)
	return lo + rng.Float64()*(hi-lo)
}
