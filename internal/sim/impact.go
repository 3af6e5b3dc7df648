package sim

import "math"

const (
	// Joules per megaton of TNT equivalent.
	megatonJoules = 4.184e15
	// Reference weapon yield (Hiroshima) in megatons.
	referenceYieldMT = 0.015

	// Blast scaling: destruction radius grows with the cube root of yield,
	// so doubling the energy does not double the footprint.
	damageRadiusCoeff    = 5.0
	damageRadiusExponent = 1.0 / 3.0
)

// CasualtyRange is an inclusive min/max estimate of lives at risk.
type CasualtyRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// SeverityBand labels an impact energy with a casualty estimate.
type SeverityBand struct {
	Label      string        `json:"label"`
	Casualties CasualtyRange `json:"casualties"`
}

// Estimate bundles the derived damage numbers for one asteroid.
// It is recomputed on demand and never cached.
type Estimate struct {
	ImpactEnergyMT      float64      `json:"impactEnergyMt"`
	DestructionRadiusKm float64      `json:"destructionRadiusKm"`
	Severity            SeverityBand `json:"severity"`
	EquivalentNukes     int64        `json:"equivalentNukes"`
}

// ImpactEnergyMT converts an asteroid's mass (kg) and velocity (km/s) into
// kinetic impact energy in megatons of TNT equivalent.
func ImpactEnergyMT(massKg, velocityKmS float64) float64 {
	v := velocityKmS * 1000 // km/s -> m/s
	return 0.5 * massKg * v * v / megatonJoules
}

// DamageRadiusKm maps impact energy to a destruction radius in kilometers.
// Returns 0 for zero energy and is monotone non-decreasing.
func DamageRadiusKm(energyMT float64) float64 {
	if energyMT <= 0 {
		return 0
	}
	return damageRadiusCoeff * math.Pow(energyMT, damageRadiusExponent)
}

// severityTable is ordered highest threshold first; classification picks the
// first entry whose threshold the energy strictly exceeds.
var severityTable = []struct {
	aboveMT float64
	band    SeverityBand
}{
	{10000, SeverityBand{Label: "Extinction Event", Casualties: CasualtyRange{Min: 1e9, Max: 8e9}}},
	{1000, SeverityBand{Label: "Global Catastrophe", Casualties: CasualtyRange{Min: 1e8, Max: 1e9}}},
	{100, SeverityBand{Label: "Continental Devastation", Casualties: CasualtyRange{Min: 1e7, Max: 1e8}}},
	{10, SeverityBand{Label: "Regional Disaster", Casualties: CasualtyRange{Min: 1e6, Max: 1e7}}},
	{1, SeverityBand{Label: "City Destroyer", Casualties: CasualtyRange{Min: 1e5, Max: 1e6}}},
	{0.01, SeverityBand{Label: "Local Impact", Casualties: CasualtyRange{Min: 1e3, Max: 1e5}}},
}

var minorEvent = SeverityBand{Label: "Minor Event", Casualties: CasualtyRange{Min: 0, Max: 1e3}}

// ClassifySeverity buckets an impact energy into its severity band.
// Energy exactly at a threshold falls into the lower band.
func ClassifySeverity(energyMT float64) SeverityBand {
	for _, entry := range severityTable {
		if energyMT > entry.aboveMT {
			return entry.band
		}
	}
	return minorEvent
}

// SeverityBands returns the full classification ladder ordered from most to
// least severe, ending with the minor-event band.
func SeverityBands() []SeverityBand {
	bands := make([]SeverityBand, 0, len(severityTable)+1)
	for _, entry := range severityTable {
		bands = append(bands, entry.band)
	}
	return append(bands, minorEvent)
}

// EquivalentNukes scales impact energy to a count of reference-yield weapons,
// rounded to the nearest whole weapon. Never negative.
func EquivalentNukes(energyMT float64) int64 {
	if energyMT <= 0 {
		return 0
	}
	return int64(math.Round(energyMT * 1000 / (referenceYieldMT * 1000)))
}

// EstimateDamage computes the full baseline damage picture for an asteroid's
// physical parameters. Inputs are assumed validated (see ValidateBody).
func EstimateDamage(massKg, velocityKmS float64) Estimate {
	energy := ImpactEnergyMT(massKg, velocityKmS)
	return Estimate{
		ImpactEnergyMT:      energy,
		DestructionRadiusKm: DamageRadiusKm(energy),
		Severity:            ClassifySeverity(energy),
		EquivalentNukes:     EquivalentNukes(energy),
	}
}

// ImpactOdds converts an impact probability in (0,1] to "1 in N" odds,
// rounded to the nearest integer.
func ImpactOdds(probability float64) int64 {
	if probability <= 0 {
		return 0
	}
	if probability > 1 {
		probability = 1
	}
	return int64(math.Round(1 / probability))
}
