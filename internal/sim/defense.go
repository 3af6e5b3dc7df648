package sim

import "math"

// SizeClass partitions asteroid diameter into the bucket that selects a
// strategy's effectiveness multiplier.
type SizeClass int

const (
	SizeSmall  SizeClass = iota // diameter < 100 m
	SizeMedium                  // 100 m <= diameter < 500 m
	SizeLarge                   // diameter >= 500 m
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Effectiveness holds a strategy's per-size-class multipliers, each in [0,1].
type Effectiveness struct {
	Small  float64 `json:"small"`
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// StrategyProfile is the slice of a defense strategy the outcome model needs.
type StrategyProfile struct {
	SuccessRate   float64
	Effectiveness Effectiveness
}

// SizeClassOf buckets a diameter in meters. The partition is half-open on the
// lower bound and covers all of [0, inf).
func SizeClassOf(diameterM float64) SizeClass {
	switch {
	case diameterM < 100:
		return SizeSmall
	case diameterM < 500:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// For returns the multiplier for the given size class.
func (e Effectiveness) For(class SizeClass) float64 {
	switch class {
	case SizeSmall:
		return e.Small
	case SizeMedium:
		return e.Medium
	default:
		return e.Large
	}
}

// EffectivenessFor selects the strategy multiplier by asteroid diameter.
// Pure lookup: a 99 m and a 100 m asteroid can see a discontinuous jump.
func EffectivenessFor(p StrategyProfile, diameterM float64) float64 {
	return p.Effectiveness.For(SizeClassOf(diameterM))
}

// SuccessProbability is the strategy's base success rate scaled by its
// size-class effectiveness, clamped to [0,1] to tolerate malformed catalogs.
func SuccessProbability(p StrategyProfile, diameterM float64) float64 {
	return Clamp(p.SuccessRate*EffectivenessFor(p, diameterM), 0, 1)
}

// MitigatedCasualties scales a baseline casualty range by a deflection success
// probability. p=0 reproduces the baseline; p=1 yields zero.
func MitigatedCasualties(baseline CasualtyRange, p float64) CasualtyRange {
	p = Clamp(p, 0, 1)
	return CasualtyRange{
		Min: int64(math.Round(float64(baseline.Min) * (1 - p))),
		Max: int64(math.Round(float64(baseline.Max) * (1 - p))),
	}
}

// LivesProtected is the component-wise delta between the undefended baseline
// and the mitigated estimate.
func LivesProtected(baseline, mitigated CasualtyRange) CasualtyRange {
	return CasualtyRange{
		Min: baseline.Min - mitigated.Min,
		Max: baseline.Max - mitigated.Max,
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
