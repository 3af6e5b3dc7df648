package sim

import (
	"fmt"
	"math"
)

// FormatScientific renders a positive value in display-friendly scientific
// notation ("4.78×10^5"). Non-positive values render as "0" rather than
// feeding log10 an undefined argument.
func FormatScientific(v float64) string {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	exp := math.Floor(math.Log10(v))
	mant := v / math.Pow(10, exp)
	if mant >= 9.995 { // rounding would print "10.00×10^n"
		mant /= 10
		exp++
	}
	if exp >= 0 && exp < 4 {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f×10^%d", mant, int(exp))
}

// FormatCount renders a casualty count with a compact magnitude suffix.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}
