package sim

import "testing"

// TestFormatScientific verifies display formatting guards non-positive
// arguments and keeps small magnitudes plain.
func TestFormatScientific(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{-42, "0"},
		{478.01, "478.01"},
		{1, "1.00"},
		{4.78e5, "4.78×10^5"},
		{1e9, "1.00×10^9"},
		{0.0021, "2.10×10^-3"},
		{9.9999e5, "1.00×10^6"}, // mantissa rounding must not print 10
	}
	for _, c := range cases {
		got := FormatScientific(c.value)
		if got != c.want {
			t.Errorf("FormatScientific(%g): expected %s, got %s", c.value, c.want, got)
		}
	}
}

// TestFormatCount verifies the compact magnitude suffixes.
func TestFormatCount(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{85000, "85.0K"},
		{1500000, "1.5M"},
		{8000000000, "8.0B"},
	}
	for _, c := range cases {
		if got := FormatCount(c.value); got != c.want {
			t.Errorf("FormatCount(%d): expected %s, got %s", c.value, c.want, got)
		}
	}
}
