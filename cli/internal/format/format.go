// ABOUTME: Display formatting for calculator values
// ABOUTME: Currency, grouped numbers and K/M abbreviations for CLI and TUI output

package format

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Currency renders v as US dollars with cents: $1,234.57, -$8,999.00
func Currency(v float64) string {
	if isBad(v) {
		return "$0.00"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

// Number renders v with thousands separators and at most three decimals
func Number(v float64) string {
	if isBad(v) {
		return "0"
	}
	// CommafWithDigits truncates, so round to three decimals first
	if rounded := math.Round(v*1e3) / 1e3; !isBad(rounded) {
		v = rounded
	}
	return humanize.CommafWithDigits(v, 3)
}

// Large abbreviates v to one decimal with a K or M suffix
func Large(v float64) string {
	if isBad(v) {
		return "0.0"
	}
	switch abs := math.Abs(v); {
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// SI renders large magnitudes such as FLOPS with an SI prefix: 1.4 T
func SI(v float64, unit string) string {
	if isBad(v) {
		return "0 " + unit
	}
	return humanize.SIWithDigits(v, 1, unit)
}

// Percent renders v as a percentage with one decimal
func Percent(v float64) string {
	if isBad(v) {
		return "0.0%"
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Month renders an optional month index, nil meaning not reached
func Month(m *int) string {
	if m == nil {
		return "not reached"
	}
	return "month " + strconv.Itoa(*m)
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
