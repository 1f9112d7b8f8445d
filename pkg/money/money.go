// Package money holds the line-item amount arithmetic.
package money

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses user-entered numeric text. Anything that does not parse
// to a finite number comes back as 0: the draft must always show some amount,
// even while a field is half-typed.
func ParseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ComputeAmount returns quantity * rate rounded to 2 decimal places.
// Invalid input degrades to 0 rather than failing.
func ComputeAmount(quantity, rate string) float64 {
	return Round2(ParseDecimal(quantity) * ParseDecimal(rate))
}

// Round2 rounds to 2 decimal places, half up (away from zero).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders an amount with two decimals for display and export.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
