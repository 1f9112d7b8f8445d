// Package words spells out memo totals for the printed amount-in-words line.
// Amounts follow the Bangladeshi numbering scale (thousand, lakh, crore).
package words

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func twoDigits(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

func spell(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, spell(crore), "Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, twoDigits(lakh), "Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, twoDigits(thousand), "Thousand")
		n %= 1000
	}
	if hundred := n / 100; hundred > 0 {
		parts = append(parts, ones[hundred], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigits(n))
	}
	return strings.Join(parts, " ")
}

// InWords renders an amount as printed on the memo, e.g.
// InWords(1250.50) == "One Thousand Two Hundred Fifty Taka and Fifty Paisa Only".
func InWords(amount float64) string {
	paisa := int64(math.Round(math.Abs(amount) * 100))
	taka := paisa / 100
	fraction := paisa % 100

	s := spell(taka) + " Taka"
	if fraction > 0 {
		s += " and " + twoDigits(fraction) + " Paisa"
	}
	return s + " Only"
}
