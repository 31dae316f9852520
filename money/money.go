// Package money formats currency amounts for display. Values are rounded with
// decimal arithmetic so that formatting never depends on float printing.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders v as "$1,234" rounded to whole currency units.
func Format(v float64) string {
	return FormatPlaces(v, 0)
}

// FormatPlaces renders v as "$1,234.56" with the given number of decimals.
func FormatPlaces(v float64, places int32) string {
	d := decimal.NewFromFloat(v).Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	text := d.StringFixed(places)
	whole, frac, hasFrac := strings.Cut(text, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("$")
	b.WriteString(groupThousands(whole))
	if hasFrac {
		b.WriteString(".")
		b.WriteString(frac)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
