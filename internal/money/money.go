// Package money holds the decimal amount helpers shared by the balance store,
// the flow controller and the UI.
package money

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept for every stored amount.
const Places = 2

// Round rounds d to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// NonNegative returns d, or zero when d is negative.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Floor returns the whole-dollar part of d as an int (floor(d) for d >= 0).
func Floor(d decimal.Decimal) int {
	return int(NonNegative(d).Floor().IntPart())
}

// Dollars converts a whole-dollar count to an amount.
func Dollars(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Parse parses a user or storage supplied amount. Negative amounts are rejected.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("parse amount %q: negative", s)
	}
	return Round(d), nil
}

// Format renders a balance with a dollar sign, thousands separators and
// exactly two decimals, e.g. "$1,234.50".
func Format(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", Round(d).InexactFloat64())
}

// FormatShort renders an amount the way a locale number formatter does by
// default: thousands separators and no forced decimals, e.g. "$50", "$1,234.5".
func FormatShort(d decimal.Decimal) string {
	return "$" + humanize.CommafWithDigits(Round(d).InexactFloat64(), Places)
}
