package ledger

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Amounts outside these bounds count as malformed. Rendering a decimal
// expands its exponent in full.
const (
	maxAmountExponent = 20
	maxAmountDigits   = 34
)

// ParseAmount reads decimal text. Empty, malformed or out-of-range input
// yields zero.
func ParseAmount(s string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !amountInRange(amount) {
		return decimal.Zero
	}
	return amount
}

func amountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxAmountExponent || exp < -maxAmountExponent {
		return false
	}
	return d.NumDigits() <= maxAmountDigits
}

// parseMagnitude is ParseAmount without the sign.
func parseMagnitude(s string) decimal.Decimal {
	return ParseAmount(s).Abs()
}

// parseDate reads a YYYY-MM-DD date, returning fallback when s is not one.
func parseDate(s string, fallback civil.Date) civil.Date {
	date, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !date.IsValid() {
		return fallback
	}
	return date
}
