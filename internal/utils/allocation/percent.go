package allocation

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	maxPercent    = decimal.NewFromInt(9999)
	percentPlaces = int32(2)
)

// ParsePercent converts raw user input into a percentage. Unparseable or
// negative input yields zero; values above 9999 are clamped.
func ParsePercent(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return ClampPercent(d)
}

// ClampPercent bounds a percentage to [0, 9999].
func ClampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(maxPercent) {
		return maxPercent
	}
	return d
}

// RoundPercent rounds to the two decimal places stored for allocations.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(percentPlaces)
}
