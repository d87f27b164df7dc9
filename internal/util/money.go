package util

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmountCents caps any single amount at 10 million units.
const MaxAmountCents = 10_000_000 * 100

// ParseAmount converts a decimal string like "49.99" into cents.
// At most two decimal places are accepted; negative values are rejected.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("amount cannot have more than two decimal places")
	}
	// Compare before converting: IntPart wraps on values past int64 range.
	if d.Cmp(decimal.New(MaxAmountCents, -2)) > 0 {
		return 0, fmt.Errorf("amount too large")
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// FormatCents renders cents as a decimal string with two places.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
