package utils

import (
	"github.com/shopspring/decimal"
)

const (
	majorRatePrecision = 2
	minorRatePrecision = 4
)

// FormatWithPrecision formats an amount with exactly the given number of fractional digits.
// Example: 12.3 with precision 2 returns "12.30"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatRate renders an exchange rate as a fixed-point string. Rates of at least
// one unit keep 2 fractional digits, smaller ones keep 4 so they do not collapse to zero.
// Example: 1.0834 returns "1.08"
// Example: 0.00671 returns "0.0067"
func FormatRate(rate decimal.Decimal) string {
	if rate.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return FormatWithPrecision(rate, majorRatePrecision)
	}
	return FormatWithPrecision(rate, minorRatePrecision)
}
