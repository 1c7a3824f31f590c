package money

import "fmt"

// Cents is a monetary amount in integer minor units. All billing arithmetic
// in this codebase happens on this type so that totals are exact and
// reproducible; float64 never touches money.
type Cents int64

// BpsDenominator is the divisor for basis-point rates (10000 bps = 100%).
const BpsDenominator = 10_000

// MulBps applies a basis-point rate to an amount, rounding half up.
// 22000 cents at 1000 bps yields 2200 cents exactly.
func MulBps(amount Cents, bps int64) Cents {
	raw := int64(amount) * bps

	if raw >= 0 {
		return Cents((raw + BpsDenominator/2) / BpsDenominator)
	}

	return Cents((raw - BpsDenominator/2) / BpsDenominator)
}

// Sum adds a list of amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}

	return total
}

// Format renders an amount as a decimal string with two fraction digits,
// e.g. 24200 -> "242.00".
func Format(amount Cents) string {
	sign := ""

	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
