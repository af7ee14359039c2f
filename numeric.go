package trading

import "github.com/shopspring/decimal"

// Decimal places kept by the moving average and by the buy quantity. Both are
// floored so the agent under-trades rather than over-trades.
const (
	MovingAveragePlaces = 4
	QuantityPlaces      = 5
)

var (
	one         = decimal.NewFromInt(1)
	two         = decimal.NewFromInt(2)
	feeRateBase = decimal.NewFromInt(10000)
)

// FloorToDecimals floors the value to the given number of decimal places.
func FloorToDecimals(value decimal.Decimal, places int32) decimal.Decimal {
	return value.Shift(places).Floor().Shift(-places)
}

// FloorQuo computes floor(dividend / divisor) at the given number of decimal
// places without an intermediate rounding step.
func FloorQuo(dividend, divisor decimal.Decimal, places int32) decimal.Decimal {
	quotient, remainder := dividend.QuoRem(divisor, places)

	if !remainder.IsZero() && remainder.Sign() != divisor.Sign() {
		quotient = quotient.Sub(decimal.New(1, -places))
	}

	return quotient
}
