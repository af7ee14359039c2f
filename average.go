package trading

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SimpleMovingAverage is the arithmetic mean of the last lookback closes,
// floored to MovingAveragePlaces.
func SimpleMovingAverage(
	closes []decimal.Decimal,
	lookback int,
) (decimal.Decimal, error) {
	if err := checkLookback(closes, lookback); err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Sum(decimal.Zero, closes[len(closes)-lookback:]...)

	return FloorQuo(sum, decimal.NewFromInt(int64(lookback)), MovingAveragePlaces), nil
}

// ExponentialMovingAverage seeds with the floored simple average of the first
// lookback closes and then walks forward over the remaining ones:
//
//	EMA[i] = (close[i] - EMA[i-1]) * 2/(lookback+1) + EMA[i-1]
func ExponentialMovingAverage(
	closes []decimal.Decimal,
	lookback int,
) (decimal.Decimal, error) {
	series, err := ExponentialMovingAverageSeries(closes, lookback)
	if err != nil {
		return decimal.Zero, err
	}

	return series[len(series)-1], nil
}

// ExponentialMovingAverageSeries returns the seed followed by every
// subsequent EMA value, one per close after the seed window.
func ExponentialMovingAverageSeries(
	closes []decimal.Decimal,
	lookback int,
) ([]decimal.Decimal, error) {
	if err := checkLookback(closes, lookback); err != nil {
		return nil, err
	}

	seed, err := SimpleMovingAverage(closes[:lookback], lookback)
	if err != nil {
		return nil, err
	}

	multiplier := two.Div(decimal.NewFromInt(int64(lookback + 1)))

	series := make([]decimal.Decimal, 0, len(closes)-lookback+1)
	series = append(series, seed)

	previous := seed
	for _, closePrice := range closes[lookback:] {
		previous = closePrice.Sub(previous).Mul(multiplier).Add(previous)
		series = append(series, previous)
	}

	return series, nil
}

func checkLookback(closes []decimal.Decimal, lookback int) error {
	if lookback <= 0 {
		return fmt.Errorf(
			"%w: non-positive lookback [%v]",
			ErrConfiguration,
			lookback,
		)
	}

	if len(closes) < lookback {
		return fmt.Errorf(
			"%w: need [%v] closes, got [%v]",
			ErrInsufficientData,
			lookback,
			len(closes),
		)
	}

	return nil
}
