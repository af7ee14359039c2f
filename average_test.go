package trading

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimpleMovingAverage(t *testing.T) {
	tests := map[string]struct {
		closes   []string
		lookback int
		expected string
	}{
		"exact mean": {
			closes:   []string{"1.0", "1.0", "1.0"},
			lookback: 3,
			expected: "1",
		},
		"uses last closes only": {
			closes:   []string{"100", "1", "2", "3"},
			lookback: 3,
			expected: "2",
		},
		"floored not rounded": {
			closes:   []string{"0.7", "1.2", "1.0"},
			lookback: 3,
			expected: "0.9666",
		},
		"floored repeating fraction": {
			closes:   []string{"1", "1", "0"},
			lookback: 3,
			expected: "0.6666",
		},
		"single close": {
			closes:   []string{"0.123456"},
			lookback: 1,
			expected: "0.1234",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			actual, err := SimpleMovingAverage(decs(t, test.closes...), test.lookback)
			if err != nil {
				t.Fatal(err)
			}

			assertDecimalEqual(t, "moving average", dec(t, test.expected), actual)
		})
	}
}

func TestSimpleMovingAverage_FloorOfMean(t *testing.T) {
	closes := decs(t, "0.3317", "0.3321", "0.3329", "0.3302", "0.3311", "0.3333", "0.3297")

	for lookback := 1; lookback <= len(closes); lookback++ {
		actual, err := SimpleMovingAverage(closes, lookback)
		if err != nil {
			t.Fatal(err)
		}

		window := closes[len(closes)-lookback:]
		mean := decimal.Sum(decimal.Zero, window...).
			DivRound(decimal.NewFromInt(int64(lookback)), 16)

		expected := FloorToDecimals(mean, MovingAveragePlaces)

		assertDecimalEqual(t, "moving average", expected, actual)

		if actual.GreaterThan(mean) {
			t.Errorf("moving average [%v] exceeds the mean [%v]", actual, mean)
		}
	}
}

func TestSimpleMovingAverage_Errors(t *testing.T) {
	closes := decs(t, "1", "2")

	if _, err := SimpleMovingAverage(closes, 3); !errors.Is(err, ErrInsufficientData) {
		t.Errorf(
			"unexpected error\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			ErrInsufficientData,
			err,
		)
	}

	for _, lookback := range []int{0, -1} {
		if _, err := SimpleMovingAverage(closes, lookback); !errors.Is(err, ErrConfiguration) {
			t.Errorf(
				"unexpected error for lookback [%v]\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				lookback,
				ErrConfiguration,
				err,
			)
		}
	}
}

func TestExponentialMovingAverageSeries(t *testing.T) {
	closes := decs(t, "10", "12", "11", "13", "14", "15")

	series, err := ExponentialMovingAverageSeries(closes, 3)
	if err != nil {
		t.Fatal(err)
	}

	// seed = floor((10+12+11)/3, 4) = 11, multiplier = 2/(3+1) = 0.5
	expected := decs(t, "11", "12", "13", "14")

	if len(series) != len(expected) {
		t.Fatalf(
			"unexpected series length\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			len(expected),
			len(series),
		)
	}

	for index := range expected {
		assertDecimalEqual(t, "ema value", expected[index], series[index])
	}
}

func TestExponentialMovingAverage_ClosedForm(t *testing.T) {
	closes := decs(t, "1.05", "1.10", "1.02", "0.98", "1.07")
	lookback := 3

	actual, err := ExponentialMovingAverage(closes, lookback)
	if err != nil {
		t.Fatal(err)
	}

	multiplier := dec(t, "0.5")
	keep := dec(t, "0.5")

	seed := FloorToDecimals(
		dec(t, "3.17").DivRound(decimal.NewFromInt(3), 16),
		MovingAveragePlaces,
	)

	// EMA[2] = k*c[4] + k(1-k)*c[3] + (1-k)^2*seed
	expected := multiplier.Mul(closes[4]).
		Add(multiplier.Mul(keep).Mul(closes[3])).
		Add(keep.Mul(keep).Mul(seed))

	assertDecimalEqual(t, "seed", dec(t, "1.0566"), seed)
	assertDecimalEqual(t, "exponential moving average", expected, actual)
}

func TestExponentialMovingAverage_SeedOnly(t *testing.T) {
	actual, err := ExponentialMovingAverage(decs(t, "1", "1", "0"), 3)
	if err != nil {
		t.Fatal(err)
	}

	assertDecimalEqual(t, "exponential moving average", dec(t, "0.6666"), actual)
}

func TestExponentialMovingAverage_Errors(t *testing.T) {
	if _, err := ExponentialMovingAverage(decs(t, "1", "2"), 3); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected insufficient data error, got [%v]", err)
	}

	if _, err := ExponentialMovingAverage(decs(t, "1", "2"), 0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got [%v]", err)
	}
}
