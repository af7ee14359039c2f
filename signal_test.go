package trading

import "testing"

func TestDecide(t *testing.T) {
	tests := map[string]struct {
		previousClose string
		movingAverage string
		currentPrice  string
		expected      SignalType
	}{
		"crossing upwards": {
			previousClose: "0.9",
			movingAverage: "1.0",
			currentPrice:  "1.1",
			expected:      SignalBuy,
		},
		"crossing downwards": {
			previousClose: "1.1",
			movingAverage: "1.0",
			currentPrice:  "0.95",
			expected:      SignalSell,
		},
		"staying above": {
			previousClose: "1.05",
			movingAverage: "1.0",
			currentPrice:  "1.1",
			expected:      SignalNone,
		},
		"staying below": {
			previousClose: "0.9",
			movingAverage: "1.0",
			currentPrice:  "0.95",
			expected:      SignalNone,
		},
		"previous close on average": {
			previousClose: "1.0",
			movingAverage: "1.0",
			currentPrice:  "1.1",
			expected:      SignalNone,
		},
		"price on average": {
			previousClose: "0.9",
			movingAverage: "1.0",
			currentPrice:  "1.0",
			expected:      SignalNone,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			actual := Decide(&PriceSnapshot{
				PreviousClose: dec(t, test.previousClose),
				MovingAverage: dec(t, test.movingAverage),
				CurrentPrice:  dec(t, test.currentPrice),
			})

			if actual != test.expected {
				t.Errorf(
					"unexpected signal\n"+
						"expected: [%v]\n"+
						"actual:   [%v]",
					test.expected,
					actual,
				)
			}
		})
	}
}

func TestDecide_ExactlyOneSignal(t *testing.T) {
	prices := decs(t, "0.5", "0.99", "1.0", "1.01", "1.5")
	average := dec(t, "1.0")

	for _, previous := range prices {
		for _, current := range prices {
			snapshot := &PriceSnapshot{
				PreviousClose: previous,
				MovingAverage: average,
				CurrentPrice:  current,
			}

			buy := current.GreaterThan(average) && previous.LessThan(average)
			sell := current.LessThan(average) && previous.GreaterThan(average)

			if buy && sell {
				t.Fatalf("both conditions hold for [%v]", snapshot)
			}

			expected := SignalNone
			switch {
			case buy:
				expected = SignalBuy
			case sell:
				expected = SignalSell
			}

			if actual := Decide(snapshot); actual != expected {
				t.Errorf(
					"unexpected signal for [%v]\n"+
						"expected: [%v]\n"+
						"actual:   [%v]",
					snapshot,
					expected,
					actual,
				)
			}
		}
	}
}

func TestSignalType_OrderSide(t *testing.T) {
	if side, ok := SignalBuy.OrderSide(); !ok || side != SideBuy {
		t.Errorf("unexpected buy order side: [%v] [%v]", side, ok)
	}

	if side, ok := SignalSell.OrderSide(); !ok || side != SideSell {
		t.Errorf("unexpected sell order side: [%v] [%v]", side, ok)
	}

	if _, ok := SignalNone.OrderSide(); ok {
		t.Errorf("none signal must not map to an order side")
	}
}
