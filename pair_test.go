package trading

import (
	"errors"
	"testing"
)

func TestParsePair(t *testing.T) {
	tests := map[string]Pair{
		"ADA/USDT": {Base: "ADA", Quote: "USDT"},
		"ada/usdt": {Base: "ADA", Quote: "USDT"},
		"ADAUSDT":  {Base: "ADA", Quote: "USDT"},
		"ETHBTC":   {Base: "ETH", Quote: "BTC"},
		"BNBBUSD":  {Base: "BNB", Quote: "BUSD"},
	}

	for value, expected := range tests {
		actual, err := ParsePair(value)
		if err != nil {
			t.Errorf("could not parse pair [%v]: [%v]", value, err)
			continue
		}

		if actual != expected {
			t.Errorf(
				"unexpected pair\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				expected,
				actual,
			)
		}

		if actual.Symbol() != string(expected.Base+expected.Quote) {
			t.Errorf("unexpected symbol [%v]", actual.Symbol())
		}
	}
}

func TestParsePair_Invalid(t *testing.T) {
	for _, value := range []string{"", "ADA", "/USDT", "ADA/", "USDT"} {
		if _, err := ParsePair(value); err == nil {
			t.Errorf("expected error for pair [%v]", value)
		}
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := map[string]Environment{
		"SIMULATED": EnvironmentSimulated,
		"sandbox":   EnvironmentSandbox,
		"TEST":      EnvironmentSandbox,
		"live":      EnvironmentLive,
	}

	for value, expected := range tests {
		actual, err := ParseEnvironment(value)
		if err != nil {
			t.Fatal(err)
		}

		if actual != expected {
			t.Errorf(
				"unexpected environment\n"+
					"expected: [%v]\n"+
					"actual:   [%v]",
				expected,
				actual,
			)
		}
	}

	if _, err := ParseEnvironment("STAGING"); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error, got [%v]", err)
	}
}

func TestParseCandleInterval(t *testing.T) {
	for _, value := range []string{"1m", "15m", "1h", "4h", "1d", "1w", "1M"} {
		interval, err := ParseCandleInterval(value)
		if err != nil {
			t.Errorf("could not parse interval [%v]: [%v]", value, err)
		}

		if interval.String() != value {
			t.Errorf("unexpected interval [%v]", interval)
		}
	}

	if _, err := ParseCandleInterval("7m"); err == nil {
		t.Errorf("expected error for unsupported interval")
	}
}
