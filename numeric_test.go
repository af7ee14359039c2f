package trading

import "testing"

func TestFloorToDecimals(t *testing.T) {
	tests := []struct {
		value    string
		places   int32
		expected string
	}{
		{"1.23456789", 4, "1.2345"},
		{"1.99999", 4, "1.9999"},
		{"908.182727", 5, "908.18272"},
		{"5", 5, "5"},
		{"0.000009", 5, "0"},
		{"-1.23456", 4, "-1.2346"},
	}

	for _, test := range tests {
		actual := FloorToDecimals(dec(t, test.value), test.places)
		assertDecimalEqual(t, "floored "+test.value, dec(t, test.expected), actual)
	}
}

func TestFloorQuo(t *testing.T) {
	tests := []struct {
		dividend string
		divisor  string
		places   int32
		expected string
	}{
		{"1000", "1.1011", 5, "908.18272"},
		{"2", "3", 4, "0.6666"},
		{"3.17", "3", 4, "1.0566"},
		{"10", "4", 4, "2.5"},
		{"-2", "3", 4, "-0.6667"},
	}

	for _, test := range tests {
		actual := FloorQuo(dec(t, test.dividend), dec(t, test.divisor), test.places)
		assertDecimalEqual(
			t,
			test.dividend+"/"+test.divisor,
			dec(t, test.expected),
			actual,
		)
	}
}

func TestFeeRateFromCommission(t *testing.T) {
	assertDecimalEqual(t, "fee rate", dec(t, "0.001"), FeeRateFromCommission(10))
	assertDecimalEqual(t, "fee rate", dec(t, "0.0015"), FeeRateFromCommission(15))
}
