package trading

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
)

var testPair = Pair{Base: "ADA", Quote: "USDT"}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	result, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatal(err)
	}

	return result
}

func decs(t *testing.T, values ...string) []decimal.Decimal {
	t.Helper()

	result := make([]decimal.Decimal, len(values))
	for index, value := range values {
		result[index] = dec(t, value)
	}

	return result
}

func assertDecimalEqual(
	t *testing.T,
	name string,
	expected decimal.Decimal,
	actual decimal.Decimal,
) {
	t.Helper()

	if !expected.Equal(actual) {
		t.Errorf(
			"unexpected %v\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			name,
			expected,
			actual,
		)
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

func (l nopLogger) WithField(string, interface{}) Logger {
	return l
}

func (l nopLogger) WithFields(map[string]interface{}) Logger {
	return l
}

type sequenceID string

func (s sequenceID) String() string {
	return string(s)
}

type sequenceIDService struct {
	next atomic.Int64
}

func (s *sequenceIDService) NewID() ID {
	return sequenceID(strconv.FormatInt(s.next.Add(1), 10))
}

func (s *sequenceIDService) NewIDFromString(id string) (ID, error) {
	return sequenceID(id), nil
}

// fakeCandleService serves the tail of a fixed close price series.
type fakeCandleService struct {
	closes    []decimal.Decimal
	ticker    decimal.Decimal
	candleErr error
	tickerErr error

	requested []int
}

func (fcs *fakeCandleService) Candles(
	ctx context.Context,
	pair Pair,
	interval CandleInterval,
	count int,
) ([]*Candle, error) {
	fcs.requested = append(fcs.requested, count)

	if fcs.candleErr != nil {
		return nil, fcs.candleErr
	}

	closes := fcs.closes
	if len(closes) > count {
		closes = closes[len(closes)-count:]
	}

	candles := make([]*Candle, len(closes))
	for index, closePrice := range closes {
		candles[index] = &Candle{ClosePrice: closePrice}
	}

	return candles, nil
}

func (fcs *fakeCandleService) TickerPrice(
	ctx context.Context,
	pair Pair,
) (decimal.Decimal, error) {
	if fcs.tickerErr != nil {
		return decimal.Zero, fcs.tickerErr
	}

	return fcs.ticker, nil
}

type fakeAccountService struct {
	snapshot *AccountSnapshot
	err      error
	calls    int
}

func (fas *fakeAccountService) AccountBalances(
	ctx context.Context,
	pair Pair,
) (*AccountSnapshot, error) {
	fas.calls++

	if fas.err != nil {
		return nil, fas.err
	}

	return fas.snapshot, nil
}

var errTransport = errors.New("connection reset by peer")
