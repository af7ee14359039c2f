package trading

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CandleInterval string

const (
	Interval1m  CandleInterval = "1m"
	Interval3m  CandleInterval = "3m"
	Interval5m  CandleInterval = "5m"
	Interval15m CandleInterval = "15m"
	Interval30m CandleInterval = "30m"
	Interval1h  CandleInterval = "1h"
	Interval2h  CandleInterval = "2h"
	Interval4h  CandleInterval = "4h"
	Interval6h  CandleInterval = "6h"
	Interval8h  CandleInterval = "8h"
	Interval12h CandleInterval = "12h"
	Interval1d  CandleInterval = "1d"
	Interval3d  CandleInterval = "3d"
	Interval1w  CandleInterval = "1w"
	Interval1M  CandleInterval = "1M"
)

var supportedIntervals = []CandleInterval{
	Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
	Interval1h, Interval2h, Interval4h, Interval6h, Interval8h, Interval12h,
	Interval1d, Interval3d, Interval1w, Interval1M,
}

func ParseCandleInterval(value string) (CandleInterval, error) {
	for _, interval := range supportedIntervals {
		if string(interval) == value {
			return interval, nil
		}
	}

	return "", fmt.Errorf("unsupported candle interval: [%v]", value)
}

func (ci CandleInterval) String() string {
	return string(ci)
}

// Candle is a completed price bar. Only ClosePrice takes part in the moving
// average computation.
type Candle struct {
	OpenTime   time.Time
	CloseTime  time.Time
	OpenPrice  decimal.Decimal
	ClosePrice decimal.Decimal
	MaxPrice   decimal.Decimal
	MinPrice   decimal.Decimal
	Volume     decimal.Decimal
	TradeCount uint
}

func (c *Candle) String() string {
	return fmt.Sprintf(
		"time: %v, price: %v",
		c.OpenTime.Format(time.RFC3339),
		c.ClosePrice,
	)
}

// ClosePrices extracts the close prices preserving the candles order.
func ClosePrices(candles []*Candle) []decimal.Decimal {
	closes := make([]decimal.Decimal, len(candles))
	for index, candle := range candles {
		closes[index] = candle.ClosePrice
	}

	return closes
}
