package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type SignalType int

const (
	SignalNone SignalType = iota
	SignalBuy
	SignalSell
)

func ParseSignalType(value string) (SignalType, error) {
	switch value {
	case "NONE":
		return SignalNone, nil
	case "BUY":
		return SignalBuy, nil
	case "SELL":
		return SignalSell, nil
	}

	return -1, fmt.Errorf("unknown signal type: [%v]", value)
}

func (st SignalType) String() string {
	switch st {
	case SignalNone:
		return "NONE"
	case SignalBuy:
		return "BUY"
	case SignalSell:
		return "SELL"
	default:
		panic("unknown signal type")
	}
}

// OrderSide maps the signal to the side of the order it asks for. NONE has
// no order side.
func (st SignalType) OrderSide() (OrderSide, bool) {
	switch st {
	case SignalBuy:
		return SideBuy, true
	case SignalSell:
		return SideSell, true
	default:
		return 0, false
	}
}

// PriceSnapshot is everything the strategy needs to decide within one cycle.
type PriceSnapshot struct {
	PreviousClose decimal.Decimal
	MovingAverage decimal.Decimal
	CurrentPrice  decimal.Decimal
}

func (ps *PriceSnapshot) String() string {
	return fmt.Sprintf(
		"previous close: %v, moving average: %v, price: %v",
		ps.PreviousClose,
		ps.MovingAverage,
		ps.CurrentPrice,
	)
}

type Signal struct {
	Type     SignalType
	Price    decimal.Decimal
	Snapshot *PriceSnapshot
}

func (s *Signal) String() string {
	return fmt.Sprintf("%v at %v", s.Type, s.Price)
}

type SignalGenerator interface {
	Evaluate(ctx context.Context, pair Pair) (*Signal, error)
}

// Decide applies the crossover rule. The previous close must lie on the
// other side of the moving average than the current price, so a price that
// merely stays above or below the average yields NONE.
func Decide(snapshot *PriceSnapshot) SignalType {
	price := snapshot.CurrentPrice
	average := snapshot.MovingAverage
	previous := snapshot.PreviousClose

	switch {
	case price.GreaterThan(average) && previous.LessThan(average):
		return SignalBuy
	case price.LessThan(average) && previous.GreaterThan(average):
		return SignalSell
	default:
		return SignalNone
	}
}
