package inmem

import (
	"context"
	"fmt"

	"github.com/lukasz-zimnoch/trading"
	"github.com/shopspring/decimal"
)

// Defaults of a fresh simulated account.
var (
	DefaultQuoteBalance = decimal.NewFromInt(100000)
	DefaultFeeRate      = decimal.NewFromFloat(0.001)
)

// SimulatedLedger is the authoritative in-memory ledger of the simulated
// environment. Fills are accounted with the taker fee deducted: a buy costs
// quantity * price * (1 + fee), a sell yields quantity * price * (1 - fee).
type SimulatedLedger struct {
	balances trading.Balances
	fees     trading.Fees
}

func NewSimulatedLedger(
	balances trading.Balances,
	fees trading.Fees,
) (*SimulatedLedger, error) {
	if balances.Base.IsNegative() || balances.Quote.IsNegative() {
		return nil, fmt.Errorf(
			"%w: initial balances must not be negative: [%v]",
			trading.ErrConfiguration,
			balances,
		)
	}

	if fees.Maker.IsNegative() || fees.Taker.IsNegative() {
		return nil, fmt.Errorf(
			"%w: fee rates must not be negative",
			trading.ErrConfiguration,
		)
	}

	return &SimulatedLedger{balances: balances, fees: fees}, nil
}

func NewDefaultSimulatedLedger() *SimulatedLedger {
	return &SimulatedLedger{
		balances: trading.Balances{
			Base:  decimal.Zero,
			Quote: DefaultQuoteBalance,
		},
		fees: trading.Fees{
			Maker: DefaultFeeRate,
			Taker: DefaultFeeRate,
		},
	}
}

// Refresh is a no-op; the ledger itself is the source of truth.
func (sl *SimulatedLedger) Refresh(context.Context) error {
	return nil
}

// Apply leaves the balances untouched if the fill would make any of them
// negative.
func (sl *SimulatedLedger) Apply(fill *trading.OrderFill) error {
	balances, err := sl.applied(fill)
	if err != nil {
		return err
	}

	sl.balances = balances

	return nil
}

func (sl *SimulatedLedger) applied(
	fill *trading.OrderFill,
) (trading.Balances, error) {
	if fill.Quantity.IsNegative() || fill.Price.IsNegative() {
		return trading.Balances{}, fmt.Errorf(
			"invalid fill: quantity [%v], price [%v]",
			fill.Quantity,
			fill.Price,
		)
	}

	total := fill.Quantity.Mul(fill.Price)
	balances := sl.balances

	switch fill.Side {
	case trading.SideBuy:
		cost := total.Mul(decimal.NewFromInt(1).Add(sl.fees.Taker))
		balances.Base = balances.Base.Add(fill.Quantity)
		balances.Quote = balances.Quote.Sub(cost)
	case trading.SideSell:
		proceeds := total.Mul(decimal.NewFromInt(1).Sub(sl.fees.Taker))
		balances.Base = balances.Base.Sub(fill.Quantity)
		balances.Quote = balances.Quote.Add(proceeds)
	default:
		return trading.Balances{}, fmt.Errorf("unknown order side: [%v]", fill.Side)
	}

	if balances.Base.IsNegative() || balances.Quote.IsNegative() {
		return trading.Balances{}, fmt.Errorf(
			"%w: %v of [%v] at [%v] with balances [%v]",
			trading.ErrInsufficientBalance,
			fill.Side,
			fill.Quantity,
			fill.Price,
			sl.balances,
		)
	}

	return balances, nil
}

func (sl *SimulatedLedger) Balances() trading.Balances {
	return sl.balances
}

func (sl *SimulatedLedger) Fees() trading.Fees {
	return sl.fees
}

func (sl *SimulatedLedger) Stale() bool {
	return false
}
