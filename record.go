package trading

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TradeStatus int

const (
	// TradeSkipped means the cycle ended without an order.
	TradeSkipped TradeStatus = iota
	TradeExecuted
	TradeFailed
)

func ParseTradeStatus(value string) (TradeStatus, error) {
	switch value {
	case "SKIPPED":
		return TradeSkipped, nil
	case "EXECUTED":
		return TradeExecuted, nil
	case "FAILED":
		return TradeFailed, nil
	}

	return -1, fmt.Errorf("unknown trade status: [%v]", value)
}

func (ts TradeStatus) String() string {
	switch ts {
	case TradeSkipped:
		return "SKIPPED"
	case TradeExecuted:
		return "EXECUTED"
	case TradeFailed:
		return "FAILED"
	default:
		panic("unknown trade status")
	}
}

// TradeRecord summarizes one trading cycle. Every cycle produces exactly one
// record, whether it traded, found no signal or failed.
type TradeRecord struct {
	ID             ID
	Time           time.Time
	Pair           Pair
	Environment    Environment
	Side           SignalType
	Status         TradeStatus
	Quantity       decimal.Decimal
	Price          decimal.Decimal
	Fee            decimal.Decimal
	PortfolioValue decimal.NullDecimal
	Balances       Balances
	StaleBalances  bool
	Note           string
}

func (tr *TradeRecord) String() string {
	summary := fmt.Sprintf(
		"%v %v %v: quantity %v at price %v, fee %v, portfolio %v",
		tr.Status,
		tr.Side,
		tr.Pair,
		tr.Quantity,
		tr.Price,
		tr.Fee,
		formatPortfolioValue(tr.PortfolioValue, -1),
	)

	if tr.StaleBalances {
		summary += " (stale balances)"
	}

	if len(tr.Note) > 0 {
		summary += fmt.Sprintf(" - %v", tr.Note)
	}

	return summary
}

// formatPortfolioValue prints all digits for negative places.
func formatPortfolioValue(value decimal.NullDecimal, places int32) string {
	if !value.Valid {
		return "unknown"
	}

	if places < 0 {
		return value.Decimal.String()
	}

	return value.Decimal.StringFixed(places)
}

// TradeRecordRepository is the append-only trade log. Records are never
// read back by the trader.
type TradeRecordRepository interface {
	CreateTradeRecord(record *TradeRecord) error
}
