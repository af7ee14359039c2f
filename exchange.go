package trading

import (
	"context"

	"github.com/shopspring/decimal"
)

type ExchangeService interface {
	ExchangeCandleService
	ExchangeAccountService
	ExchangeOrderService

	ExchangeName() string
}

// ExchangeCandleService is the price series gateway. Both methods fail with
// ErrDataUnavailable on transport or rate limit errors.
type ExchangeCandleService interface {
	// Candles returns up to count most recent completed candles, newest last.
	Candles(
		ctx context.Context,
		pair Pair,
		interval CandleInterval,
		count int,
	) ([]*Candle, error)

	TickerPrice(ctx context.Context, pair Pair) (decimal.Decimal, error)
}

type AccountSnapshot struct {
	Balances Balances
	Fees     Fees
}

type ExchangeAccountService interface {
	// AccountBalances fails with ErrAccountUnavailable.
	AccountBalances(ctx context.Context, pair Pair) (*AccountSnapshot, error)
}

type ExchangeOrderService interface {
	OrderExecutor

	// CancelOpenOrders returns the number of cancelled orders. Fails with
	// ErrOrderRejected.
	CancelOpenOrders(ctx context.Context, pair Pair) (int, error)
}

// OrderExecutor submits an order and returns the fill confirmation. Fails
// with ErrOrderRejected.
type OrderExecutor interface {
	ExecuteOrder(ctx context.Context, order *Order) (*OrderFill, error)
}
