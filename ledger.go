package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Balances holds the free amounts of the base and the quote asset of the
// traded pair. Both amounts stay non-negative.
type Balances struct {
	Base  decimal.Decimal
	Quote decimal.Decimal
}

// PortfolioValue is the worth of both balances expressed in the quote asset.
func (b Balances) PortfolioValue(price decimal.Decimal) decimal.Decimal {
	return b.Base.Mul(price).Add(b.Quote)
}

func (b Balances) String() string {
	return fmt.Sprintf("base: %v, quote: %v", b.Base, b.Quote)
}

type Fees struct {
	Maker decimal.Decimal
	Taker decimal.Decimal
}

// FeeRateFromCommission converts an exchange commission expressed in basis
// points (e.g. 10 means 0.1%) into a fee rate.
func FeeRateFromCommission(commission int64) decimal.Decimal {
	return decimal.NewFromInt(commission).Div(feeRateBase)
}

// Ledger tracks balances of a single pair. Implementations are not safe for
// concurrent use; the trader serializes access by running one cycle at a
// time.
type Ledger interface {
	// Refresh re-reads the balances from their authoritative source. On
	// failure the last known balances stay in place and Stale reports true.
	Refresh(ctx context.Context) error

	// Apply accounts for a filled order. It is a no-op for ledgers whose
	// authoritative state lives on the exchange.
	Apply(fill *OrderFill) error

	Balances() Balances

	Fees() Fees

	Stale() bool
}

// ExchangeLedger mirrors the account balances held on the exchange. It backs
// both the sandbox and the live environment.
type ExchangeLedger struct {
	pair     Pair
	account  ExchangeAccountService
	balances Balances
	fees     Fees
	stale    bool
}

func NewExchangeLedger(pair Pair, account ExchangeAccountService) *ExchangeLedger {
	return &ExchangeLedger{
		pair:    pair,
		account: account,
		// Nothing has been read yet.
		stale: true,
	}
}

func (el *ExchangeLedger) Refresh(ctx context.Context) error {
	snapshot, err := el.account.AccountBalances(ctx, el.pair)
	if err != nil {
		el.stale = true
		return accountUnavailable(err)
	}

	el.balances = snapshot.Balances
	el.fees = snapshot.Fees
	el.stale = false

	return nil
}

func (el *ExchangeLedger) Apply(*OrderFill) error {
	return nil
}

func (el *ExchangeLedger) Balances() Balances {
	return el.balances
}

func (el *ExchangeLedger) Fees() Fees {
	return el.fees
}

func (el *ExchangeLedger) Stale() bool {
	return el.stale
}

func accountUnavailable(err error) error {
	return fmt.Errorf(
		"%w: could not refresh account balances: [%w]",
		ErrAccountUnavailable,
		err,
	)
}
