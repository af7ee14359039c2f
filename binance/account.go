package binance

import (
	"context"
	"fmt"

	"github.com/lukasz-zimnoch/trading"
	"github.com/shopspring/decimal"
)

// AccountBalances reads the free balances of both pair assets together with
// the account commission rates. An asset missing from the account counts as
// a zero balance.
func (es *ExchangeService) AccountBalances(
	ctx context.Context,
	pair trading.Pair,
) (*trading.AccountSnapshot, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	account, err := es.client.NewGetAccountService().Do(requestCtx)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: could not get account: [%v]",
			trading.ErrAccountUnavailable,
			err,
		)
	}

	balances := trading.Balances{Base: decimal.Zero, Quote: decimal.Zero}

	for _, balance := range account.Balances {
		asset := trading.Asset(balance.Asset)
		if asset != pair.Base && asset != pair.Quote {
			continue
		}

		amount, err := decimal.NewFromString(balance.Free)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: could not parse balance for asset [%v]: [%v]",
				trading.ErrAccountUnavailable,
				balance.Asset,
				err,
			)
		}

		if asset == pair.Base {
			balances.Base = amount
		} else {
			balances.Quote = amount
		}
	}

	return &trading.AccountSnapshot{
		Balances: balances,
		Fees: trading.Fees{
			Maker: trading.FeeRateFromCommission(account.MakerCommission),
			Taker: trading.FeeRateFromCommission(account.TakerCommission),
		},
	}, nil
}
