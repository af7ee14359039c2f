package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/lukasz-zimnoch/trading"
	"github.com/shopspring/decimal"
)

// Candles returns up to count completed candles, newest last. Binance always
// appends the still forming kline, so one extra kline is requested and every
// kline closing in the future is dropped.
func (es *ExchangeService) Candles(
	ctx context.Context,
	pair trading.Pair,
	interval trading.CandleInterval,
	count int,
) ([]*trading.Candle, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	klines, err := es.client.
		NewKlinesService().
		Symbol(pair.Symbol()).
		Interval(interval.String()).
		Limit(count + 1).
		Do(requestCtx)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: could not get klines: [%v]",
			trading.ErrDataUnavailable,
			err,
		)
	}

	now := time.Now()

	candles := make([]*trading.Candle, 0, len(klines))
	for _, kline := range klines {
		closeTime := parseMilliseconds(kline.CloseTime)
		if closeTime.After(now) {
			continue
		}

		prices, err := parseDecimals(
			kline.Open,
			kline.Close,
			kline.High,
			kline.Low,
			kline.Volume,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"%w: could not parse kline [%v]: [%v]",
				trading.ErrDataUnavailable,
				kline.OpenTime,
				err,
			)
		}

		candles = append(candles, &trading.Candle{
			OpenTime:   parseMilliseconds(kline.OpenTime),
			CloseTime:  closeTime,
			OpenPrice:  prices[0],
			ClosePrice: prices[1],
			MaxPrice:   prices[2],
			MinPrice:   prices[3],
			Volume:     prices[4],
			TradeCount: uint(kline.TradeNum),
		})
	}

	if len(candles) > count {
		candles = candles[len(candles)-count:]
	}

	return candles, nil
}

func (es *ExchangeService) TickerPrice(
	ctx context.Context,
	pair trading.Pair,
) (decimal.Decimal, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	prices, err := es.client.
		NewListPricesService().
		Symbol(pair.Symbol()).
		Do(requestCtx)
	if err != nil {
		return decimal.Zero, fmt.Errorf(
			"%w: could not get ticker price: [%v]",
			trading.ErrDataUnavailable,
			err,
		)
	}

	for _, price := range prices {
		if price.Symbol != pair.Symbol() {
			continue
		}

		value, err := decimal.NewFromString(price.Price)
		if err != nil {
			return decimal.Zero, fmt.Errorf(
				"%w: could not parse ticker price [%v]: [%v]",
				trading.ErrDataUnavailable,
				price.Price,
				err,
			)
		}

		return value, nil
	}

	return decimal.Zero, fmt.Errorf(
		"%w: no ticker price for symbol [%v]",
		trading.ErrDataUnavailable,
		pair.Symbol(),
	)
}

func parseDecimals(values ...string) ([]decimal.Decimal, error) {
	decimals := make([]decimal.Decimal, len(values))

	for index, value := range values {
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return nil, err
		}

		decimals[index] = parsed
	}

	return decimals, nil
}
