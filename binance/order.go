package binance

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance"
	"github.com/adshao/go-binance/common"
	"github.com/lukasz-zimnoch/trading"
)

// ExecuteOrder places a GTC limit order (or a market order) and reports it
// as filled at the requested price. Partial fills are not tracked.
func (es *ExchangeService) ExecuteOrder(
	ctx context.Context,
	order *trading.Order,
) (*trading.OrderFill, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	symbol := order.Pair.Symbol()
	symbolInfo, ok := es.findSymbolInfo(symbol)
	if !ok {
		return nil, trading.NewOrderRejectedError(
			fmt.Sprintf("could not find info for symbol [%v]", symbol),
			nil,
		)
	}

	service := es.client.NewCreateOrderService().
		Symbol(symbol).
		Side(sideType(order.Side)).
		NewClientOrderID(order.ID.String()).
		Quantity(order.Quantity.StringFixed(int32(symbolInfo.BaseAssetPrecision)))

	switch order.Type {
	case trading.OrderTypeMarket:
		service = service.Type(binance.OrderTypeMarket)
	default:
		service = service.
			Type(binance.OrderTypeLimit).
			TimeInForce(binance.TimeInForceTypeGTC).
			Price(order.Price.StringFixed(int32(symbolInfo.QuotePrecision)))
	}

	response, err := service.Do(requestCtx)
	if err != nil {
		return nil, rejection(err)
	}

	return &trading.OrderFill{
		OrderID:         order.ID,
		ExchangeOrderID: strconv.FormatInt(response.OrderID, 10),
		Side:            order.Side,
		Price:           order.Price,
		Quantity:        order.Quantity,
		Status:          string(response.Status),
		Time:            parseMilliseconds(response.TransactTime),
	}, nil
}

// CancelOpenOrders cancels every open order of the pair one by one and
// returns how many have been cancelled before the first failure.
func (es *ExchangeService) CancelOpenOrders(
	ctx context.Context,
	pair trading.Pair,
) (int, error) {
	requestCtx, cancelRequestCtx := context.WithTimeout(ctx, requestTimeout)
	defer cancelRequestCtx()

	symbol := pair.Symbol()

	openOrders, err := es.client.NewListOpenOrdersService().
		Symbol(symbol).
		Do(requestCtx)
	if err != nil {
		return 0, rejection(err)
	}

	cancelled := 0

	for _, openOrder := range openOrders {
		_, err := es.client.NewCancelOrderService().
			Symbol(symbol).
			OrderID(openOrder.OrderID).
			Do(requestCtx)
		if err != nil {
			return cancelled, rejection(err)
		}

		cancelled++
	}

	return cancelled, nil
}

func sideType(side trading.OrderSide) binance.SideType {
	if side == trading.SideSell {
		return binance.SideTypeSell
	}

	return binance.SideTypeBuy
}

func rejection(err error) error {
	if common.IsAPIError(err) {
		apiErr := err.(*common.APIError)
		return trading.NewOrderRejectedError(
			fmt.Sprintf("code [%v]: %v", apiErr.Code, apiErr.Message),
			err,
		)
	}

	return trading.NewOrderRejectedError("request failed", err)
}
