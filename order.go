package trading

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide int

const (
	SideBuy OrderSide = iota
	SideSell
)

func ParseOrderSide(value string) (OrderSide, error) {
	switch value {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	}

	return -1, fmt.Errorf("unknown order side: [%v]", value)
}

func (os OrderSide) String() string {
	switch os {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		panic("unknown order side")
	}
}

type OrderType int

const (
	OrderTypeLimit OrderType = iota
	OrderTypeMarket
)

func (ot OrderType) String() string {
	switch ot {
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeMarket:
		return "MARKET"
	default:
		panic("unknown order type")
	}
}

type Order struct {
	ID       ID
	Pair     Pair
	Side     OrderSide
	Type     OrderType
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Time     time.Time
}

func (o *Order) String() string {
	return fmt.Sprintf(
		"%v %v %v %v at %v",
		o.Type,
		o.Side,
		o.Quantity,
		o.Pair,
		o.Price,
	)
}

// OrderFill confirms an order. Orders are assumed to fill completely at the
// requested price.
type OrderFill struct {
	OrderID         ID
	ExchangeOrderID string
	Side            OrderSide
	Price           decimal.Decimal
	Quantity        decimal.Decimal
	Status          string
	Time            time.Time
}

type OrderFactory struct {
	idService IDService
}

func NewOrderFactory(idService IDService) *OrderFactory {
	return &OrderFactory{idService}
}

func (of *OrderFactory) CreateLimitOrder(
	pair Pair,
	side OrderSide,
	quantity decimal.Decimal,
	price decimal.Decimal,
) *Order {
	return &Order{
		ID:       of.idService.NewID(),
		Pair:     pair,
		Side:     side,
		Type:     OrderTypeLimit,
		Price:    price,
		Quantity: quantity,
		Time:     time.Now(),
	}
}
