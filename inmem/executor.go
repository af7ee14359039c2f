package inmem

import (
	"context"
	"time"

	"github.com/lukasz-zimnoch/trading"
)

// PaperExecutor fills every order immediately at its requested price without
// contacting any exchange.
type PaperExecutor struct {
	logger trading.Logger
}

func NewPaperExecutor(logger trading.Logger) *PaperExecutor {
	return &PaperExecutor{logger}
}

func (pe *PaperExecutor) ExecuteOrder(
	ctx context.Context,
	order *trading.Order,
) (*trading.OrderFill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pe.logger.Debugf("filling paper order [%v]", order)

	return &trading.OrderFill{
		OrderID:  order.ID,
		Side:     order.Side,
		Price:    order.Price,
		Quantity: order.Quantity,
		Status:   "FILLED",
		Time:     time.Now(),
	}, nil
}
