package trading

import (
	"fmt"
)

type Event struct {
	Subject string
	Payload string
}

func NewTradeExecutedEvent(record *TradeRecord) *Event {
	return &Event{
		Subject: fmt.Sprintf("%v %v executed", record.Side, record.Pair),
		Payload: fmt.Sprintf(
			"Trade has been executed:\n"+
				"- ID: %v\n"+
				"- Environment: %v\n"+
				"- Pair: %v\n"+
				"- Side: %v\n"+
				"- Quantity: %v\n"+
				"- Price: %v\n"+
				"- Fee: %v\n"+
				"- Portfolio value: %v",
			record.ID.String(),
			record.Environment,
			record.Pair,
			record.Side,
			record.Quantity.String(),
			record.Price.String(),
			record.Fee.StringFixed(8),
			formatPortfolioValue(record.PortfolioValue, 2),
		),
	}
}

func NewTradeFailedEvent(record *TradeRecord) *Event {
	return &Event{
		Subject: fmt.Sprintf("%v %v failed", record.Side, record.Pair),
		Payload: fmt.Sprintf(
			"Trade has failed:\n"+
				"- ID: %v\n"+
				"- Environment: %v\n"+
				"- Pair: %v\n"+
				"- Reason: %v",
			record.ID.String(),
			record.Environment,
			record.Pair,
			record.Note,
		),
	}
}

type EventService interface {
	Publish(event *Event)
}
