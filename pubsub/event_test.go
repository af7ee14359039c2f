package pubsub

import (
	"encoding/json"
	"testing"

	"github.com/lukasz-zimnoch/trading"
)

func TestMarshalTradeEvent(t *testing.T) {
	event := &trading.Event{
		Subject: "BUY ADA/USDT executed",
		Payload: "Trade has been executed",
	}

	data, err := marshalTradeEvent(event)
	if err != nil {
		t.Fatal(err)
	}

	var actual map[string]string
	if err := json.Unmarshal(data, &actual); err != nil {
		t.Fatal(err)
	}

	if actual["Subject"] != event.Subject {
		t.Errorf(
			"unexpected subject\nexpected: %v\nactual:   %v",
			event.Subject,
			actual["Subject"],
		)
	}

	if actual["Payload"] != event.Payload {
		t.Errorf(
			"unexpected payload\nexpected: %v\nactual:   %v",
			event.Payload,
			actual["Payload"],
		)
	}
}
