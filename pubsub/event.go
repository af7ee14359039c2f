package pubsub

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/pubsub"
	"github.com/lukasz-zimnoch/trading"
)

type EventService struct {
	client *Client
	logger trading.Logger
}

func NewEventService(client *Client, logger trading.Logger) *EventService {
	return &EventService{client, logger}
}

func (es *EventService) Publish(event *trading.Event) {
	es.publishOnTradesTopic(context.TODO(), event)
}

func (es *EventService) publishOnTradesTopic(
	ctx context.Context,
	event *trading.Event,
) {
	topicLogger := es.logger.WithField("topic", "trades")

	messageData, err := marshalTradeEvent(event)
	if err != nil {
		topicLogger.Errorf("could not marshal trading event: [%v]", err)
		return
	}

	es.publishOnTopic(
		ctx,
		es.client.tradesTopic,
		messageData,
		topicLogger,
	)
}

func (es *EventService) publishOnTopic(
	ctx context.Context,
	topic *pubsub.Topic,
	messageData []byte,
	topicLogger trading.Logger,
) {
	result := topic.Publish(ctx, &pubsub.Message{
		Data: messageData,
	})

	go func() {
		id, err := result.Get(ctx)
		if err != nil {
			topicLogger.Errorf(
				"could not publish trading event: [%v]",
				err,
			)
			return
		}

		topicLogger.Infof("published trading event with ID: [%v]", id)
	}()
}

type tradeEvent struct {
	Subject string
	Payload string
}

func marshalTradeEvent(event *trading.Event) ([]byte, error) {
	return json.Marshal(&tradeEvent{
		Subject: event.Subject,
		Payload: event.Payload,
	})
}
