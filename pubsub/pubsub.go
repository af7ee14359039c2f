package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
)

type Client struct {
	client      *pubsub.Client
	tradesTopic *pubsub.Topic
}

func NewClient(
	ctx context.Context,
	projectID,
	tradesTopicID string,
) (*Client, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not create pubsub client: [%v]", err)
	}

	return &Client{
		client:      client,
		tradesTopic: client.Topic(tradesTopicID),
	}, nil
}

// Close flushes pending messages and releases the client.
func (c *Client) Close() error {
	c.tradesTopic.Stop()
	return c.client.Close()
}
