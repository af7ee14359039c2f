package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

const (
	EnvMailHost      = "MAIL_HOST"
	EnvMailPort      = "MAIL_PORT"
	EnvMailUsername  = "MAIL_USERNAME"
	EnvMailPassword  = "MAIL_PASSWORD"
	EnvMailRecipient = "MAIL_RECIPIENT"
)

const (
	DefaultMailHost = "smtp.gmail.com"
	DefaultMailPort = "587"
)

var (
	mailService     *MailService
	mailServiceOnce sync.Once
	mailServiceErr  error
)

type PubSubMessage struct {
	Data []byte `json:"data"`
}

// TradeEvent is the message published by the trading agent on the trades
// topic.
type TradeEvent struct {
	Subject string
	Payload string
}

// ProcessEvent is the Cloud Function entry point triggered by the trades
// topic. It mails every trade event to the configured recipient.
func ProcessEvent(ctx context.Context, message PubSubMessage) error {
	service, err := initializeMailService()
	if err != nil {
		return fmt.Errorf("could not initialize mail service: [%v]", err)
	}

	event, err := parseEvent(message)
	if err != nil {
		return err
	}

	err = service.Send(event)
	if err != nil {
		return fmt.Errorf("mail service error: [%v]", err)
	}

	return nil
}

func parseEvent(message PubSubMessage) (*TradeEvent, error) {
	var event TradeEvent

	err := json.Unmarshal(message.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal pubsub message: [%v]", err)
	}

	if len(event.Subject) == 0 {
		return nil, fmt.Errorf("trade event has no subject")
	}

	return &event, nil
}

func initializeMailService() (*MailService, error) {
	mailServiceOnce.Do(func() {
		config, err := mailConfigFromEnv()
		if err != nil {
			mailServiceErr = err
			return
		}

		fmt.Println("initializing mail service instance")

		mailService = NewMailService(config)
	})

	return mailService, mailServiceErr
}

func mailConfigFromEnv() (*MailConfig, error) {
	port, err := strconv.Atoi(getEnvOrDefault(EnvMailPort, DefaultMailPort))
	if err != nil {
		return nil, fmt.Errorf("could not get port number: [%v]", err)
	}

	config := &MailConfig{
		Host:      getEnvOrDefault(EnvMailHost, DefaultMailHost),
		Port:      port,
		Username:  os.Getenv(EnvMailUsername),
		Password:  os.Getenv(EnvMailPassword),
		Recipient: os.Getenv(EnvMailRecipient),
	}

	for name, value := range map[string]string{
		EnvMailUsername:  config.Username,
		EnvMailPassword:  config.Password,
		EnvMailRecipient: config.Recipient,
	} {
		if len(value) == 0 {
			return nil, fmt.Errorf("%v must be set", name)
		}
	}

	return config, nil
}

func getEnvOrDefault(envName, defaultValue string) string {
	if envValue := os.Getenv(envName); len(envValue) > 0 {
		return envValue
	}

	return defaultValue
}
