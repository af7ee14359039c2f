package notification

import (
	"fmt"

	"gopkg.in/mail.v2"
)

const subjectPrefix = "[trading] "

type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

type MailService struct {
	config *MailConfig
}

func NewMailService(config *MailConfig) *MailService {
	return &MailService{config}
}

func (ms *MailService) Send(event *TradeEvent) error {
	dialer := mail.NewDialer(
		ms.config.Host,
		ms.config.Port,
		ms.config.Username,
		ms.config.Password,
	)

	if err := dialer.DialAndSend(ms.message(event)); err != nil {
		return fmt.Errorf("could not send email: [%v]", err)
	}

	return nil
}

func (ms *MailService) message(event *TradeEvent) *mail.Message {
	message := mail.NewMessage()
	message.SetHeader("From", ms.config.Username)
	message.SetHeader("To", ms.config.Recipient)
	message.SetHeader("Subject", subjectPrefix+event.Subject)
	message.SetBody("text/plain", event.Payload)

	return message
}
