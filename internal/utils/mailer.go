package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Mailer dispatches outbound mail. Controllers depend on this interface so
// tests can swap in a recording fake.
type Mailer interface {
	Send(recipient, subject, body string) error
}

type MailConfig struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	Sender   string
}

func LoadMailConfig() MailConfig {
	port, err := strconv.Atoi(GetEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return MailConfig{
		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   os.Getenv("SMTP_SENDER"),
	}
}

type smtpMailer struct {
	config MailConfig
}

func NewSMTPMailer(config MailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) Send(recipient, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.config.SMTPHost,
		mail.WithPort(m.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Username),
		mail.WithPassword(m.config.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
