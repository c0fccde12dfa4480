// Package mailer sends transactional email over SMTP.
package mailer

import (
	"log/slog"

	"github.com/wneessen/go-mail"

	"notevault-backend/pkg/config"
)

// Mailer sends a plain-text message to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// smtpMailer implements Mailer using an authenticated SMTP client.
type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds a Mailer from the SMTP settings in cfg.
func NewSMTPMailer(cfg *config.Config) (Mailer, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SenderEmailAddress),
		mail.WithPassword(cfg.SenderEmailPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}

	return &smtpMailer{client: client, from: cfg.SenderEmailAddress}, nil
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSend(msg); err != nil {
		slog.Error("failed to send email", "to", to, "error", err)
		return err
	}
	return nil
}
