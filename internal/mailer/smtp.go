package mailer

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/nuansacp2025/ticketing/internal/config"
)

// SMTPMailer sends mail through an SMTP relay using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
	logger *zap.Logger
}

// NewSMTPMailer constructs a mailer from SMTP settings.
func NewSMTPMailer(cfg config.MailerConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
		logger: logger,
	}
}

// Send renders the message template, attaches artifacts in order, and
// delivers over a session scoped to this one call: dialed here, closed on
// every exit path.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	body, err := renderTemplate(msg.TemplateName, msg.Context)
	if err != nil {
		return err
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.sender)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", body)
	for _, att := range msg.Attachments {
		content := att.Content
		mail.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	sc, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer sc.Close()

	if err := gomail.Send(sc, mail); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("email sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)))
	return nil
}
