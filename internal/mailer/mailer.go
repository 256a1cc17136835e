// Package mailer sends notification email over SMTP. Sending is
// best-effort everywhere it is used; a failed notification never fails
// the request that triggered it.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/tawzeef/tawzeef/config"
)

// Sender delivers a plain-text message to a single recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender implements Sender over authenticated SMTP.
type SMTPSender struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewSMTPSender builds a sender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.From,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Send delivers the message. The context is accepted for interface
// symmetry; net/smtp does not support cancellation mid-send.
func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, body)

	var a smtp.Auth
	if s.username != "" {
		a = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, a, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// NopSender discards all messages. Used when SMTP is unconfigured.
type NopSender struct{}

// Send discards the message.
func (NopSender) Send(context.Context, string, string, string) error { return nil }

// FromConfig returns an SMTP sender when a host is configured, and a
// NopSender otherwise.
func FromConfig(cfg config.MailConfig) Sender {
	if cfg.SMTPHost == "" {
		return NopSender{}
	}
	return NewSMTPSender(cfg)
}
