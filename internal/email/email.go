// Package email sends account verification mail. Sending is fire-and-forget
// from the caller's point of view; a failed send only logs.
package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"

	"pricepilot/internal/models"
)

type Sender interface {
	SendVerificationEmail(to, token string)
}

type SMTPSender struct {
	cfg models.SMTPConfig
}

func NewSMTPSender(cfg models.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendVerificationEmail mails the verify-email link asynchronously.
func (s *SMTPSender) SendVerificationEmail(to, token string) {
	go func() {
		if err := s.send(to, token); err != nil {
			log.Printf("failed to send verification email to %s: %v", to, err)
		}
	}()
}

func (s *SMTPSender) send(to, token string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("starting smtp session: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.cfg.Sender, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(s.cfg.Sender); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Email Verification\r\n\r\nClick the link to verify your email: %s/verify-email?token=%s\r\n",
		s.cfg.Sender, to, s.cfg.BaseURL, token,
	)
	if _, err := w.Write([]byte(body)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// NopSender drops mail; used in tests and when SMTP is not configured.
type NopSender struct{}

func (NopSender) SendVerificationEmail(string, string) {}
