// Package email sends notification messages over authenticated SMTP.
package email

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"delstarford/internal/config"
	"delstarford/internal/logger"
)

// ErrNotConfigured is returned when a send is attempted without a complete
// SMTP sender identity. Surfacing this directly beats letting the relay
// reject the connection with an opaque transport error.
var ErrNotConfigured = errors.New("email: SMTP sender not configured")

// Message is a single outbound notification. Constructed and consumed once
// per send.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Service sends plain-text email through the configured SMTP relay.
type Service struct {
	cfg     *config.Config
	enabled bool
}

// NewService creates the email service and logs whether sending is enabled.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		enabled: cfg.IsEmailEnabled(),
	}

	if s.enabled {
		logger.Global().Info().
			Str("host", cfg.SMTPHost).
			Int("port", cfg.SMTPPort).
			Msg("email notifications enabled")
	} else {
		logger.Global().Warn().
			Msg("email notifications disabled: SENDER_EMAIL / SENDER_PASSWORD not set")
	}

	return s
}

// IsEnabled returns true if the sender identity is configured.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// Send delivers one message. The error carries full transport detail for
// the server log; callers must not relay it to end users.
func (s *Service) Send(msg Message) error {
	if !s.enabled {
		return ErrNotConfigured
	}
	if msg.To == "" {
		return errors.New("email: no recipient")
	}

	from := s.cfg.SenderEmail
	if s.cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.SenderName, s.cfg.SenderEmail)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SenderEmail, s.cfg.SenderPass, s.cfg.SMTPHost)

	switch s.cfg.SMTPTLS {
	case "tls":
		return s.sendWithTLS(addr, auth, msg.To, b.String())
	case "starttls":
		return s.sendWithStartTLS(addr, auth, msg.To, b.String())
	default: // "none"
		return smtp.SendMail(addr, auth, s.cfg.SenderEmail, []string{msg.To}, []byte(b.String()))
	}
}

// sendWithTLS sends using implicit TLS (port 465).
func (s *Service) sendWithTLS(addr string, auth smtp.Auth, to, msg string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("SMTP client failed: %w", err)
	}
	defer client.Close()

	return s.submit(client, auth, to, msg)
}

// sendWithStartTLS sends using STARTTLS (port 587).
func (s *Service) sendWithStartTLS(addr string, auth smtp.Auth, to, msg string) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("SMTP dial failed: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("STARTTLS failed: %w", err)
	}

	return s.submit(client, auth, to, msg)
}

func (s *Service) submit(client *smtp.Client, auth smtp.Auth, to, msg string) error {
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}
	if err := client.Mail(s.cfg.SenderEmail); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("SMTP write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP close failed: %w", err)
	}

	return client.Quit()
}
