// Package mail sends plain-text email.
package mail

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks movieflix/internal/mail Mailer

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Ensure implementations satisfy the Mailer interface
var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*ConsoleMailer)(nil)
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
	send sendFunc
}

// NewSMTPMailer creates a mailer for host:port. Authentication is skipped
// when username is empty.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + strconv.Itoa(port),
		auth: auth,
		from: from,
		send: smtp.SendMail,
	}
}

// Send delivers the message.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.send(m.addr, m.auth, m.from, []string{msg.To}, m.build(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) build(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(msg.Body + "\r\n")
	return []byte(b.String())
}

// ConsoleMailer logs messages instead of sending them. Used when SMTP is not configured.
type ConsoleMailer struct {
	logger *log.Logger
}

// NewConsoleMailer creates a ConsoleMailer writing to the standard logger.
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{logger: log.Default()}
}

// Send logs the message.
func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Printf("mail to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
