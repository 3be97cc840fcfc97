package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	DefaultAttempts = 3
	DefaultBackoff  = 2 * time.Second
)

type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer forwards accepted contact messages to the site owner's inbox.
// Without credentials it only logs what it would have sent.
type SMTPMailer struct {
	host, port string
	user, pass string
	to         string
	send       SendFunc
	attempts   uint
	backoff    time.Duration
	logger     logger.Logger
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		user:     cfg.SMTP.User,
		pass:     cfg.SMTP.Pass,
		to:       cfg.SMTP.ToEmail,
		send:     smtp.SendMail,
		attempts: DefaultAttempts,
		backoff:  DefaultBackoff,
		logger:   log,
	}
}

func (m *SMTPMailer) Configured() bool {
	return m.host != "" && m.user != "" && m.pass != "" && m.to != ""
}

func (m *SMTPMailer) SendContact(ctx context.Context, msg portfolio.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.Configured() {
		m.logger.Warn("SMTP not configured, skipping contact email",
			zap.String("from", msg.Email), zap.String("name", msg.Name))
		return nil
	}

	body := Compose(m.user, m.to, msg)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(net.JoinHostPort(m.host, m.port), auth, m.user, []string{m.to}, body); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	m.logger.Info("contact email sent", zap.String("to", m.to), zap.String("reply_to", msg.Email))
	return nil
}

// Deliver sends msg, retrying with exponential backoff. It returns the last
// send error once the attempts run out, or the context's cause on shutdown.
func (m *SMTPMailer) Deliver(ctx context.Context, msg portfolio.ContactMessage) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.backoff

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, m.SendContact(ctx, msg)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(m.attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			m.logger.Warn("contact email failed, retrying", zap.Error(err), zap.Duration("next", next))
		}),
	)
	return err
}

// Compose renders the RFC 5322 message with the visitor as Reply-To.
func Compose(from, to string, msg portfolio.ContactMessage) []byte {
	subject := "Portfolio Contact: " + msg.Name
	if msg.Subject != nil && *msg.Subject != "" {
		subject += " - " + *msg.Subject
	}

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + oneLine(subject) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + oneLine(msg.Email) + "\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission from your portfolio:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n\r\n---\r\nSent from your portfolio contact form\r\n",
		msg.Name, msg.Email, msg.Message)
	return []byte(b.String())
}

// oneLine strips CR/LF so visitor input cannot inject headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
