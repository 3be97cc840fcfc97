package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func configured() config.Config {
	var cfg config.Config
	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.Port = "587"
	cfg.SMTP.User = "site@example.com"
	cfg.SMTP.Pass = "secret"
	cfg.SMTP.ToEmail = "owner@example.com"
	return cfg
}

func TestSendContact(t *testing.T) {
	m := NewSMTPMailer(configured(), logger.NewNop())

	var gotAddr string
	var gotTo []string
	var gotBody []byte
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotBody = addr, to, msg
		return nil
	}

	err := m.SendContact(context.Background(), portfolio.ContactMessage{Name: "Ada", Email: "a@b.co", Message: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotBody), "Reply-To: a@b.co\r\n")
	assert.Contains(t, string(gotBody), "Name: Ada")
}

func TestSendContactUnconfiguredSkips(t *testing.T) {
	m := NewSMTPMailer(config.Config{}, logger.NewNop())
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	}

	assert.False(t, m.Configured())
	assert.NoError(t, m.SendContact(context.Background(), portfolio.ContactMessage{Name: "Ada"}))
}

func TestSendContactError(t *testing.T) {
	m := NewSMTPMailer(configured(), logger.NewNop())
	cause := errors.New("535 auth failed")
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return cause }

	err := m.SendContact(context.Background(), portfolio.ContactMessage{Name: "Ada"})
	assert.ErrorIs(t, err, cause)
}

func TestDeliverRetriesUntilSent(t *testing.T) {
	m := NewSMTPMailer(configured(), logger.NewNop())
	m.backoff = time.Millisecond

	calls := 0
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		if calls < 3 {
			return errors.New("421 try again later")
		}
		return nil
	}

	require.NoError(t, m.Deliver(context.Background(), portfolio.ContactMessage{Name: "Ada"}))
	assert.Equal(t, 3, calls)
}

func TestDeliverGivesUpAfterAttempts(t *testing.T) {
	m := NewSMTPMailer(configured(), logger.NewNop())
	m.backoff = time.Millisecond

	calls := 0
	cause := errors.New("535 auth failed")
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		return cause
	}

	err := m.Deliver(context.Background(), portfolio.ContactMessage{Name: "Ada"})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, DefaultAttempts, calls)
}

func TestDeliverStopsOnCancel(t *testing.T) {
	m := NewSMTPMailer(configured(), logger.NewNop())
	m.backoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		cancel()
		return errors.New("421 try again later")
	}

	err := m.Deliver(ctx, portfolio.ContactMessage{Name: "Ada"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestComposeStripsHeaderInjection(t *testing.T) {
	subject := "Hi\r\nBcc: victim@example.com"
	body := string(Compose("from@x.io", "to@x.io", portfolio.ContactMessage{Name: "Ada", Email: "a@b.co", Subject: &subject}))

	headers := strings.SplitN(body, "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Subject: Portfolio Contact: Ada - Hi  Bcc: victim@example.com")
}
