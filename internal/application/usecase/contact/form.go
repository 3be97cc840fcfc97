package contact

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

const (
	DefaultSubject       = "Contact from Portfolio"
	DefaultSuccessWindow = 5 * time.Second

	MsgRequiredFields = "Please fill in all required fields"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgSendFailed     = "Failed to send message. Please try again."
	MsgSent           = "Thank you for your message! I'll get back to you soon."
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Status is a point-in-time copy of the form.
type Status struct {
	State        State                     `json:"state"`
	Fields       portfolio.ContactFormData `json:"fields"`
	ErrorMessage string                    `json:"errorMessage,omitempty"`
}

type Options struct {
	SuccessWindow time.Duration
	Limiter       service.Limiter
	Notifier      service.ContactNotifier
}

// Form is the write path: idle -> loading -> success | error. Unlike the read
// sections it surfaces the failure message to the visitor.
type Form struct {
	submitter service.ContactSubmitter
	limiter   service.Limiter
	notifier  service.ContactNotifier
	window    time.Duration
	logger    logger.Logger

	mu     sync.Mutex
	status Status
}

var tracer = otel.Tracer("contact_usecase")

func NewForm(submitter service.ContactSubmitter, log logger.Logger, opts Options) *Form {
	window := opts.SuccessWindow
	if window <= 0 {
		window = DefaultSuccessWindow
	}
	return &Form{
		submitter: submitter,
		limiter:   opts.Limiter,
		notifier:  opts.Notifier,
		window:    window,
		logger:    log,
		status:    Status{State: StateIdle},
	}
}

// SuccessWindow is how long a success status lasts before reverting to idle.
func (f *Form) SuccessWindow() time.Duration {
	return f.window
}

func (f *Form) Snapshot() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Validate checks the fields the way the browser form does, returning the
// message to show or "" when the data may be sent.
func Validate(data portfolio.ContactFormData) string {
	if strings.TrimSpace(data.Name) == "" || strings.TrimSpace(data.Email) == "" || strings.TrimSpace(data.Message) == "" {
		return MsgRequiredFields
	}
	// Matched untrimmed, so surrounding whitespace is rejected.
	if !emailRegex.MatchString(data.Email) {
		return MsgInvalidEmail
	}
	return ""
}

// ToMessage builds the request body, trimming fields and defaulting the subject.
func ToMessage(data portfolio.ContactFormData) portfolio.ContactMessage {
	subject := strings.TrimSpace(data.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	return portfolio.ContactMessage{
		Name:    strings.TrimSpace(data.Name),
		Email:   strings.TrimSpace(data.Email),
		Subject: &subject,
		Message: strings.TrimSpace(data.Message),
	}
}

// Submit validates and sends data. clientKey identifies the sender for rate
// limiting and may be empty.
func (f *Form) Submit(ctx context.Context, clientKey string, data portfolio.ContactFormData) Status {
	ctx, span := tracer.Start(ctx, "Submit")
	defer span.End()

	if msg := Validate(data); msg != "" {
		return f.fail(data, msg)
	}

	if f.limiter != nil && clientKey != "" {
		allowed, err := f.limiter.Allow(ctx, clientKey)
		if err != nil {
			// A broken limiter must not block messages.
			f.logger.Warn("contact rate limiter unavailable", zap.Error(err))
		} else if !allowed {
			return f.fail(data, apperror.NewRateLimited(clientKey).Message)
		}
	}

	f.set(Status{State: StateLoading, Fields: data})

	sent := ToMessage(data)
	accepted, err := f.submitter.SubmitContactMessage(ctx, sent)
	if err != nil {
		f.logger.Error("failed to submit contact message", err)
		span.RecordError(err)
		msg := apperror.UserMessage(err)
		if msg == "" {
			msg = MsgSendFailed
		}
		return f.fail(data, msg)
	}

	if accepted.Email == "" {
		accepted = sent
	}
	if f.notifier != nil {
		if err := f.notifier.NotifyContact(ctx, accepted); err != nil {
			f.logger.Error("failed to publish contact notification", err)
		}
	}

	status := f.set(Status{State: StateSuccess})
	time.AfterFunc(f.window, f.revert)
	return status
}

func (f *Form) revert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status.State == StateSuccess {
		f.status.State = StateIdle
	}
}

func (f *Form) fail(data portfolio.ContactFormData, msg string) Status {
	return f.set(Status{State: StateError, Fields: data, ErrorMessage: msg})
}

func (f *Form) set(s Status) Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = s
	return s
}
