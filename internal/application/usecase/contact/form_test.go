package contact

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type fakeSubmitter struct {
	mu   sync.Mutex
	sent []portfolio.ContactMessage
	err  error
}

func (f *fakeSubmitter) SubmitContactMessage(ctx context.Context, msg portfolio.ContactMessage) (portfolio.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return portfolio.ContactMessage{}, f.err
	}
	id := int64(len(f.sent))
	msg.MessageID = &id
	return msg, nil
}

func (f *fakeSubmitter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

type fakeNotifier struct {
	got []portfolio.ContactMessage
	err error
}

func (f *fakeNotifier) NotifyContact(ctx context.Context, msg portfolio.ContactMessage) error {
	f.got = append(f.got, msg)
	return f.err
}

func validData() portfolio.ContactFormData {
	return portfolio.ContactFormData{Name: " Ada ", Email: "a@b.co", Message: " Hello there "}
}

func TestNewFormStartsIdle(t *testing.T) {
	form := NewForm(&fakeSubmitter{}, logger.NewNop(), Options{})
	assert.Equal(t, StateIdle, form.Snapshot().State)
	assert.Equal(t, DefaultSuccessWindow, form.window)
}

func TestSubmitRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data portfolio.ContactFormData
	}{
		{"empty name", portfolio.ContactFormData{Email: "a@b.co", Message: "hi"}},
		{"blank name", portfolio.ContactFormData{Name: "   ", Email: "a@b.co", Message: "hi"}},
		{"empty email", portfolio.ContactFormData{Name: "Ada", Message: "hi"}},
		{"empty message", portfolio.ContactFormData{Name: "Ada", Email: "a@b.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &fakeSubmitter{}
			form := NewForm(submitter, logger.NewNop(), Options{})

			status := form.Submit(context.Background(), "", tt.data)

			assert.Equal(t, StateError, status.State)
			assert.Equal(t, MsgRequiredFields, status.ErrorMessage)
			assert.Equal(t, tt.data, status.Fields)
			assert.Equal(t, 0, submitter.calls())
		})
	}
}

func TestSubmitEmailPattern(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewForm(submitter, logger.NewNop(), Options{})

	data := validData()
	data.Email = "not-an-email"
	status := form.Submit(context.Background(), "", data)

	assert.Equal(t, StateError, status.State)
	assert.Equal(t, MsgInvalidEmail, status.ErrorMessage)
	assert.Equal(t, 0, submitter.calls())

	status = form.Submit(context.Background(), "", validData())
	assert.Equal(t, StateSuccess, status.State)
	assert.Equal(t, 1, submitter.calls())
}

func TestValidate(t *testing.T) {
	assert.Equal(t, "", Validate(validData()))
	assert.Equal(t, MsgInvalidEmail, Validate(portfolio.ContactFormData{Name: "a", Email: "a@b", Message: "m"}))
	assert.Equal(t, MsgInvalidEmail, Validate(portfolio.ContactFormData{Name: "a", Email: "a b@c.d", Message: "m"}))
	assert.Equal(t, MsgInvalidEmail, Validate(portfolio.ContactFormData{Name: "a", Email: " a@b.co", Message: "m"}))
	assert.Equal(t, MsgInvalidEmail, Validate(portfolio.ContactFormData{Name: "a", Email: "a@b.co ", Message: "m"}))
}

func TestToMessageTrimsAndDefaultsSubject(t *testing.T) {
	msg := ToMessage(validData())
	assert.Equal(t, "Ada", msg.Name)
	assert.Equal(t, "Hello there", msg.Message)
	require.NotNil(t, msg.Subject)
	assert.Equal(t, DefaultSubject, *msg.Subject)

	data := validData()
	data.Subject = "  Hiring  "
	assert.Equal(t, "Hiring", *ToMessage(data).Subject)
}

func TestSubmitSuccessResetsAndReverts(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewForm(submitter, logger.NewNop(), Options{SuccessWindow: 50 * time.Millisecond})

	status := form.Submit(context.Background(), "", validData())

	assert.Equal(t, StateSuccess, status.State)
	assert.Equal(t, portfolio.ContactFormData{}, status.Fields)
	assert.Empty(t, status.ErrorMessage)

	require.Len(t, submitter.sent, 1)
	assert.Equal(t, "Ada", submitter.sent[0].Name)

	assert.Eventually(t, func() bool {
		return form.Snapshot().State == StateIdle
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitSuccessStaysUntilWindowElapses(t *testing.T) {
	form := NewForm(&fakeSubmitter{}, logger.NewNop(), Options{SuccessWindow: 5 * time.Second})

	form.Submit(context.Background(), "", validData())
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, StateSuccess, form.Snapshot().State)
}

func TestSubmitBackendErrorSurfacesMessage(t *testing.T) {
	submitter := &fakeSubmitter{
		err: apperror.NewBackend(apperror.ErrRejected, http.StatusOK, "Message body too long", "", nil),
	}
	form := NewForm(submitter, logger.NewNop(), Options{})

	data := validData()
	status := form.Submit(context.Background(), "", data)

	assert.Equal(t, StateError, status.State)
	assert.Equal(t, "Message body too long", status.ErrorMessage)
	assert.Equal(t, data, status.Fields)
}

func TestSubmitErrorWithoutMessage(t *testing.T) {
	form := NewForm(&fakeSubmitter{err: apperror.NewBackend(apperror.ErrUpstream, 0, "", "", nil)}, logger.NewNop(), Options{})
	status := form.Submit(context.Background(), "", validData())
	assert.Equal(t, apperror.GenericMessage, status.ErrorMessage)

	form = NewForm(&fakeSubmitter{err: &apperror.AppError{BaseError: apperror.ErrUpstream}}, logger.NewNop(), Options{})
	status = form.Submit(context.Background(), "", validData())
	assert.Equal(t, MsgSendFailed, status.ErrorMessage)
}

func TestSubmitRateLimited(t *testing.T) {
	submitter := &fakeSubmitter{}
	limiter := &fakeLimiter{allowed: false}
	form := NewForm(submitter, logger.NewNop(), Options{Limiter: limiter})

	status := form.Submit(context.Background(), "203.0.113.9", validData())

	assert.Equal(t, StateError, status.State)
	assert.Equal(t, "Too many messages, please try again later", status.ErrorMessage)
	assert.Equal(t, []string{"203.0.113.9"}, limiter.keys)
	assert.Equal(t, 0, submitter.calls())
}

func TestSubmitLimiterFailureDoesNotBlock(t *testing.T) {
	submitter := &fakeSubmitter{}
	form := NewForm(submitter, logger.NewNop(), Options{Limiter: &fakeLimiter{err: errors.New("redis down")}})

	status := form.Submit(context.Background(), "203.0.113.9", validData())

	assert.Equal(t, StateSuccess, status.State)
	assert.Equal(t, 1, submitter.calls())
}

func TestSubmitValidationRunsBeforeLimiter(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	form := NewForm(&fakeSubmitter{}, logger.NewNop(), Options{Limiter: limiter})

	form.Submit(context.Background(), "203.0.113.9", portfolio.ContactFormData{})

	assert.Empty(t, limiter.keys)
}

func TestSubmitNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	form := NewForm(&fakeSubmitter{}, logger.NewNop(), Options{Notifier: notifier})

	form.Submit(context.Background(), "", validData())

	require.Len(t, notifier.got, 1)
	assert.Equal(t, "a@b.co", notifier.got[0].Email)
	require.NotNil(t, notifier.got[0].MessageID)
}

func TestSubmitNotifierErrorKeepsSuccess(t *testing.T) {
	form := NewForm(&fakeSubmitter{}, logger.NewNop(), Options{Notifier: &fakeNotifier{err: errors.New("kafka down")}})

	status := form.Submit(context.Background(), "", validData())

	assert.Equal(t, StateSuccess, status.State)
}
