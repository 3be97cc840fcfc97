package portfolioapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/khoahotran/portfolio/pkg/apperror"
)

// Envelope is the wrapper every backend response carries. When Success is
// false Data is unreliable and Error or Message holds the reason.
type Envelope[T any] struct {
	Data    T       `json:"data"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
	Success bool    `json:"success"`
}

const (
	msgCallFailed      = "API call failed"
	msgInvalidResponse = "invalid response from server"
	msgTimeout         = "request timed out"
	msgCanceled        = "request canceled"

	maxBodyBytes = 4 << 20
)

// Call performs one request and unwraps its envelope. On success the payload
// is returned unchanged; every failure is a *apperror.AppError.
func Call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return zero, c.transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return zero, c.transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, statusError(resp.StatusCode, raw)
	}

	// Status fields are read before data: a failing backend may send a data
	// value that does not fit T.
	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, apperror.NewBackend(apperror.ErrUpstream, resp.StatusCode, msgInvalidResponse,
			fmt.Sprintf("%s %s", method, path), err)
	}

	if !env.Success {
		msg := deref(env.Error)
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = msgCallFailed
		}
		return zero, apperror.NewBackend(apperror.ErrRejected, resp.StatusCode, msg,
			fmt.Sprintf("%s %s", method, path), nil)
	}

	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return zero, apperror.NewBackend(apperror.ErrUpstream, resp.StatusCode, msgInvalidResponse,
				fmt.Sprintf("%s %s", method, path), err)
		}
	}
	return data, nil
}

// errorBody is the subset of an envelope a failing backend may still send.
type errorBody struct {
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

func statusError(status int, raw []byte) *apperror.AppError {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	msg := deref(body.Error)
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}

	base := apperror.ErrUpstream
	if status == http.StatusNotFound {
		base = apperror.ErrNotFound
	}
	return apperror.NewBackend(base, status, msg, http.StatusText(status), nil)
}

func (c *Client) transportError(err error) *apperror.AppError {
	switch classify(err) {
	case failureTimeout:
		return apperror.NewBackend(apperror.ErrTimeout, 0, msgTimeout, c.baseURL, err)
	case failureCanceled:
		return apperror.NewBackend(apperror.ErrUnavailable, 0, msgCanceled, c.baseURL, err)
	case failureNetwork:
		return apperror.NewBackend(apperror.ErrUnavailable, 0, c.unreachableMessage(), c.baseURL, err)
	default:
		return apperror.NewBackend(apperror.ErrUnavailable, 0, err.Error(), c.baseURL, err)
	}
}

func (c *Client) unreachableMessage() string {
	return "Unable to connect to the server. Please check if the backend is running on " + c.baseURL
}

type failure int

const (
	failureOther failure = iota
	failureTimeout
	failureCanceled
	failureNetwork
)

func classify(err error) failure {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return failureTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return failureTimeout
	case errors.Is(err, context.Canceled):
		return failureCanceled
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return failureNetwork
	}
	return failureOther
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
