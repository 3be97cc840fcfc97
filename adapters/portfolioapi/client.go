package portfolioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	DefaultTimeout  = 10 * time.Second
	HeaderRequestID = "X-Request-ID"
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Tracing bool
	// Transport replaces http.DefaultTransport as the innermost round tripper.
	Transport http.RoundTripper
}

func ClientConfigFrom(cfg config.Config) ClientConfig {
	return ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tracing: cfg.Jaeger.OTLPEndpoint != "",
	}
}

// Client is the shared transport to the portfolio backend. It is read-only
// after construction and safe for concurrent use. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

func NewClient(cfg ClientConfig, log logger.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	next := cfg.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	var transport http.RoundTripper = &loggingTransport{next: next, log: log}
	if cfg.Tracing {
		transport = otelhttp.NewTransport(transport)
	}

	log.Info("portfolio API client initialized", zap.String("base_url", baseURL), zap.Duration("timeout", timeout))
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout, Transport: transport},
		log:     log,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a JSON request to baseURL+path. A nil body sends no payload. The
// caller closes the response body. Transport errors are returned raw and
// logged with the matching diagnostic.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		fields := []zap.Field{zap.String("method", method), zap.String("url", req.URL.String())}
		switch classify(err) {
		case failureTimeout:
			c.log.Error("request timeout", err, fields...)
		case failureCanceled:
			c.log.Warn("request canceled", append(fields, zap.Error(err))...)
		default:
			c.log.Error("network error, check if backend is running", err, fields...)
		}
		return nil, err
	}
	return resp, nil
}

type loggingTransport struct {
	next http.RoundTripper
	log  logger.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	url := req.URL.String()
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", url),
		zap.String("request_id", req.Header.Get(HeaderRequestID)),
	}
	if sc := trace.SpanContextFromContext(req.Context()); sc.IsValid() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}
	t.log.Info("making request", fields...)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	t.log.Info("response received", zap.String("url", url), zap.Int("status", resp.StatusCode))
	switch {
	case resp.StatusCode == http.StatusNotFound:
		t.log.Warn("resource not found", zap.String("url", url))
	case resp.StatusCode >= http.StatusInternalServerError:
		t.log.Error("server error", nil, zap.String("url", url), zap.Int("status", resp.StatusCode))
	}
	return resp, nil
}
