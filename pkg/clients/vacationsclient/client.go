package vacationsclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/jakechorley/vacation-probe/internal/config"
	"github.com/jakechorley/vacation-probe/pkg/core/model"
)

// ErrRequestFailed covers every way a call can fail before a response is read:
// connection refused, timeout, cancelled context, transport errors.
var ErrRequestFailed = errors.New("request failed")

const (
	collectionPath  = "/vacations"
	requestIDHeader = "X-Request-ID"
	userAgent       = "vacation-probe"
)

// Response is the raw outcome of a call. Status codes are not interpreted.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Client talks to the vacation records collection of the HR API
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	logger  *zap.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithDial replaces the dialer, e.g. with an in-memory listener in tests
func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *Client) {
		c.http.Dial = dial
	}
}

// WithTimeout overrides the per-call timeout taken from the config
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a client for cfg.BaseURL with a per-call timeout of cfg.Timeout()
func NewClient(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout(),
		// Every call is sent exactly once, GET included, and escaped ids
		// such as %2F stay escaped on the wire.
		http: &fasthttp.Client{
			Name:                      userAgent,
			MaxIdemponentCallAttempts: 1,
			DisablePathNormalizing:    true,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// CollectionURL is the URL of the vacations collection
func (c *Client) CollectionURL() string {
	return c.baseURL + collectionPath
}

// RecordURL is the URL of a single record, with id path-escaped
func (c *Client) RecordURL(id string) string {
	return c.CollectionURL() + "/" + url.PathEscape(id)
}

// Timeout is the bound applied to each call
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Create posts a vacation record to the collection
func (c *Client) Create(ctx context.Context, record model.VacationRecord) (*Response, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vacation record: %w", err)
	}
	return c.do(ctx, fasthttp.MethodPost, c.CollectionURL(), body)
}

// List fetches the whole collection, unfiltered
func (c *Client) List(ctx context.Context) (*Response, error) {
	return c.do(ctx, fasthttp.MethodGet, c.CollectionURL(), nil)
}

// Delete removes a single record by id
func (c *Client) Delete(ctx context.Context, id string) (*Response, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("vacation id must not be empty")
	}
	return c.do(ctx, fasthttp.MethodDelete, c.RecordURL(id), nil)
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) (*Response, error) {
	requestID := uuid.New().String()
	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", target),
	)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, target, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.URI().DisablePathNormalizing = true
	req.Header.SetMethod(method)
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(body)
	}

	log.Debug("Sending request", zap.Int("body_bytes", len(body)), zap.Duration("timeout", c.timeout))

	start := time.Now()
	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		log.Debug("Request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, target, err)
	}

	// resp is released on return, so the body has to be copied out
	result := &Response{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), resp.Body()...),
		RequestID:  requestID,
	}

	log.Debug("Received response",
		zap.Int("status", result.StatusCode),
		zap.Int("body_bytes", len(result.Body)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}
