package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sendkit/sendkit-go/pkg/logger"
)

// Version is reported in the default User-Agent header.
const Version = "0.1.0"

// Client is a SendKit API client.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger

	// Emails groups the email sending operations.
	Emails *EmailsService

	apiKey    string
	baseURL   string
	userAgent string
}

// New creates a client. An empty apiKey falls back to SENDKIT_API_KEY.
// Returns ErrMissingAPIKey when no key can be resolved.
func New(apiKey string, opts ...Option) (*Client, error) {
	key, err := ResolveAPIKey(apiKey, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: "sendkit-go/" + Version,
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		httpClient: newHTTPClient(o.httpClient, o.timeout),
		logger:     o.logger,
		apiKey:     key,
		baseURL:    o.baseURL,
		userAgent:  o.userAgent,
	}
	c.Emails = &EmailsService{client: c}

	return c, nil
}

// NewWithBaseURL creates a client against a custom base URL.
// API key resolution is the same as New.
func NewWithBaseURL(apiKey, baseURL string, opts ...Option) (*Client, error) {
	return New(apiKey, append(opts[:len(opts):len(opts)], WithBaseURL(baseURL))...)
}

// NewFromConfig creates a client from an env-parsed Config.
// Options are applied after the config values and take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{WithBaseURL(cfg.BaseURL), WithTimeout(cfg.Timeout)}
	return New(cfg.APIKey, append(base, opts...)...)
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func newHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client == nil {
		return &http.Client{Timeout: timeout}
	}
	if timeout <= 0 {
		return client
	}
	clone := *client
	clone.Timeout = timeout
	return &clone
}

// post sends body as JSON to path and decodes the response into T.
// Exactly one HTTP exchange is performed; nothing is retried.
func post[T idResponse](ctx context.Context, c *Client, path string, body any) (*T, error) {
	req, err := c.newRequest(ctx, path, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		terr := &TransportError{Op: "send request", Err: err}
		c.logger.ErrorContext(ctx, "sendkit request failed",
			slog.String("path", path),
			logger.Err(terr),
		)
		return nil, terr
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	out, err := decodeResponse[T](resp)
	c.logExchange(ctx, path, resp.StatusCode, time.Since(start), err)
	return out, err
}

func (c *Client) logExchange(ctx context.Context, path string, status int, took time.Duration, err error) {
	attrs := []any{
		slog.String("method", http.MethodPost),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("duration", took),
	}

	var apiErr *APIError
	switch {
	case err == nil:
		c.logger.InfoContext(ctx, "sendkit request completed", attrs...)
	case errors.As(err, &apiErr):
		attrs = append(attrs, slog.String("error_name", apiErr.Name))
		c.logger.WarnContext(ctx, "sendkit request rejected", attrs...)
	default:
		attrs = append(attrs, logger.Err(err))
		c.logger.ErrorContext(ctx, "sendkit response invalid", attrs...)
	}
}
