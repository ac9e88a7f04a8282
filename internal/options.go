package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sendkit/sendkit-go/pkg/logger"
)

// Option configures the client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	userAgent  string
	timeout    time.Duration
}

// WithBaseURL overrides the API base URL.
// The value is used verbatim: paths are appended without slash normalization.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., proxies, tracing).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the overall request timeout on the HTTP client.
// When combined with WithHTTPClient the provided client is copied, not mutated.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger enables structured JSON logging for the client.
// Component is added as an attribute to every record.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(o *options) {
		l := logger.New(extractors...)
		if component != "" {
			l = l.With(logger.Component(component))
		}
		o.logger = l
	}
}

// WithCustomLogger sets a fully custom logger.
// If nil, logging stays disabled.
func WithCustomLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}
