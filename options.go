package sendkit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sendkit/sendkit-go/internal"
	"github.com/sendkit/sendkit-go/pkg/logger"
)

// ContextExtractor extracts a slog attribute from context.
// Used with WithLogger to add request-scoped values to logs.
type ContextExtractor = logger.ContextExtractor

// WithBaseURL overrides the API base URL.
// Defaults to https://api.sendkit.com.
func WithBaseURL(baseURL string) Option {
	return internal.WithBaseURL(baseURL)
}

// WithHTTPClient sets the HTTP client used for every request.
// Useful for custom transports, proxies and httptest servers.
func WithHTTPClient(client *http.Client) Option {
	return internal.WithHTTPClient(client)
}

// WithTimeout sets the overall per-request timeout.
// No timeout is applied by default.
func WithTimeout(d time.Duration) Option {
	return internal.WithTimeout(d)
}

// WithLogger enables JSON logging to stdout with a component attribute.
//
// Example:
//
//	sendkit.New("", sendkit.WithLogger("sendkit", requestIDExtractor))
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return internal.WithUserAgent(ua)
}
