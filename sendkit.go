package sendkit

import (
	"github.com/sendkit/sendkit-go/internal"
)

// Type aliases - public API
type (
	// Client is a SendKit API client. Safe for concurrent use.
	Client = internal.Client

	// EmailsService sends structured and MIME emails.
	EmailsService = internal.EmailsService

	// Option configures the client.
	Option = internal.Option

	// Config holds env-parsable client configuration.
	Config = internal.Config

	// LookupFunc reports an environment variable; os.LookupEnv satisfies it.
	LookupFunc = internal.LookupFunc

	// SendEmailRequest is the body of a structured send.
	SendEmailRequest = internal.SendEmailRequest

	// Attachment is a file attached to a structured email.
	Attachment = internal.Attachment

	// SendEmailResponse is returned by a successful structured send.
	SendEmailResponse = internal.SendEmailResponse

	// SendMimeRequest is the body of a raw MIME send.
	SendMimeRequest = internal.SendMimeRequest

	// SendMimeResponse is returned by a successful MIME send.
	SendMimeResponse = internal.SendMimeResponse

	// ErrorResponse is the error envelope returned by the API.
	ErrorResponse = internal.ErrorResponse

	// APIError is returned for non-2xx responses.
	APIError = internal.APIError

	// TransportError is returned when the HTTP exchange fails.
	TransportError = internal.TransportError
)

// Errors
var (
	// ErrMissingAPIKey is returned when no API key can be resolved.
	ErrMissingAPIKey = internal.ErrMissingAPIKey

	// ErrTransport matches any *TransportError.
	ErrTransport = internal.ErrTransport

	// ErrAPI matches any *APIError.
	ErrAPI = internal.ErrAPI
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = internal.DefaultBaseURL

	// APIKeyEnv names the API key environment variable.
	APIKeyEnv = internal.APIKeyEnv

	// Version is the library version reported in the User-Agent.
	Version = internal.Version
)

// New creates a client.
// An empty apiKey falls back to the SENDKIT_API_KEY environment variable;
// ErrMissingAPIKey is returned when both are empty.
//
// Example:
//
//	client, err := sendkit.New("",
//	    sendkit.WithTimeout(10*time.Second),
//	    sendkit.WithLogger("sendkit"),
//	)
func New(apiKey string, opts ...Option) (*Client, error) {
	return internal.New(apiKey, opts...)
}

// NewWithBaseURL creates a client against a custom base URL.
// The URL is used verbatim; API key resolution is unchanged.
func NewWithBaseURL(apiKey, baseURL string, opts ...Option) (*Client, error) {
	return internal.NewWithBaseURL(apiKey, baseURL, opts...)
}

// NewFromConfig creates a client from a Config, typically parsed from the environment.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return internal.NewFromConfig(cfg, opts...)
}

// ResolveAPIKey returns explicit when non-empty, otherwise the value of
// SENDKIT_API_KEY as reported by lookup.
func ResolveAPIKey(explicit string, lookup LookupFunc) (string, error) {
	return internal.ResolveAPIKey(explicit, lookup)
}

// NewAttachment builds an Attachment with base64-encoded content.
func NewAttachment(filename string, data []byte, contentType string) Attachment {
	return internal.NewAttachment(filename, data, contentType)
}
