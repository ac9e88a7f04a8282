package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by the constructors when neither an explicit
	// API key nor the SENDKIT_API_KEY environment variable is set.
	ErrMissingAPIKey = errors.New("sendkit: missing API key")

	// ErrTransport matches every *TransportError via errors.Is.
	ErrTransport = errors.New("sendkit: transport failure")

	// ErrAPI matches every *APIError via errors.Is.
	ErrAPI = errors.New("sendkit: api error")
)

// Fallback envelope values used when a failed response body cannot be decoded.
const (
	FallbackErrorName    = "application_error"
	FallbackErrorMessage = "Unknown error"
)

// ErrorResponse is the error envelope returned by the API on non-2xx responses.
type ErrorResponse struct {
	// StatusCode is optional in the envelope; nil when the server omitted it.
	StatusCode *int `json:"statusCode,omitempty"`

	// Name is the machine-readable error code (e.g. "validation_error").
	Name string `json:"name"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

func (r ErrorResponse) String() string {
	code := 0
	if r.StatusCode != nil {
		code = *r.StatusCode
	}
	return fmt.Sprintf("%s (%d): %s", r.Name, code, r.Message)
}

func fallbackErrorResponse() ErrorResponse {
	return ErrorResponse{
		Name:    FallbackErrorName,
		Message: FallbackErrorMessage,
	}
}

// APIError is returned when the server answered with a non-2xx status.
// The embedded envelope is either decoded from the body or the fallback.
type APIError struct {
	ErrorResponse
}

func (e *APIError) Error() string {
	return "sendkit: " + e.ErrorResponse.String()
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// TransportError is returned when the HTTP exchange could not be completed,
// or when a success response could not be decoded.
type TransportError struct {
	// Err is the underlying cause (net, TLS, context or JSON error).
	Err error

	// Op names the failed step, e.g. "send request" or "decode response".
	Op string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sendkit: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
