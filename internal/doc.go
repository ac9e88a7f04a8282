// Package internal implements the SendKit API client.
//
// This package is internal and should not be used directly. Import
// "github.com/sendkit/sendkit-go" instead, which re-exports the public API.
//
// # Request lifecycle
//
// Every operation performs exactly one HTTP exchange:
//
//  1. The request value is encoded as JSON.
//  2. A POST is built against baseURL+path with bearer authentication.
//  3. A 2xx response is decoded into the typed result.
//  4. Any other status is decoded into an ErrorResponse and returned as *APIError.
//
// Failures before a status is received, and success bodies that cannot be
// decoded, are returned as *TransportError. Nothing is retried.
//
// # Logging
//
// The client logs through log/slog. Logging is disabled unless WithLogger or
// WithCustomLogger is supplied. The API key is never logged.
package internal
