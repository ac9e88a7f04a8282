// Package sendkit is a Go client for the SendKit transactional email API.
//
// The client maps request structs to JSON, sends them with a bearer token,
// and maps JSON responses back to typed results or typed errors. Each call
// performs exactly one HTTP exchange: nothing is retried or cached.
//
// # Quick Start
//
//	client, err := sendkit.New("sk_live_...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Emails.Send(ctx, &sendkit.SendEmailRequest{
//	    From:    "team@example.com",
//	    To:      []string{"user@example.com"},
//	    Subject: "Welcome",
//	    HTML:    "<p>Hello!</p>",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.ID)
//
// An empty API key falls back to the SENDKIT_API_KEY environment variable.
// An explicit key always takes precedence over the environment.
//
// # Raw MIME
//
// Pre-built RFC 822 messages are sent with an explicit SMTP envelope:
//
//	resp, err := client.Emails.SendMime(ctx, &sendkit.SendMimeRequest{
//	    EnvelopeFrom: "team@example.com",
//	    EnvelopeTo:   "user@example.com",
//	    RawMessage:   raw,
//	})
//
// The [github.com/sendkit/sendkit-go/pkg/rfc822] package composes such
// messages and derives the envelope from their headers.
//
// # Errors
//
// Every failure is one of three kinds:
//
//   - ErrMissingAPIKey: no key could be resolved at construction
//   - *TransportError (errors.Is ErrTransport): the exchange did not complete,
//     or a success body could not be decoded
//   - *APIError (errors.Is ErrAPI): the server answered with a non-2xx status
//
// APIError embeds the server's error envelope:
//
//	var apiErr *sendkit.APIError
//	if errors.As(err, &apiErr) {
//	    log.Println(apiErr.Name, apiErr.Message)
//	}
//
// When the failed body is not a valid envelope, the envelope is
// {Name: "application_error", Message: "Unknown error"} with a nil StatusCode.
//
// # Configuration
//
// Timeouts and connection pooling belong to the HTTP client and are passed
// through with WithTimeout and WithHTTPClient. Logging is disabled unless
// WithLogger or WithCustomLogger is given.
package sendkit
