package mailer

import "context"

// Sender delivers a prepared Email through a provider.
type Sender interface {
	// Send delivers an email message.
	// The Email has recipients, subject, and content already set.
	Send(ctx context.Context, email *Email) error
}
