package mailer

import (
	"fmt"
	"time"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully prepared message ready for a Sender.
type Email struct {
	ScheduledAt time.Time         // Zero value sends immediately
	Headers     map[string]string // Custom headers
	From        string            // Overrides the sender default
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string // Plain text alternative
	To          []string
	CC          []string
	BCC         []string
	Tags        []string
	Attachments []Attachment
}

// Attachment is a file attached to an Email.
type Attachment struct {
	Filename    string
	ContentType string // MIME type, e.g. "application/pdf"
	Content     []byte // Raw bytes; providers encode as needed
}
