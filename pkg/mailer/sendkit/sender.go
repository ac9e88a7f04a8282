package sendkit

import (
	"context"
	"fmt"
	"time"

	"github.com/sendkit/sendkit-go"
	"github.com/sendkit/sendkit-go/pkg/mailer"
	"github.com/sendkit/sendkit-go/pkg/rfc822"
)

// Sender implements mailer.Sender on top of a SendKit client.
type Sender struct {
	client *sendkit.Client
	config Config
	mime   bool
}

// Option configures a Sender.
type Option func(*Sender)

// WithMIME delivers through the raw MIME endpoint instead of the structured one.
// The message is composed locally and submitted once per distinct To, Cc and
// Bcc recipient. Bcc addresses only ever appear in the envelope. Tags and
// scheduling are not supported in this mode and are ignored. Delivery stops at
// the first failed submission; recipients already accepted are not recalled.
func WithMIME() Option {
	return func(s *Sender) {
		s.mime = true
	}
}

// New creates a sender. The client is shared, not copied.
func New(client *sendkit.Client, cfg Config, opts ...Option) *Sender {
	s := &Sender{client: client, config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email == nil {
		return mailer.ErrNoRecipient
	}
	if s.mime {
		return s.sendMIME(ctx, email)
	}

	req := &sendkit.SendEmailRequest{
		Headers: email.Headers,
		From:    s.from(email),
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		To:      email.To,
		CC:      email.CC,
		BCC:     email.BCC,
		Tags:    email.Tags,
	}
	if !email.ScheduledAt.IsZero() {
		req.ScheduledAt = email.ScheduledAt.UTC().Format(time.RFC3339)
	}
	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, sendkit.NewAttachment(a.Filename, a.Content, a.ContentType))
	}

	if _, err := s.client.Emails.Send(ctx, req); err != nil {
		return fmt.Errorf("sendkit: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) sendMIME(ctx context.Context, email *mailer.Email) error {
	msg := rfc822.Message{
		Headers: email.Headers,
		From:    s.from(email),
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Text:    email.Text,
		HTML:    email.HTML,
		To:      email.To,
		Cc:      email.CC,
	}
	for _, a := range email.Attachments {
		msg.Attachments = append(msg.Attachments, rfc822.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     a.Content,
		})
	}

	raw, err := rfc822.Compose(msg)
	if err != nil {
		return fmt.Errorf("sendkit: failed to compose message: %w", err)
	}
	reqs, err := rfc822.NewMimeRequests(raw, email.BCC...)
	if err != nil {
		return fmt.Errorf("sendkit: failed to compose message: %w", err)
	}

	for _, req := range reqs {
		if _, err := s.client.Emails.SendMime(ctx, req); err != nil {
			return fmt.Errorf("sendkit: failed to send email to %s: %w", req.EnvelopeTo, err)
		}
	}
	return nil
}

func (s *Sender) from(email *mailer.Email) string {
	if email.From != "" {
		return email.From
	}
	return mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
}
