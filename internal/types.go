package internal

import (
	"encoding/base64"
	"encoding/json"
)

// SendEmailRequest is the body of POST /v1/emails.
// Optional fields left at their zero value are omitted from the JSON body.
type SendEmailRequest struct {
	Headers     map[string]string `json:"headers,omitempty"`
	From        string            `json:"from"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html,omitempty"`
	Text        string            `json:"text,omitempty"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	ScheduledAt string            `json:"scheduled_at,omitempty"` // RFC 3339 timestamp
	To          []string          `json:"to"`
	CC          []string          `json:"cc,omitempty"`
	BCC         []string          `json:"bcc,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
}

// MarshalJSON always emits "to" as an array, even when the slice is nil.
func (r SendEmailRequest) MarshalJSON() ([]byte, error) {
	type plain SendEmailRequest
	if r.To == nil {
		r.To = []string{}
	}
	return json.Marshal(plain(r))
}

// Attachment is a file attached to a structured email.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"` // base64 or raw, per API contract
	ContentType string `json:"content_type,omitempty"`
}

// NewAttachment builds an Attachment with base64-encoded content.
func NewAttachment(filename string, data []byte, contentType string) Attachment {
	return Attachment{
		Filename:    filename,
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
}

// SendEmailResponse is returned by a successful structured send.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// SendMimeRequest is the body of POST /v1/emails/mime.
type SendMimeRequest struct {
	EnvelopeFrom string `json:"envelope_from"`
	EnvelopeTo   string `json:"envelope_to"`
	RawMessage   string `json:"raw_message"` // full RFC 822 text
}

// SendMimeResponse is returned by a successful MIME send.
type SendMimeResponse struct {
	ID string `json:"id"`
}
