package rfc822

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zostay/go-email/v2/message"
	"github.com/zostay/go-email/v2/message/transfer"
)

// Media types produced by Compose.
const (
	MediaTypeText        = "text/plain"
	MediaTypeHTML        = "text/html"
	MediaTypeAlternative = "multipart/alternative"
	MediaTypeMixed       = "multipart/mixed"
	MediaTypeOctetStream = "application/octet-stream"
)

// Message is the input to Compose.
// Bcc is intentionally absent: blind recipients belong to the envelope only.
type Message struct {
	Date        time.Time         // Defaults to now
	Headers     map[string]string // Extra header fields, written in name order
	From        string
	ReplyTo     string
	MessageID   string // Generated when empty
	Subject     string
	Text        string
	HTML        string
	To          []string
	Cc          []string
	Attachments []Attachment
}

// Attachment is a file part of a multipart/mixed message.
type Attachment struct {
	Filename    string
	ContentType string // Defaults to application/octet-stream
	Content     []byte
}

// Compose serializes msg into RFC 822 bytes.
func Compose(msg Message) ([]byte, error) {
	switch {
	case msg.From == "":
		return nil, ErrNoSender
	case len(msg.To) == 0:
		return nil, ErrNoRecipient
	case msg.Text == "" && msg.HTML == "":
		return nil, ErrNoContent
	}

	root := &message.Buffer{}
	if err := writeHeaders(root, msg); err != nil {
		return nil, err
	}

	if len(msg.Attachments) == 0 {
		if err := writeBody(root, msg); err != nil {
			return nil, err
		}
	} else {
		root.SetMediaType(MediaTypeMixed)

		body := &message.Buffer{}
		if err := writeBody(body, msg); err != nil {
			return nil, err
		}
		root.Add(body.Opaque())

		for _, a := range msg.Attachments {
			part, err := attachmentPart(a)
			if err != nil {
				return nil, err
			}
			root.Add(part)
		}
	}

	var out bytes.Buffer
	if _, err := root.Opaque().WriteTo(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out.Bytes(), nil
}

func writeHeaders(b *message.Buffer, msg Message) error {
	b.Set("MIME-Version", "1.0")

	date := msg.Date
	if date.IsZero() {
		date = time.Now()
	}
	b.SetDate(date)

	if err := b.SetFrom(msg.From); err != nil {
		return fmt.Errorf("%w: from %q: %v", ErrInvalidAddress, msg.From, err)
	}
	if err := b.SetTo(toAny(msg.To)...); err != nil {
		return fmt.Errorf("%w: to: %v", ErrInvalidAddress, err)
	}
	if len(msg.Cc) > 0 {
		if err := b.SetCc(toAny(msg.Cc)...); err != nil {
			return fmt.Errorf("%w: cc: %v", ErrInvalidAddress, err)
		}
	}
	if msg.ReplyTo != "" {
		if err := b.SetReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("%w: reply-to %q: %v", ErrInvalidAddress, msg.ReplyTo, err)
		}
	}

	b.SetSubject(msg.Subject)

	id := msg.MessageID
	if id == "" {
		id = fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(msg.From))
	}
	b.SetMessageID(id)

	for _, name := range slices.Sorted(maps.Keys(msg.Headers)) {
		b.Set(name, msg.Headers[name])
	}
	return nil
}

// writeBody fills b with a single text part or a multipart/alternative pair.
func writeBody(b *message.Buffer, msg Message) error {
	switch {
	case msg.Text != "" && msg.HTML != "":
		b.SetMediaType(MediaTypeAlternative)
		for _, p := range []struct{ mediaType, content string }{
			{MediaTypeText, msg.Text},
			{MediaTypeHTML, msg.HTML},
		} {
			part := &message.Buffer{}
			if err := writeText(part, p.mediaType, p.content); err != nil {
				return err
			}
			b.Add(part.Opaque())
		}
		return nil
	case msg.HTML != "":
		return writeText(b, MediaTypeHTML, msg.HTML)
	default:
		return writeText(b, MediaTypeText, msg.Text)
	}
}

func writeText(b *message.Buffer, mediaType, content string) error {
	b.SetMediaType(mediaType)
	if err := b.SetCharset("utf-8"); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	b.SetTransferEncoding(transfer.QuotedPrintable)
	_, err := b.Write([]byte(content))
	return err
}

func attachmentPart(a Attachment) (*message.Opaque, error) {
	ct := a.ContentType
	if ct == "" {
		ct = MediaTypeOctetStream
	}

	b := &message.Buffer{}
	b.SetMediaType(ct)
	b.SetPresentation("attachment")
	if err := b.SetFilename(a.Filename); err != nil {
		return nil, fmt.Errorf("%w: attachment %q: %v", ErrMalformed, a.Filename, err)
	}
	b.SetTransferEncoding(transfer.Base64)
	if _, err := b.Write(a.Content); err != nil {
		return nil, err
	}
	return b.Opaque(), nil
}

func toAny(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}

func domainOf(address string) string {
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return "localhost"
	}
	return strings.TrimRight(address[at+1:], "> ")
}
