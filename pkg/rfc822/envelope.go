package rfc822

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/zostay/go-addr/pkg/addr"
	"github.com/zostay/go-email/v2/message"
	"github.com/zostay/go-email/v2/message/header"

	"github.com/sendkit/sendkit-go"
)

// Envelope returns the first From and first To addresses of a raw message.
// Display names are dropped; only the addr-spec is returned.
func Envelope(raw []byte) (from, to string, err error) {
	h, err := parseHeader(raw)
	if err != nil {
		return "", "", err
	}

	from, err = envelopeFrom(h)
	if err != nil {
		return "", "", err
	}
	recipients, err := h.GetTo()
	if err != nil || len(recipients) == 0 {
		return "", "", ErrNoRecipient
	}

	return from, recipients[0].Address(), nil
}

// Recipients returns every distinct envelope recipient of a raw message:
// the To and Cc header addresses followed by bcc, in order, deduplicated.
// bcc never appears in the message itself.
func Recipients(raw []byte, bcc ...string) ([]string, error) {
	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	return recipients(h, bcc)
}

// NewMimeRequest wraps raw in a SendMimeRequest with the envelope taken from
// its headers.
func NewMimeRequest(raw []byte) (*sendkit.SendMimeRequest, error) {
	from, to, err := Envelope(raw)
	if err != nil {
		return nil, err
	}
	return &sendkit.SendMimeRequest{
		EnvelopeFrom: from,
		EnvelopeTo:   to,
		RawMessage:   string(raw),
	}, nil
}

// NewMimeRequests returns one SendMimeRequest per envelope recipient of raw,
// as reported by Recipients. Every request carries the same raw message.
func NewMimeRequests(raw []byte, bcc ...string) ([]*sendkit.SendMimeRequest, error) {
	h, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	from, err := envelopeFrom(h)
	if err != nil {
		return nil, err
	}
	to, err := recipients(h, bcc)
	if err != nil {
		return nil, err
	}

	reqs := make([]*sendkit.SendMimeRequest, 0, len(to))
	for _, rcpt := range to {
		reqs = append(reqs, &sendkit.SendMimeRequest{
			EnvelopeFrom: from,
			EnvelopeTo:   rcpt,
			RawMessage:   string(raw),
		})
	}
	return reqs, nil
}

func parseHeader(raw []byte) (*header.Header, error) {
	msg, err := message.Parse(bytes.NewReader(raw), message.WithoutMultipart())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return msg.GetHeader(), nil
}

func envelopeFrom(h *header.Header) (string, error) {
	senders, err := h.GetFrom()
	if err != nil || len(senders) == 0 {
		return "", ErrNoSender
	}
	return senders[0].Address(), nil
}

func recipients(h *header.Header, bcc []string) ([]string, error) {
	var list addr.AddressList
	for _, get := range []func() (addr.AddressList, error){h.GetTo, h.GetCc} {
		al, err := get()
		switch {
		case errors.Is(err, header.ErrNoSuchField):
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
		default:
			list = append(list, al...)
		}
	}
	for _, b := range bcc {
		a, err := addr.ParseEmailAddress(b)
		if err != nil {
			return nil, fmt.Errorf("%w: bcc %q: %v", ErrInvalidAddress, b, err)
		}
		list = append(list, a)
	}

	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, a := range list {
		email := a.Address()
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	if len(out) == 0 {
		return nil, ErrNoRecipient
	}
	return out, nil
}
