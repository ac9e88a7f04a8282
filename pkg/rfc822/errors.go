package rfc822

import "errors"

var (
	ErrNoSender       = errors.New("rfc822: message has no sender")
	ErrNoRecipient    = errors.New("rfc822: message has no recipient")
	ErrNoContent      = errors.New("rfc822: message has no text or html body")
	ErrInvalidAddress = errors.New("rfc822: invalid address")
	ErrMalformed      = errors.New("rfc822: malformed message")
)
