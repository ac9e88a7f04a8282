package rfc822_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zostay/go-email/v2/message"

	"github.com/sendkit/sendkit-go/pkg/rfc822"
)

func parse(t *testing.T, raw []byte) message.Generic {
	t.Helper()
	msg, err := message.Parse(bytes.NewReader(raw), message.DecodeTransferEncoding())
	require.NoError(t, err)
	return msg
}

func mediaType(t *testing.T, p message.Part) string {
	t.Helper()
	mt, err := p.GetHeader().GetMediaType()
	require.NoError(t, err)
	return mt
}

func content(t *testing.T, p message.Part) string {
	t.Helper()
	require.False(t, p.IsMultipart())
	b, err := io.ReadAll(p.GetReader())
	require.NoError(t, err)
	return string(b)
}

func baseMessage() rfc822.Message {
	return rfc822.Message{
		Date:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		From:      "Team <team@example.com>",
		To:        []string{"user@example.com", "Other <other@example.com>"},
		Subject:   "Hello",
		MessageID: "<fixed@example.com>",
	}
}

func TestCompose_TextOnly(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "Hello there"

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, "Subject: Hello")
	assert.Contains(t, s, "MIME-Version: 1.0")
	assert.Contains(t, s, "<fixed@example.com>")

	parsed := parse(t, raw)
	assert.Equal(t, rfc822.MediaTypeText, mediaType(t, parsed))
	assert.Equal(t, "Hello there", content(t, parsed))
}

func TestCompose_HTMLOnly(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.HTML = "<p>Hi</p>"

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	parsed := parse(t, raw)
	assert.Equal(t, rfc822.MediaTypeHTML, mediaType(t, parsed))
	assert.Equal(t, "<p>Hi</p>", content(t, parsed))
}

func TestCompose_Alternative(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "Hi"
	msg.HTML = "<p>Hi</p>"

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	parsed := parse(t, raw)
	require.True(t, parsed.IsMultipart())
	assert.Equal(t, rfc822.MediaTypeAlternative, mediaType(t, parsed))

	parts := parsed.GetParts()
	require.Len(t, parts, 2)
	assert.Equal(t, rfc822.MediaTypeText, mediaType(t, parts[0]))
	assert.Equal(t, "Hi", content(t, parts[0]))
	assert.Equal(t, rfc822.MediaTypeHTML, mediaType(t, parts[1]))
	assert.Equal(t, "<p>Hi</p>", content(t, parts[1]))
}

func TestCompose_Attachments(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "See attached"
	msg.HTML = "<p>See attached</p>"
	msg.Attachments = []rfc822.Attachment{
		{Filename: "report.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 fake")},
		{Filename: "data.bin", Content: []byte{0x00, 0x01, 0xfe, 0xff}},
	}

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	parsed := parse(t, raw)
	require.True(t, parsed.IsMultipart())
	assert.Equal(t, rfc822.MediaTypeMixed, mediaType(t, parsed))

	parts := parsed.GetParts()
	require.Len(t, parts, 3)
	assert.Equal(t, rfc822.MediaTypeAlternative, mediaType(t, parts[0]))

	assert.Equal(t, "application/pdf", mediaType(t, parts[1]))
	name, err := parts[1].GetHeader().GetFilename()
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", name)
	assert.Equal(t, "%PDF-1.4 fake", content(t, parts[1]))

	assert.Equal(t, rfc822.MediaTypeOctetStream, mediaType(t, parts[2]))
	assert.Equal(t, string([]byte{0x00, 0x01, 0xfe, 0xff}), content(t, parts[2]))
}

func TestCompose_Headers(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "x"
	msg.Cc = []string{"cc@example.com"}
	msg.ReplyTo = "help@example.com"
	msg.Headers = map[string]string{"X-Campaign": "spring", "X-Priority": "1"}

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	h := parse(t, raw).GetHeader()

	cc, err := h.GetCc()
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.Equal(t, "cc@example.com", cc[0].Address())

	replyTo, err := h.GetReplyTo()
	require.NoError(t, err)
	assert.Equal(t, "help@example.com", replyTo[0].Address())

	campaign, err := h.Get("X-Campaign")
	require.NoError(t, err)
	assert.Equal(t, "spring", campaign)

	date, err := h.GetDate()
	require.NoError(t, err)
	assert.True(t, msg.Date.Equal(date))
}

func TestCompose_GeneratesMessageID(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.MessageID = ""
	msg.Text = "x"

	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	id, err := parse(t, raw).GetHeader().GetMessageID()
	require.NoError(t, err)
	assert.Regexp(t, `^<[0-9a-f-]{36}@example\.com>$`, id)
}

func TestCompose_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*rfc822.Message)
		wantErr error
	}{
		{name: "no sender", mutate: func(m *rfc822.Message) { m.From = "" }, wantErr: rfc822.ErrNoSender},
		{name: "no recipient", mutate: func(m *rfc822.Message) { m.To = nil }, wantErr: rfc822.ErrNoRecipient},
		{name: "no content", mutate: func(m *rfc822.Message) { m.Text, m.HTML = "", "" }, wantErr: rfc822.ErrNoContent},
		{name: "bad from", mutate: func(m *rfc822.Message) { m.From = "not an address" }, wantErr: rfc822.ErrInvalidAddress},
		{name: "bad to", mutate: func(m *rfc822.Message) { m.To = []string{"@@"} }, wantErr: rfc822.ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := baseMessage()
			msg.Text = "x"
			tt.mutate(&msg)

			_, err := rfc822.Compose(msg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
