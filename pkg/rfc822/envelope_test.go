package rfc822_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendkit/sendkit-go/pkg/rfc822"
)

func TestEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("hand written message", func(t *testing.T) {
		t.Parallel()

		raw := "From: Team <team@example.com>\r\n" +
			"To: User <user@example.com>, other@example.com\r\n" +
			"Subject: Hi\r\n" +
			"\r\n" +
			"Body\r\n"

		from, to, err := rfc822.Envelope([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, "team@example.com", from)
		assert.Equal(t, "user@example.com", to)
	})

	t.Run("composed message", func(t *testing.T) {
		t.Parallel()

		msg := baseMessage()
		msg.Text = "x"
		raw, err := rfc822.Compose(msg)
		require.NoError(t, err)

		from, to, err := rfc822.Envelope(raw)
		require.NoError(t, err)
		assert.Equal(t, "team@example.com", from)
		assert.Equal(t, "user@example.com", to)
	})

	t.Run("missing from", func(t *testing.T) {
		t.Parallel()

		_, _, err := rfc822.Envelope([]byte("To: user@example.com\r\nSubject: Hi\r\n\r\nBody\r\n"))
		require.ErrorIs(t, err, rfc822.ErrNoSender)
	})

	t.Run("missing to", func(t *testing.T) {
		t.Parallel()

		_, _, err := rfc822.Envelope([]byte("From: team@example.com\r\nSubject: Hi\r\n\r\nBody\r\n"))
		require.ErrorIs(t, err, rfc822.ErrNoRecipient)
	})
}

func TestNewMimeRequest(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "x"
	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	req, err := rfc822.NewMimeRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "team@example.com", req.EnvelopeFrom)
	assert.Equal(t, "user@example.com", req.EnvelopeTo)
	assert.Equal(t, string(raw), req.RawMessage)

	_, err = rfc822.NewMimeRequest([]byte("Subject: nothing\r\n\r\n"))
	require.ErrorIs(t, err, rfc822.ErrNoSender)
}

func TestRecipients(t *testing.T) {
	t.Parallel()

	t.Run("to cc and bcc in order", func(t *testing.T) {
		t.Parallel()

		msg := baseMessage()
		msg.Text = "x"
		msg.Cc = []string{"Copy <copy@example.com>"}
		raw, err := rfc822.Compose(msg)
		require.NoError(t, err)

		got, err := rfc822.Recipients(raw, "Hidden <hidden@example.com>")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"user@example.com",
			"other@example.com",
			"copy@example.com",
			"hidden@example.com",
		}, got)
		assert.NotContains(t, string(raw), "hidden@example.com")
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()

		raw := "From: team@example.com\r\n" +
			"To: user@example.com\r\n" +
			"Cc: User Again <user@example.com>\r\n" +
			"Subject: Hi\r\n" +
			"\r\n" +
			"Body\r\n"

		got, err := rfc822.Recipients([]byte(raw), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"user@example.com"}, got)
	})

	t.Run("cc only", func(t *testing.T) {
		t.Parallel()

		raw := "From: team@example.com\r\nCc: copy@example.com\r\nSubject: Hi\r\n\r\nBody\r\n"

		got, err := rfc822.Recipients([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, []string{"copy@example.com"}, got)
	})

	t.Run("no recipients", func(t *testing.T) {
		t.Parallel()

		_, err := rfc822.Recipients([]byte("From: team@example.com\r\nSubject: Hi\r\n\r\nBody\r\n"))
		require.ErrorIs(t, err, rfc822.ErrNoRecipient)
	})

	t.Run("bad bcc", func(t *testing.T) {
		t.Parallel()

		raw := "From: team@example.com\r\nTo: user@example.com\r\nSubject: Hi\r\n\r\nBody\r\n"

		_, err := rfc822.Recipients([]byte(raw), "@@")
		require.ErrorIs(t, err, rfc822.ErrInvalidAddress)
	})
}

func TestNewMimeRequests(t *testing.T) {
	t.Parallel()

	msg := baseMessage()
	msg.Text = "x"
	msg.Cc = []string{"copy@example.com"}
	raw, err := rfc822.Compose(msg)
	require.NoError(t, err)

	reqs, err := rfc822.NewMimeRequests(raw, "hidden@example.com")
	require.NoError(t, err)
	require.Len(t, reqs, 4)

	var to []string
	for _, req := range reqs {
		assert.Equal(t, "team@example.com", req.EnvelopeFrom)
		assert.Equal(t, string(raw), req.RawMessage)
		to = append(to, req.EnvelopeTo)
	}
	assert.Equal(t, []string{"user@example.com", "other@example.com", "copy@example.com", "hidden@example.com"}, to)

	_, err = rfc822.NewMimeRequests([]byte("To: user@example.com\r\n\r\nBody\r\n"))
	require.ErrorIs(t, err, rfc822.ErrNoSender)
}
