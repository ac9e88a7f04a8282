// Package rfc822 builds and inspects raw RFC 822 / MIME messages for the
// SendKit MIME endpoint.
//
// Compose turns a Message into wire bytes: text/plain or text/html for a
// single body, multipart/alternative when both are present, and
// multipart/mixed when attachments are added. Envelope reads the SMTP
// envelope back out of the From and To headers of a raw message, and
// NewMimeRequest combines both into a request for EmailsService.SendMime.
//
//	raw, err := rfc822.Compose(rfc822.Message{
//		From:    "Team <team@example.com>",
//		To:      []string{"user@example.com"},
//		Subject: "Hello",
//		Text:    "Hello there",
//	})
//	if err != nil {
//		return err
//	}
//	req, err := rfc822.NewMimeRequest(raw)
//	if err != nil {
//		return err
//	}
//	resp, err := client.Emails.SendMime(ctx, req)
package rfc822
