package internal

import "context"

const (
	emailsPath     = "/v1/emails"
	emailsMimePath = "/v1/emails/mime"
)

// EmailsService sends emails through the API.
type EmailsService struct {
	client *Client
}

// Send sends a structured email.
// No local validation is performed; the server validates the request.
func (s *EmailsService) Send(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	if req == nil {
		req = &SendEmailRequest{}
	}
	return post[SendEmailResponse](ctx, s.client, emailsPath, req)
}

// SendMime sends a raw RFC 822 message with an explicit SMTP envelope.
func (s *EmailsService) SendMime(ctx context.Context, req *SendMimeRequest) (*SendMimeResponse, error) {
	if req == nil {
		req = &SendMimeRequest{}
	}
	return post[SendMimeResponse](ctx, s.client, emailsMimePath, req)
}
