package mailer

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	texttemplate "text/template"
	"time"
)

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes a templated email.
type SendParams struct {
	ScheduledAt time.Time
	Data        any // Template data, also used for the subject
	To          string
	Template    string // Template filename, e.g. "welcome.md"

	// Optional overrides
	Subject     string
	Layout      string
	From        string
	ReplyTo     string
	CC          []string
	BCC         []string
	Tags        []string // Appended to config and frontmatter tags
	Headers     map[string]string
	Attachments []Attachment
}

// Send renders a template and sends it.
// Subject resolution: params, then frontmatter, then config fallback.
// The chosen subject is itself executed as a text template against Data;
// a blank result fails with ErrNoSubject before anything is sent.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	result, err := m.renderer.Render(params.Template, params.Data, RenderOptions{
		Layout:         params.Layout,
		FallbackLayout: m.config.DefaultLayout,
	})
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject, err := executeSubject(
		firstNonEmpty(params.Subject, result.Frontmatter.Subject, m.config.FallbackSubject),
		params.Data,
	)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}
	if strings.TrimSpace(subject) == "" {
		return ErrNoSubject
	}

	email := &Email{
		ScheduledAt: params.ScheduledAt,
		Headers:     params.Headers,
		From:        params.From,
		ReplyTo:     firstNonEmpty(params.ReplyTo, result.Frontmatter.ReplyTo),
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		To:          []string{params.To},
		CC:          params.CC,
		BCC:         params.BCC,
		Tags:        mergeTags(m.config.DefaultTags, result.Frontmatter.Tags, params.Tags),
		Attachments: params.Attachments,
	}

	return m.deliver(ctx, email)
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	if strings.TrimSpace(email.Subject) == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}
	return m.deliver(ctx, email)
}

func (m *Mailer) deliver(ctx context.Context, email *Email) error {
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// mergeTags concatenates tag lists, keeping first occurrence order.
func mergeTags(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, tag := range list {
			if tag != "" && !slices.Contains(out, tag) {
				out = append(out, tag)
			}
		}
	}
	return out
}
