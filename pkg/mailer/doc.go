// Package mailer renders templated emails and delivers them through a
// pluggable Sender.
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	subject: Welcome, {{.Name}}
//	tags: [onboarding]
//	layout: base.html
//	---
//	# Hi {{.Name}}
//
//	Thanks for signing up.
//
// The body is executed as a text/template, converted to HTML with goldmark,
// sanitized, and wrapped in an html/template layout that receives LayoutData.
// A plain text alternative is derived from the body HTML.
//
// # Usage
//
//	client, err := sendkit.New("")
//	if err != nil {
//		return err
//	}
//	m := mailer.New(
//		sendkitsender.New(client, sendkitsender.Config{SenderEmail: "team@example.com"}),
//		mailer.NewRenderer(templates.FS),
//		mailer.Config{FallbackSubject: "Notification", DefaultLayout: "base.html"},
//	)
//	err = m.Send(ctx, mailer.SendParams{
//		To:       "user@example.com",
//		Template: "welcome.md",
//		Data:     map[string]any{"Name": "Ada"},
//	})
//
// Errors returned by Send and SendRaw wrap the package sentinels and can be
// matched with errors.Is.
package mailer
