package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once

	blankLines = regexp.MustCompile(`\n{3,}`)
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Rendered markdown plus the inline styling mail clients understand.
		emailPolicy = bluemonday.UGCPolicy()
		emailPolicy.AllowStyles("color", "background-color", "text-align", "font-weight", "padding", "margin").Globally()
		emailPolicy.RequireNoFollowOnLinks(false)
	})
}

// EmailHTML sanitizes an HTML fragment for an email body.
// Scripts, event handlers, and javascript: URLs are removed; formatting survives.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// PlainText strips all markup and returns readable text.
// Entities are decoded and runs of blank lines are collapsed.
func PlainText(s string) string {
	initPolicies()
	text := html.UnescapeString(strictPolicy.Sanitize(s))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Custom applies a caller-supplied policy.
// Returns input unchanged if policy is nil.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
