// Package sanitizer cleans HTML destined for email bodies.
//
// EmailHTML keeps the formatting markdown produces and drops anything
// executable. PlainText derives the text/plain alternative from HTML.
package sanitizer
