package contact

import "strings"

// htmlEscaper replaces the five HTML-significant characters with their
// entities in a single simultaneous pass, so an ampersand produced by
// one replacement is never re-escaped by another.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes user-supplied text before it is interpolated into
// an HTML email body.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
