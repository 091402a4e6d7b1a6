package ui

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML neutralizes markup in user-supplied text before it is written
// into a region. Ampersand must go first, which the replacer guarantees by
// scanning left to right over the original input.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BreakLines converts newlines in already-escaped text to break markup for
// paragraph display.
func BreakLines(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
