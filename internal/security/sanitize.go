package security

import (
	"html"
	"strings"
)

// SanitizeInput trims surrounding whitespace and escapes markup-significant
// characters. Applied to every free-text form field before validation or
// storage.
func SanitizeInput(raw string) string {
	return html.EscapeString(strings.TrimSpace(raw))
}
