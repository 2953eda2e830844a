package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trims whitespace", "  John  ", "John"},
		{"escapes angle brackets", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"escapes quotes", `a"b'c`, "a&#34;b&#39;c"},
		{"escapes ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"plain text unchanged", "plain text", "plain text"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.raw))
		})
	}
}
