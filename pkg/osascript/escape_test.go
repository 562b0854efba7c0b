package osascript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "no_delimiter_passes_through",
			in:   `tell application "Notes" to get name of notes`,
			want: `tell application "Notes" to get name of notes`,
		},
		{
			name: "single_quote",
			in:   `it's`,
			want: `it'\''s`,
		},
		{
			name: "multiple_quotes",
			in:   `'a' 'b'`,
			want: `'\''a'\'' '\''b'\''`,
		},
		{
			name: "quote_at_boundaries",
			in:   `'x'`,
			want: `'\''x'\''`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscapeIdempotentWithoutDelimiter(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"plain text",
		`with "double quotes" only`,
		"newlines\nand\ttabs",
		"unicode: ünïcødé 📝",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Escape(in))
		assert.Equal(t, Escape(in), Escape(Escape(in)))
	}
}

func TestEscapeNeverLeavesBareQuoteRun(t *testing.T) {
	t.Parallel()
	inputs := []string{`'`, `''`, `a'b'c`, `don't stop`}
	for _, in := range inputs {
		out := Escape(in)
		// Every original quote becomes the close-insert-reopen sequence, so
		// stripping those sequences must remove all quotes.
		rest := strings.ReplaceAll(out, `'\''`, "")
		assert.NotContains(t, rest, `'`, "input %q escaped to %q", in, out)
	}
}
