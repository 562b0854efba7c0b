// pkg/osascript/escape.go

package osascript

import "strings"

// Escape prepares raw script text for embedding inside a single-quoted
// shell argument. The only character that can terminate a single-quoted
// argument is the quote itself, so each one is rewritten as '\'' (close
// the quote, emit a literal quote, reopen). Input without single quotes
// passes through unchanged.
func Escape(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ReplaceAll(raw, `'`, `'\''`)
}
