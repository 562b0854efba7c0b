// pkg/notes/script.go

package notes

import (
	"fmt"
	"html"
	"strings"
)

// fieldSep separates fields inside one script result line. Chosen to be
// extremely unlikely inside note names or bodies.
const fieldSep = "|#|"

// scriptString renders s as an AppleScript string literal. Backslashes
// and double quotes are the only characters AppleScript treats specially
// inside a literal.
func scriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// bodyHTML converts plain text into the HTML fragment Notes stores as a
// note body.
func bodyHTML(text string) string {
	escaped := html.EscapeString(text)
	lines := strings.Split(escaped, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			b.WriteString("<div><br></div>")
			continue
		}
		b.WriteString("<div>" + line + "</div>")
	}
	return b.String()
}

// folderTarget renders the optional "at folder ..." clause.
func folderTarget(folder string) string {
	if folder == "" {
		return ""
	}
	return fmt.Sprintf(" at folder %s", scriptString(folder))
}

// listScript builds the repeat-and-join pattern used by every listing
// operation: collect one name per line, bounded by limit when > 0.
func listScript(collection string, limit int) string {
	var b strings.Builder
	b.WriteString("tell application \"Notes\"\n")
	b.WriteString("\tset collected to {}\n")
	b.WriteString("\tset n to 0\n")
	fmt.Fprintf(&b, "\trepeat with item_ref in %s\n", collection)
	b.WriteString("\t\tset end of collected to (name of item_ref as string)\n")
	b.WriteString("\t\tset n to n + 1\n")
	if limit > 0 {
		fmt.Fprintf(&b, "\t\tif n >= %d then exit repeat\n", limit)
	}
	b.WriteString("\tend repeat\n")
	b.WriteString("\tset AppleScript's text item delimiters to linefeed\n")
	b.WriteString("\treturn collected as string\n")
	b.WriteString("end tell")
	return b.String()
}

// splitLines parses a linefeed-joined script result into a slice,
// dropping the trailing empty entry an empty result produces.
func splitLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
