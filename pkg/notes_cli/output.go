// pkg/notes_cli/output.go

package notes_cli

import (
	"encoding/json"
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// PrintStructured renders v to stdout as json or yaml. Text rendering is
// command-specific, so callers handle that case themselves.
func PrintStructured(format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	default:
		return cerr.Newf("unsupported output format %q (want json or yaml)", format)
	}
}

// PrintLines renders a name list as plain text, one per line.
func PrintLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
