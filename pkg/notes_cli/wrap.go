// pkg/notes_cli/wrap.go

package notes_cli

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

// Wrap adapts a RuntimeContext-style handler to cobra's RunE, adding
// panic recovery and start/end logging around every command.
func Wrap(fn func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := notes_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)
		return fn(rc, cmd, args)
	}
}
