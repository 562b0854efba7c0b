/* cmd/delete/note.go */

package delete

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var deleteNoteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Delete a note by title",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		if err := svc.DeleteNote(rc.Ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted note %q\n", args[0])
		return nil
	}),
}
