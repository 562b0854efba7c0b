/* cmd/export/note.go */

package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var exportDest string

var exportNoteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Export a note to an HTML file",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		path, err := svc.ExportNote(rc.Ctx, args[0], exportDest)
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	}),
}

func init() {
	exportNoteCmd.Flags().StringVarP(&exportDest, "dest", "d", ".", "destination directory")
}
