/* cmd/list/notes.go */

package list

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var (
	listFolder string
	listLimit  int
)

var listNotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List note names, optionally scoped to a folder",
	Args:  cobra.NoArgs,
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		names, err := svc.ListNotes(rc.Ctx, listFolder, listLimit)
		if err != nil {
			return err
		}
		return printNames("notes", names)
	}),
}

func init() {
	listNotesCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "only notes in this folder")
	listNotesCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "maximum number of names (0 for all)")
}
