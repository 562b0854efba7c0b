/* cmd/create/note.go */

package create

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
	"github.com/sweetrb/mcp-apple-notes/pkg/syncwatch"
)

var (
	noteBody   string
	noteFolder string
	watchSync  bool
)

var createNoteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Create a new note",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		title := args[0]

		if !watchSync {
			note, err := svc.CreateNote(rc.Ctx, title, noteBody, noteFolder)
			if err != nil {
				return err
			}
			fmt.Printf("Created note %q (%s)\n", note.Name, note.ID)
			return nil
		}

		monitor := notes_cli.NewMonitor()
		obs, err := syncwatch.Bracket(rc.Ctx, monitor, "create note",
			func(ctx context.Context) (notes.Note, error) {
				return svc.CreateNote(ctx, title, noteBody, noteFolder)
			})
		if err != nil {
			return err
		}
		fmt.Printf("Created note %q (%s)\n", obs.Result.Name, obs.Result.ID)
		if obs.Interference {
			fmt.Printf("Warning: %s\n", obs.Note)
		}
		return nil
	}),
}

func init() {
	createNoteCmd.Flags().StringVarP(&noteBody, "body", "b", "", "note body text")
	createNoteCmd.Flags().StringVarP(&noteFolder, "folder", "f", "", "target folder name")
	createNoteCmd.Flags().BoolVar(&watchSync, "watch-sync", false, "report iCloud sync interference around the operation")
}
