/* cmd/read/note.go */

package read

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var readFormat string

var readNoteCmd = &cobra.Command{
	Use:   "note <title>",
	Short: "Read a note by title",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		note, err := svc.GetNote(rc.Ctx, args[0])
		if err != nil {
			return err
		}
		if readFormat == "text" {
			fmt.Println(note.Name)
			fmt.Println()
			fmt.Println(note.Body)
			return nil
		}
		return notes_cli.PrintStructured(readFormat, note)
	}),
}

func init() {
	readNoteCmd.Flags().StringVarP(&readFormat, "format", "o", "text", "output format: text, json, or yaml")
}
