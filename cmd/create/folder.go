/* cmd/create/folder.go */

package create

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var createFolderCmd = &cobra.Command{
	Use:   "folder <name>",
	Short: "Create a new folder",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		if err := svc.CreateFolder(rc.Ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Created folder %q\n", args[0])
		return nil
	}),
}
