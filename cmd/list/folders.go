/* cmd/list/folders.go */

package list

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var listFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folder names",
	Args:  cobra.NoArgs,
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		names, err := svc.ListFolders(rc.Ctx)
		if err != nil {
			return err
		}
		return printNames("folders", names)
	}),
}
