/* cmd/list/accounts.go */

package list

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var listAccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List account names",
	Args:  cobra.NoArgs,
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		names, err := svc.ListAccounts(rc.Ctx)
		if err != nil {
			return err
		}
		return printNames("accounts", names)
	}),
}
