/* cmd/inspect/stats.go */

package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var inspectStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count notes, folders, and accounts",
	Args:  cobra.NoArgs,
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		stats, err := svc.Stats(rc.Ctx)
		if err != nil {
			return err
		}
		if format == "text" {
			fmt.Printf("Notes:    %d\n", stats.Notes)
			fmt.Printf("Folders:  %d\n", stats.Folders)
			fmt.Printf("Accounts: %d\n", stats.Accounts)
			return nil
		}
		return notes_cli.PrintStructured(format, stats)
	}),
}
