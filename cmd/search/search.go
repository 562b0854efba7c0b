/* cmd/search/search.go */

package search

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var (
	searchLimit  int
	searchFormat string
)

// SearchCmd finds notes whose titles contain the query.
var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes by title",
	Args:  cobra.ExactArgs(1),
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		svc := notes_cli.NewService()
		names, err := svc.SearchNotes(rc.Ctx, args[0], searchLimit)
		if err != nil {
			return err
		}
		if searchFormat == "text" {
			notes_cli.PrintLines(names)
			return nil
		}
		return notes_cli.PrintStructured(searchFormat, map[string][]string{"matches": names})
	}),
}

func init() {
	SearchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 25, "maximum number of matches (0 for all)")
	SearchCmd.Flags().StringVarP(&searchFormat, "format", "o", "text", "output format: text, json, or yaml")
}
