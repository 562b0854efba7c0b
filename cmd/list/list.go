/* cmd/list/list.go */

package list

import (
	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
)

// ListCmd is the root command for listing operations.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, folders, and accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var format string

func init() {
	ListCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "output format: text, json, or yaml")

	ListCmd.AddCommand(listNotesCmd)
	ListCmd.AddCommand(listFoldersCmd)
	ListCmd.AddCommand(listAccountsCmd)
}

// printNames renders one name list in the selected format.
func printNames(key string, names []string) error {
	if format == "text" {
		notes_cli.PrintLines(names)
		return nil
	}
	return notes_cli.PrintStructured(format, map[string][]string{key: names})
}
