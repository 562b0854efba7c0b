/* cmd/create/create.go */

package create

import (
	"github.com/spf13/cobra"
)

// CreateCmd is the root command for create operations.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create notes and folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	CreateCmd.AddCommand(createNoteCmd)
	CreateCmd.AddCommand(createFolderCmd)
}
