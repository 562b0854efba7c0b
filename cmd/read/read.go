/* cmd/read/read.go */

package read

import (
	"github.com/spf13/cobra"
)

// ReadCmd is the root command for read operations.
var ReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a note's contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	ReadCmd.AddCommand(readNoteCmd)
}
