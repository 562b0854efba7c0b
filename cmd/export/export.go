/* cmd/export/export.go */

package export

import (
	"github.com/spf13/cobra"
)

// ExportCmd is the root command for export operations.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes to files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	ExportCmd.AddCommand(exportNoteCmd)
}
