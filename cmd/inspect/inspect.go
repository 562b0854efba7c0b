/* cmd/inspect/inspect.go */

package inspect

import (
	"github.com/spf13/cobra"
)

// InspectCmd is the root command for diagnostics.
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect library statistics and sync activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var format string

func init() {
	InspectCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "output format: text, json, or yaml")

	InspectCmd.AddCommand(inspectStatsCmd)
	InspectCmd.AddCommand(inspectSyncCmd)
}
