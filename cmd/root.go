/* cmd/root.go */

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	// Subcommands
	createcmd "github.com/sweetrb/mcp-apple-notes/cmd/create"
	deletecmd "github.com/sweetrb/mcp-apple-notes/cmd/delete"
	exportcmd "github.com/sweetrb/mcp-apple-notes/cmd/export"
	inspectcmd "github.com/sweetrb/mcp-apple-notes/cmd/inspect"
	listcmd "github.com/sweetrb/mcp-apple-notes/cmd/list"
	readcmd "github.com/sweetrb/mcp-apple-notes/cmd/read"
	searchcmd "github.com/sweetrb/mcp-apple-notes/cmd/search"

	"github.com/sweetrb/mcp-apple-notes/pkg/config"
	"github.com/sweetrb/mcp-apple-notes/pkg/logger"
)

// RootCmd is the base command for the Notes bridge.
var RootCmd = &cobra.Command{
	Use:   "mcp-apple-notes",
	Short: "Automate Apple Notes from the command line",
	Long: `mcp-apple-notes drives the Notes application through the osascript
automation interpreter: create, read, search, list, delete, and export
notes and folders, with timeout enforcement, failure classification,
bounded retry, and iCloud sync-activity awareness.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every automation attempt, not just failures")
	cobra.OnInitialize(func() {
		config.BindFlags(RootCmd.PersistentFlags())
		logger.Initialize(verbose)
	})

	RootCmd.AddCommand(createcmd.CreateCmd)
	RootCmd.AddCommand(listcmd.ListCmd)
	RootCmd.AddCommand(readcmd.ReadCmd)
	RootCmd.AddCommand(deletecmd.DeleteCmd)
	RootCmd.AddCommand(searchcmd.SearchCmd)
	RootCmd.AddCommand(exportcmd.ExportCmd)
	RootCmd.AddCommand(inspectcmd.InspectCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
