/* cmd/inspect/sync.go */

package inspect

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/sweetrb/mcp-apple-notes/pkg/notes_cli"
	"github.com/sweetrb/mcp-apple-notes/pkg/notes_io"
)

var syncFresh bool

var inspectSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Report iCloud background sync activity against the Notes store",
	Args:  cobra.NoArgs,
	RunE: notes_cli.Wrap(func(rc *notes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		monitor := notes_cli.NewMonitor()
		st := monitor.Status(!syncFresh)
		if format == "text" {
			fmt.Printf("Activity detected: %v\n", st.ActivityDetected)
			fmt.Printf("Pending items:     %d\n", st.PendingCount)
			if math.IsInf(st.SecondsSinceLastChange, 1) {
				fmt.Println("Last change:       unknown")
			} else {
				fmt.Printf("Last change:       %.1fs ago\n", st.SecondsSinceLastChange)
			}
			if st.Warning != "" {
				fmt.Println(st.Warning)
			}
			if st.ProbeError != "" {
				fmt.Printf("Probe error: %s\n", st.ProbeError)
			}
			return nil
		}
		return notes_cli.PrintStructured(format, st)
	}),
}

func init() {
	inspectSyncCmd.Flags().BoolVar(&syncFresh, "fresh", false, "bypass the cached status and probe the store now")
}
