package custom

import (
	"fmt"

	"github.com/spf13/cobra"

	"lendstock.GO/cmd"
	"lendstock.GO/cron"
	"lendstock.GO/cron/jobs"
)

func init() {
	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Custom command example",
		Run: func(c *cobra.Command, args []string) {
			fmt.Println("Hello from custom command")
		},
	})

	// Cron job: opt-in audit trail retention (no-op until HISTORY_MAX is set)
	cron.Register("historyprune", "@daily", jobs.HistoryPruneJob)
}
