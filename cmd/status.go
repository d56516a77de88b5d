package cmd

import (
	"github.com/jayarege/Samsarademo/core"
	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/internal/samsara"
	"github.com/spf13/cobra"
)

// statusCmd reads the current sensor values.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current temperature and door state.",
	Long: `Read the latest values from both sensors and print them with
threshold labels. This hits the stats endpoints directly and does not
touch stored history.

Examples:
  # Current snapshot with colored labels
  samsarademo status --temp-sensor 1234 --door-sensor 5678

  # Machine-readable snapshot
  samsarademo status --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := samsara.NewClient(cfg, debugLog)
		if err := core.ExecuteStatus(rootCtx, cfg, client, debugLog); err != nil {
			contract.LogFatal("Cannot read sensor status", err)
		}
	},
}
