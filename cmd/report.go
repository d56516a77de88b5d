package cmd

import (
	"github.com/jayarege/Samsarademo/core"
	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/internal/readingstore"
	"github.com/jayarege/Samsarademo/internal/samsara"
	"github.com/spf13/cobra"
)

// reportCmd runs the full range report over the queried window.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch sensor history and report temperature and door activity.",
	Long: `Fetch temperature and door history for the queried window and print
the cleaned series along with threshold and door statistics.

The report includes:
- A temperature sparkline rendered at terminal width
- Min/max temperature with threshold labels
- Minutes spent outside the configured temperature band
- Collapsed door open/close transitions and open intervals

Examples:
  # Report on the default live window (last 2 hours)
  samsarademo report --temp-sensor 1234 --door-sensor 5678

  # Report on an explicit range
  samsarademo report --start 2026-08-01T00:00:00-07:00 --end 2026-08-02T00:00:00-07:00

  # Report on the last 30 minutes with custom thresholds
  samsarademo report --last 30m --min-threshold 33 --max-threshold 40

  # Export the cleaned series to CSV for tracking
  samsarademo report --output csv --output-file readings.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := samsara.NewClient(cfg, debugLog)
		if err := core.ExecuteReport(rootCtx, cfg, client, readingstore.Store, debugLog); err != nil {
			contract.LogFatal("Cannot run range report", err)
		}
	},
}
