// Package cmd defines the command-line interface for samsarademo.
package cmd

import (
	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("api-token", "", "Samsara API token (prefer SAMSARA_API_TOKEN)")
	rootCmd.PersistentFlags().String("base-url", "https://api.samsara.com", "Base URL of the Samsara API")
	rootCmd.PersistentFlags().Int64("temp-sensor", 0, "Widget ID of the temperature sensor")
	rootCmd.PersistentFlags().Int64("door-sensor", 0, "Widget ID of the door sensor")
	rootCmd.PersistentFlags().String("timezone", schema.DefaultTimezone, "IANA timezone for rendered timestamps")
	rootCmd.PersistentFlags().String("start", "", "Range start in RFC3339 (requires --end)")
	rootCmd.PersistentFlags().String("end", "", "Range end in RFC3339 (requires --start)")
	rootCmd.PersistentFlags().String("last", "", "Live window duration like 2h or 45m (ignored with --start/--end)")
	rootCmd.PersistentFlags().Float64("min-threshold", schema.DefaultMinThreshold, "Lower temperature bound in Fahrenheit")
	rootCmd.PersistentFlags().Float64("max-threshold", schema.DefaultMaxThreshold, "Upper temperature bound in Fahrenheit")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for temperature columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print the API fetch log after the report")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Reading store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
