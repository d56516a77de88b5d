package cmd

import (
	"fmt"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/internal/outwriter"
	"github.com/jayarege/Samsarademo/internal/readingstore"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd focused on reading store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by monitoring commands. This avoids API token
// validation and time range processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the reading store (persisted report runs)",
	Long: `Manage the store that keeps every completed report run.

Each report run records its cleaned temperature points, door transitions
and threshold statistics, so past windows can be audited after the fact.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored runs
  migrate - Apply or roll back schema migrations

Examples:
  # Check store status
  samsarademo store status

  # Clear stored runs
  samsarademo store clear`,
}

// storeClearCmd clears the reading store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored report runs",
	Long: `Delete all stored report runs from the configured backend.

Use this when:
- Sensors were replaced and old runs no longer apply
- The store may be stale or corrupted
- Reclaiming space after long monitoring periods

Examples:
  # Clear SQLite store (default)
  samsarademo store clear

  # Clear MySQL store (set connection string via env variable)
  SAMSARA_STORE_BACKEND=mysql SAMSARA_STORE_DB_CONNECT="..." samsarademo store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := readingstore.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open reading store", err)
		}
		defer func() { _ = store.Close() }()
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear reading store", err)
		}
		fmt.Println("Reading store cleared successfully.")
	},
}

// storeStatusCmd shows reading store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the reading store.

Displays:
- Backend type and connection status
- Total number of stored runs, points and door events
- Oldest and newest run timestamps

Examples:
  # Check store status
  samsarademo store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := readingstore.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open reading store", err)
		}
		defer func() { _ = store.Close() }()
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		outwriter.PrintStoreStatus(status)
	},
}

// storeMigrateCmd applies schema migrations to the reading store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back reading store schema migrations",
	Long: `Migrate the reading store schema to a target version.

By default this migrates to the latest version. Use --target-version to
pin a specific version, or 0 to roll back to the initial empty state.

Examples:
  # Migrate to the latest schema
  samsarademo store migrate

  # Roll back everything
  samsarademo store migrate --target-version 0`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := readingstore.Migrate(cfg.StoreBackend, cfg.StoreDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate reading store", err)
		}
		fmt.Println("Reading store migration completed.")
	},
}
