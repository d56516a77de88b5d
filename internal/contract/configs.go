package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/jayarege/Samsarademo/schema"
)

// Default values for configuration.
const (
	DefaultLastWindow = 2 * time.Hour
	DefaultPrecision  = 1
	MaxRangeDays      = 31
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a monitoring run.
// This struct remains the "final, validated" config.
type Config struct {
	APIToken string
	BaseURL  string

	TempSensorID int64
	DoorSensorID int64

	Zone      *time.Location
	StartTime time.Time
	EndTime   time.Time

	MinThreshold float64
	MaxThreshold float64

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	ShowDebug  bool // Print the fetch debug log after the report

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	APIToken       string  `mapstructure:"api-token"`
	BaseURL        string  `mapstructure:"base-url"`
	TempSensorID   int64   `mapstructure:"temp-sensor"`
	DoorSensorID   int64   `mapstructure:"door-sensor"`
	Timezone       string  `mapstructure:"timezone"`
	Start          string  `mapstructure:"start"`
	End            string  `mapstructure:"end"`
	Last           string  `mapstructure:"last"`
	MinThreshold   float64 `mapstructure:"min-threshold"`
	MaxThreshold   float64 `mapstructure:"max-threshold"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Precision      int     `mapstructure:"precision"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	Debug          bool    `mapstructure:"debug"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateSensorAccess checks the fields only the fetching commands need.
// Store management commands skip this so they can run without a token.
func ValidateSensorAccess(cfg *Config) error {
	if cfg.APIToken == "" {
		return fmt.Errorf("api token is required (set SAMSARA_API_TOKEN or --api-token)")
	}
	if cfg.TempSensorID <= 0 {
		return fmt.Errorf("temp-sensor must be a positive sensor ID (received %d)", cfg.TempSensorID)
	}
	if cfg.DoorSensorID <= 0 {
		return fmt.Errorf("door-sensor must be a positive sensor ID (received %d)", cfg.DoorSensorID)
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-time related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.APIToken = input.APIToken
	cfg.BaseURL = strings.TrimRight(input.BaseURL, "/")
	cfg.TempSensorID = input.TempSensorID
	cfg.DoorSensorID = input.DoorSensorID
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ShowDebug = input.Debug

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Threshold Validation ---
	cfg.MinThreshold = input.MinThreshold
	cfg.MaxThreshold = input.MaxThreshold
	if cfg.MinThreshold >= cfg.MaxThreshold {
		return fmt.Errorf("min-threshold (%.1f) must be below max-threshold (%.1f)", cfg.MinThreshold, cfg.MaxThreshold)
	}

	// --- 2. Timezone Validation ---
	zone, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", input.Timezone, err)
	}
	cfg.Zone = zone

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 4. Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// processTimeRange resolves the queried window from the raw inputs.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	start, end, err := ResolveRange(cfg.Zone, input.Start, input.End, input.Last)
	if err != nil {
		return err
	}
	cfg.StartTime = start
	cfg.EndTime = end
	return nil
}

// ResolveRange resolves a queried window in zone. An explicit RFC3339
// start/end pair wins; otherwise the live window covers the last duration up
// to now (defaulting to DefaultLastWindow). A start at or after its end is a
// caller error and is rejected here, before the pipeline ever runs.
func ResolveRange(zone *time.Location, startStr, endStr, lastStr string) (time.Time, time.Time, error) {
	var zero time.Time
	now := time.Now().In(zone)
	var start, end time.Time

	if startStr != "" || endStr != "" {
		if startStr == "" || endStr == "" {
			return zero, zero, fmt.Errorf("start and end must be provided together")
		}
		parsedStart, err := time.ParseInLocation(DateTimeFormat, startStr, zone)
		if err != nil {
			return zero, zero, fmt.Errorf("invalid start value: %w", err)
		}
		parsedEnd, err := time.ParseInLocation(DateTimeFormat, endStr, zone)
		if err != nil {
			return zero, zero, fmt.Errorf("invalid end value: %w", err)
		}
		start = parsedStart.In(zone)
		end = parsedEnd.In(zone)
	} else {
		window := DefaultLastWindow
		if lastStr != "" {
			parsed, err := time.ParseDuration(lastStr)
			if err != nil {
				return zero, zero, fmt.Errorf("invalid last value: %w", err)
			}
			window = parsed
		}
		if window <= 0 {
			return zero, zero, fmt.Errorf("last must be a positive duration (received %s)", window)
		}
		end = now
		start = now.Add(-window)
	}

	if !start.Before(end) {
		return zero, zero, fmt.Errorf("start time %s must be before end time %s",
			start.Format(DateTimeFormat), end.Format(DateTimeFormat))
	}
	if end.Sub(start) > MaxRangeDays*24*time.Hour {
		return zero, zero, fmt.Errorf("queried range cannot exceed %d days at the one-minute step", MaxRangeDays)
	}
	return start, end, nil
}
