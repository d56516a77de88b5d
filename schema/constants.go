package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the reading store.
	DatabaseBackend string

	// DoorState represents the tracked door state while scanning samples.
	DoorState int
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All reading store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Door scan states. The extractor starts at DoorUnknown for every call; the
// state never outlives a single extraction pass.
const (
	DoorUnknown DoorState = iota
	DoorClosed
	DoorOpen
)

// Query constants for the vendor history API.
const (
	// StepMs is the fixed one-minute sampling step. The out-of-range metric
	// is reported as minutes under the assumption of one sample per minute,
	// so changing this changes that metric's unit.
	StepMs = 60000
)

// Defaults mirrored from the monitoring deployment.
const (
	DefaultMinThreshold = 35.0 // °F
	DefaultMaxThreshold = 75.0 // °F

	// DefaultTimezone is the zone all chart timestamps are rendered in.
	DefaultTimezone = "America/Los_Angeles"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid reading store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// String renders the door state for logs and tests.
func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	default:
		return "unknown"
	}
}
