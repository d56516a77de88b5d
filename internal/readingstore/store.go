// Package readingstore persists fetched report runs to a SQL backend so past
// ranges can be re-examined without hitting the vendor API again.
package readingstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
)

// StoreImpl handles durable storage operations using various database backends.
type StoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.ReadingStore = &StoreImpl{} // Compile-time check

// NewStore initializes and returns a new ReadingStore based on the backend
// type, applying any pending schema migrations.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.ReadingStore, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled persistence
		return &StoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if err := migrateDB(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate reading store schema: %w", err)
	}

	return &StoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// openDB opens the right driver for the backend without pinging or migrating.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetStoreDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=postgres
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// rebind converts ?-style placeholders to the $n style PostgreSQL expects.
func (s *StoreImpl) rebind(query string) string {
	if s.backend != schema.PostgreSQLBackend {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// RecordRun stores the report and its series inside one transaction.
// Run IDs are generated here (creation instant in nanoseconds) so the same
// SQL works on every backend without auto-increment or RETURNING dialects.
func (s *StoreImpl) RecordRun(report *schema.MonitorReport) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	runID := time.Now().UnixNano()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(s.rebind(`
		INSERT INTO monitor_runs (run_id, range_start_ms, range_end_ms, min_threshold, max_threshold, out_of_range, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		runID, report.Start.UnixMilli(), report.End.UnixMilli(),
		report.MinThreshold, report.MaxThreshold, report.Summary.OutOfRange,
		time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	pointStmt, err := tx.Prepare(s.rebind(`INSERT INTO temperature_points (run_id, ts_ms, fahrenheit) VALUES (?, ?, ?)`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer func() { _ = pointStmt.Close() }()
	for _, p := range report.Points {
		if _, err := pointStmt.Exec(runID, p.Timestamp.UnixMilli(), p.Fahrenheit); err != nil {
			return 0, fmt.Errorf("failed to insert point: %w", err)
		}
	}

	eventStmt, err := tx.Prepare(s.rebind(`INSERT INTO door_events (run_id, ts_ms, is_open) VALUES (?, ?, ?)`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer func() { _ = eventStmt.Close() }()
	for _, e := range report.DoorEvents {
		if _, err := eventStmt.Exec(runID, e.Timestamp.UnixMilli(), e.IsOpen); err != nil {
			return 0, fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// GetStatus returns store statistics and connection info.
func (s *StoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: s.backend}
	if s.db == nil {
		return status, nil
	}
	if err := s.db.Ping(); err != nil {
		return status, nil
	}
	status.Connected = true

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM monitor_runs`).Scan(&status.Runs); err != nil {
		return status, fmt.Errorf("failed to count runs: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM temperature_points`).Scan(&status.Points); err != nil {
		return status, fmt.Errorf("failed to count points: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM door_events`).Scan(&status.Events); err != nil {
		return status, fmt.Errorf("failed to count events: %w", err)
	}

	if status.Runs > 0 {
		var oldest, newest int64
		if err := s.db.QueryRow(`SELECT MIN(created_at), MAX(created_at) FROM monitor_runs`).Scan(&oldest, &newest); err != nil {
			return status, fmt.Errorf("failed to read run timestamps: %w", err)
		}
		status.OldestRun = time.UnixMilli(oldest)
		status.NewestRun = time.UnixMilli(newest)
	}
	return status, nil
}

// Clear removes all stored runs, points and events in one transaction.
func (s *StoreImpl) Clear() error {
	if s.db == nil {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"door_events", "temperature_points", "monitor_runs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying connection.
func (s *StoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
