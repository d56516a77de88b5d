// Package parquet provides data structures and functions for exporting
// monitor reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/jayarege/Samsarademo/schema"
	"github.com/parquet-go/parquet-go"
)

// TemperatureRow is one cleaned temperature reading in columnar form.
type TemperatureRow struct {
	// Timestamp is the reading's zoned instant (stored as TIMESTAMP with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// Fahrenheit is the converted reading rounded to one decimal
	Fahrenheit float64 `parquet:"fahrenheit,snappy"`

	// Status labels the reading relative to the threshold band
	Status string `parquet:"status,snappy"`
}

// DoorEventRow is one collapsed door transition in columnar form.
type DoorEventRow struct {
	// Timestamp is the transition's zoned instant
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// IsOpen is the state the door changed into
	IsOpen bool `parquet:"is_open,snappy"`
}

// WriteReport writes a report's temperature series and door events to a pair
// of Parquet files derived from basePath ("<base>.points.parquet" and
// "<base>.events.parquet"). A base path is required since Parquet is binary
// and cannot go to stdout.
func WriteReport(report *schema.MonitorReport, basePath string) error {
	if basePath == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	points := make([]TemperatureRow, len(report.Points))
	for i, p := range report.Points {
		status := "in_range"
		if p.Fahrenheit < report.MinThreshold {
			status = "too_cold"
		} else if p.Fahrenheit > report.MaxThreshold {
			status = "too_hot"
		}
		points[i] = TemperatureRow{Timestamp: p.Timestamp, Fahrenheit: p.Fahrenheit, Status: status}
	}
	if err := writeRows(points, basePath+".points.parquet"); err != nil {
		return err
	}

	events := make([]DoorEventRow, len(report.DoorEvents))
	for i, e := range report.DoorEvents {
		events[i] = DoorEventRow{Timestamp: e.Timestamp, IsOpen: e.IsOpen}
	}
	return writeRows(events, basePath+".events.parquet")
}

// writeRows writes a slice of row structs to a Parquet file, inferring the
// schema from the struct tags.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
