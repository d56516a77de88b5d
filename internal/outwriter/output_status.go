package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintStatus outputs the current sensor snapshot, dispatching on the
// configured output format. CSV and Parquet make no sense for a single
// snapshot, so anything but JSON falls back to the text table.
func PrintStatus(snapshot schema.SensorSnapshot, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, snapshot)
		}, "Wrote JSON status")
	}

	fmtFloat := createFormatters(cfg.Precision)

	tempValue := "N/A"
	if snapshot.Fahrenheit != nil {
		tempValue = fmtFloat(*snapshot.Fahrenheit) + " °F"
		if cfg.UseColors {
			tempValue = contract.GetColorTempLabel(*snapshot.Fahrenheit, cfg.MinThreshold, cfg.MaxThreshold) + " " + tempValue
		}
	}

	doorValue := "N/A"
	if snapshot.DoorClosed != nil {
		doorValue = contract.GetDoorLabel(!*snapshot.DoorClosed, cfg.UseColors)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Sensor", "Reading"})
	data := [][]string{
		{"Temperature", tempValue},
		{"Door", doorValue},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("As of %s\n", snapshot.Taken.Format(timeFormat))
	return nil
}

// PrintStoreStatus shows reading store statistics and connection details.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store backend: %s\n", status.Backend)
	if !status.Connected {
		fmt.Println("Status: not connected")
		return
	}
	fmt.Println("Status: connected")
	fmt.Printf("Runs: %d, points: %d, door events: %d\n", status.Runs, status.Points, status.Events)
	if !status.OldestRun.IsZero() {
		fmt.Printf("Oldest run: %s\n", status.OldestRun.Format(time.RFC3339))
	}
	if !status.NewestRun.IsZero() {
		fmt.Printf("Newest run: %s\n", status.NewestRun.Format(time.RFC3339))
	}
}
