package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/internal/parquet"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// timeFormat is how report tables render zoned timestamps.
const timeFormat = "2006-01-02 03:04 PM MST"

// PrintReport outputs a monitor report, dispatching based on the output
// format configured.
func PrintReport(report *schema.MonitorReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONReport(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVReport(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteReport(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable tables plus a terminal strip chart
		if err := printReportText(report, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing report output: %w", err)
		}
	}
	return nil
}

// printJSONReport writes the report as the chart payload: line series,
// threshold reference lines, and shaded open-interval bands.
func printJSONReport(report *schema.MonitorReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON report")
}

// printCSVReport writes the cleaned temperature series one point per row.
func printCSVReport(report *schema.MonitorReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		if err := csvWriter.Write([]string{"timestamp", "fahrenheit", "status"}); err != nil {
			return err
		}
		for _, p := range report.Points {
			row := []string{
				p.Timestamp.Format(time.RFC3339),
				fmtFloat(p.Fahrenheit),
				contract.GetPlainTempLabel(p.Fahrenheit, report.MinThreshold, report.MaxThreshold),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote CSV report")
}

// printReportText prints the summary table, the door transition table, and a
// sparkline of the series scaled to the terminal width.
func printReportText(report *schema.MonitorReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	fmt.Printf("Temperature & Door Report  %s -> %s\n\n",
		report.Start.Format(timeFormat), report.End.Format(timeFormat))

	if len(report.Points) == 0 {
		fmt.Println("No readings in the queried range.")
	} else {
		printSparkline(report, getTerminalWidth(cfg.Width), cfg.UseColors)
		fmt.Println()
	}

	if err := printSummaryTable(report, cfg, fmtFloat); err != nil {
		return err
	}
	if err := printDoorEventTable(report, cfg); err != nil {
		return err
	}

	fmt.Printf("Report completed in %v. %d readings, %d door events. Store backend: %s\n",
		duration.Round(time.Millisecond), len(report.Points), len(report.DoorEvents), cfg.StoreBackend)
	return nil
}

// printSummaryTable renders the range statistics as a two-column table.
func printSummaryTable(report *schema.MonitorReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Min/Max are nil for an empty series; render N/A rather than a fake zero.
	renderTemp := func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		label := fmtFloat(*v) + " °F"
		if cfg.UseColors {
			return contract.GetColorTempLabel(*v, report.MinThreshold, report.MaxThreshold) + " " + label
		}
		return label
	}

	data := [][]string{
		{"Readings", fmt.Sprintf("%d", len(report.Points))},
		{"Min Temp", renderTemp(report.Summary.Min)},
		{"Max Temp", renderTemp(report.Summary.Max)},
		{"Out of Range", fmt.Sprintf("%d min", report.Summary.OutOfRange)},
		{"Door Events", fmt.Sprintf("%d", len(report.DoorEvents))},
		{"Open Intervals", fmt.Sprintf("%d", len(report.OpenIntervals))},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printDoorEventTable renders the collapsed transition list. Nothing is
// printed for a range without door data.
func printDoorEventTable(report *schema.MonitorReport, cfg *contract.Config) error {
	if len(report.DoorEvents) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Time", "Door"})

	var data [][]string
	for _, e := range report.DoorEvents {
		data = append(data, []string{
			e.Timestamp.Format(timeFormat),
			contract.GetDoorLabel(e.IsOpen, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// PrintDebugLog dumps the bounded fetch diagnostics, newest last.
func PrintDebugLog(entries []string) {
	if len(entries) == 0 {
		fmt.Println("No API calls logged yet.")
		return
	}
	fmt.Println("Debug log (API calls):")
	for _, entry := range entries {
		fmt.Printf("  %s\n", entry)
	}
}
