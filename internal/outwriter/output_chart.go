package outwriter

import (
	"fmt"
	"strings"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
)

// sparkRunes map a normalized level to a block character, lowest first.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// printSparkline draws the temperature series as a one-line strip chart
// scaled to the terminal width, with out-of-band cells colored when colors
// are enabled. It is a rough in-terminal stand-in for the line chart the
// rendering collaborator draws from the JSON payload.
func printSparkline(report *schema.MonitorReport, width int, useColors bool) {
	cells, means := sparklineCells(report.Points, width-2)
	if len(cells) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range cells {
		if useColors {
			c = colorizeCell(c, means[i], report.MinThreshold, report.MaxThreshold)
		}
		sb.WriteString(c)
	}
	fmt.Printf(" %s\n", sb.String())
}

// sparklineCells buckets the series into at most width columns and renders
// each bucket's mean as a block rune. Returns nils for degenerate input.
func sparklineCells(points []schema.TemperaturePoint, width int) ([]string, []float64) {
	if len(points) == 0 || width < 2 {
		return nil, nil
	}
	if width > len(points) {
		width = len(points)
	}

	lo, hi := points[0].Fahrenheit, points[0].Fahrenheit
	for _, p := range points {
		lo = min(lo, p.Fahrenheit)
		hi = max(hi, p.Fahrenheit)
	}

	cells := make([]string, 0, width)
	means := make([]float64, 0, width)
	for i := range width {
		// Bucket bounds over the point slice for this column.
		from := i * len(points) / width
		to := (i + 1) * len(points) / width
		if to == from {
			to = from + 1
		}
		sum := 0.0
		for _, p := range points[from:to] {
			sum += p.Fahrenheit
		}
		mean := sum / float64(to-from)

		level := 0
		if hi > lo {
			level = int((mean - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		cells = append(cells, string(sparkRunes[level]))
		means = append(means, mean)
	}
	return cells, means
}

// colorizeCell applies the band color for a bucket mean. Split out so tests
// can assert on plain cells without ANSI escapes.
func colorizeCell(cell string, mean, minThreshold, maxThreshold float64) string {
	switch {
	case mean < minThreshold:
		return contract.TooColdColor.Sprint(cell)
	case mean > maxThreshold:
		return contract.TooHotColor.Sprint(cell)
	default:
		return cell
	}
}
