package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Temperature status label constants.
const (
	TooColdValue = "Too Cold" // Below the minimum threshold
	InRangeValue = "In Range" // Within the threshold band
	TooHotValue  = "Too Hot"  // Above the maximum threshold
)

// Door status label constants.
const (
	DoorOpenValue   = "Open"
	DoorClosedValue = "Closed"
)

// Color variables for console output.
var (
	TooColdColor = color.New(color.FgBlue, color.Bold) // tooColdColor flags readings below the band.
	TooHotColor  = color.New(color.FgRed, color.Bold)  // tooHotColor flags readings above the band.
	InRangeColor = color.New(color.FgGreen)            // inRangeColor is the healthy default.
	DoorColor    = color.New(color.FgYellow, color.Bold)
)

// GetPlainTempLabel returns a plain text label for a temperature reading
// relative to the threshold band. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainTempLabel(fahrenheit, minThreshold, maxThreshold float64) string {
	switch {
	case fahrenheit < minThreshold:
		return TooColdValue
	case fahrenheit > maxThreshold:
		return TooHotValue
	default:
		return InRangeValue
	}
}

// GetColorTempLabel returns a colored label for console output (table).
// It uses GetPlainTempLabel to determine the string, then applies the color.
func GetColorTempLabel(fahrenheit, minThreshold, maxThreshold float64) string {
	text := GetPlainTempLabel(fahrenheit, minThreshold, maxThreshold)

	switch text {
	case TooColdValue:
		return TooColdColor.Sprint(text)
	case TooHotValue:
		return TooHotColor.Sprint(text)
	default: // "In Range"
		return InRangeColor.Sprint(text)
	}
}

// GetDoorLabel renders a door state, coloring the open state when colored
// output is requested since an open door is the thing worth noticing.
func GetDoorLabel(isOpen, useColors bool) string {
	if !isOpen {
		return DoorClosedValue
	}
	if useColors {
		return DoorColor.Sprint(DoorOpenValue)
	}
	return DoorOpenValue
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the reading store.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".samsarademo_readings.db"
	}
	return filepath.Join(homeDir, ".samsarademo_readings.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
