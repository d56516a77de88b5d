// Package core has the data normalization and door-event-detection pipeline.
//
// Everything here is a pure, synchronous transform over already-fetched
// samples: the series builder, door extractor, range analyzer and interval
// deriver share no state and may run concurrently on independent inputs.
// The Execute* functions are the orchestration entry points wired to the CLI.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/internal/outwriter"
	"github.com/jayarege/Samsarademo/schema"
)

// ExecuteReport fetches both sensor histories for the configured range, runs
// the pipeline, optionally persists the run, and prints the report. It serves
// as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.SensorClient, store contract.ReadingStore, debug *contract.DebugLog) error {
	start := time.Now()

	tempSamples, err := client.TemperatureHistory(ctx, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return fmt.Errorf("temperature history fetch failed: %w", err)
	}
	doorSamples, err := client.DoorHistory(ctx, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return fmt.Errorf("door history fetch failed: %w", err)
	}

	report := BuildReport(tempSamples, doorSamples, cfg.Zone, cfg.StartTime, cfg.EndTime, cfg.MinThreshold, cfg.MaxThreshold)

	if store != nil {
		if _, err := store.RecordRun(&report); err != nil {
			// Persistence is best-effort; a broken store must not hide the report.
			contract.LogWarn("could not record run", err)
		}
	}

	duration := time.Since(start)
	if err := outwriter.PrintReport(&report, cfg, duration); err != nil {
		return err
	}
	if cfg.ShowDebug {
		outwriter.PrintDebugLog(debug.Entries())
	}
	return nil
}

// ExecuteStatus fetches the current temperature and door state and prints a
// snapshot. It serves as the main entry point for the 'status' command.
func ExecuteStatus(ctx context.Context, cfg *contract.Config, client contract.SensorClient, debug *contract.DebugLog) error {
	fahrenheit, err := client.CurrentTemperature(ctx)
	if err != nil {
		return fmt.Errorf("current temperature fetch failed: %w", err)
	}
	doorClosed, err := client.CurrentDoorClosed(ctx)
	if err != nil {
		return fmt.Errorf("current door fetch failed: %w", err)
	}

	snapshot := schema.SensorSnapshot{
		Fahrenheit: fahrenheit,
		DoorClosed: doorClosed,
		Taken:      time.Now().In(cfg.Zone),
	}
	if err := outwriter.PrintStatus(snapshot, cfg); err != nil {
		return err
	}
	if cfg.ShowDebug {
		outwriter.PrintDebugLog(debug.Entries())
	}
	return nil
}
