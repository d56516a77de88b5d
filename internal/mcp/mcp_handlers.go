package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jayarege/Samsarademo/core"
	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds the dependencies shared by all tool handlers. Each call
// resolves its own time range against the base configuration so concurrent
// tool invocations never mutate shared state.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.SensorClient
}

// resolveRange picks the queried window for a tool call. Explicit arguments
// win; with none given the base configuration's window is reused.
func (h *toolHandler) resolveRange(request mcp.CallToolRequest) (time.Time, time.Time, error) {
	start := request.GetString("start", "")
	end := request.GetString("end", "")
	last := request.GetString("last", "")

	if start == "" && end == "" && last == "" {
		return h.baseCfg.StartTime, h.baseCfg.EndTime, nil
	}
	return contract.ResolveRange(h.baseCfg.Zone, start, end, last)
}

func (h *toolHandler) handleGetRangeReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := h.resolveRange(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid range: %v", err)), nil
	}

	tempSamples, err := h.client.TemperatureHistory(ctx, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch temperature history: %v", err)), nil
	}
	doorSamples, err := h.client.DoorHistory(ctx, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch door history: %v", err)), nil
	}

	report := core.BuildReport(tempSamples, doorSamples, h.baseCfg.Zone, start, end,
		h.baseCfg.MinThreshold, h.baseCfg.MaxThreshold)

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize report: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCurrentStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fahrenheit, err := h.client.CurrentTemperature(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read current temperature: %v", err)), nil
	}
	doorClosed, err := h.client.CurrentDoorClosed(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read current door state: %v", err)), nil
	}

	snapshot := schema.SensorSnapshot{
		Fahrenheit: fahrenheit,
		DoorClosed: doorClosed,
		Taken:      time.Now().In(h.baseCfg.Zone),
	}

	jsonData, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize snapshot: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDoorEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := h.resolveRange(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid range: %v", err)), nil
	}

	doorSamples, err := h.client.DoorHistory(ctx, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch door history: %v", err)), nil
	}

	events := core.ExtractDoorEvents(doorSamples, h.baseCfg.Zone)
	jsonData, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize events: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
