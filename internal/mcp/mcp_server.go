// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the monitoring MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.SensorClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Samsara Monitor Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_range_report ---
	s.AddTool(mcp.NewTool("get_range_report",
		mcp.WithDescription("Fetch sensor history for a time range and return the cleaned temperature series, door transitions, open intervals and threshold statistics."),
		mcp.WithString("start", mcp.Description("Range start in RFC3339 (defaults to the configured live window).")),
		mcp.WithString("end", mcp.Description("Range end in RFC3339 (required when start is given).")),
		mcp.WithString("last", mcp.Description("Live window duration like '2h' or '45m', used when start/end are omitted.")),
	), h.handleGetRangeReport)

	// --- 2. Tool: get_current_status ---
	s.AddTool(mcp.NewTool("get_current_status",
		mcp.WithDescription("Read the current temperature and door state from the sensors."),
	), h.handleGetCurrentStatus)

	// --- 3. Tool: get_door_events ---
	s.AddTool(mcp.NewTool("get_door_events",
		mcp.WithDescription("Return the collapsed door open/close transition list for a time range."),
		mcp.WithString("start", mcp.Description("Range start in RFC3339.")),
		mcp.WithString("end", mcp.Description("Range end in RFC3339.")),
		mcp.WithString("last", mcp.Description("Live window duration like '2h', used when start/end are omitted.")),
	), h.handleGetDoorEvents)

	return s
}

// StartMCPServer starts the monitoring MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.SensorClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
