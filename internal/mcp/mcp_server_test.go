package mcp_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jayarege/Samsarademo/internal/contract"
	mcp_internal "github.com/jayarege/Samsarademo/internal/mcp"
	"github.com/jayarege/Samsarademo/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient serves canned samples for handler tests.
type stubClient struct {
	tempSamples []schema.RawSample
	doorSamples []schema.RawSample
	fahrenheit  *float64
	doorClosed  *bool
}

var _ contract.SensorClient = (*stubClient)(nil)

func (c *stubClient) TemperatureHistory(_ context.Context, _, _ time.Time) ([]schema.RawSample, error) {
	return c.tempSamples, nil
}

func (c *stubClient) DoorHistory(_ context.Context, _, _ time.Time) ([]schema.RawSample, error) {
	return c.doorSamples, nil
}

func (c *stubClient) CurrentTemperature(_ context.Context) (*float64, error) {
	return c.fahrenheit, nil
}

func (c *stubClient) CurrentDoorClosed(_ context.Context) (*bool, error) {
	return c.doorClosed, nil
}

func i64Ptr(v int64) *int64     { return &v }
func f64Ptr(v float64) *float64 { return &v }

func testBaseCfg(t *testing.T) *contract.Config {
	t.Helper()
	zone, err := time.LoadLocation(schema.DefaultTimezone)
	require.NoError(t, err)
	return &contract.Config{
		Zone:         zone,
		StartTime:    time.UnixMilli(0).In(zone),
		EndTime:      time.UnixMilli(600000).In(zone),
		MinThreshold: schema.DefaultMinThreshold,
		MaxThreshold: schema.DefaultMaxThreshold,
	}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	return tool.Handler(context.Background(), req)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := testBaseCfg(t)
	client := &stubClient{}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	t.Run("get_range_report start without end", func(t *testing.T) {
		res, err := callTool(t, s, "get_range_report", map[string]any{
			"start": "2026-08-01T00:00:00-07:00",
		})
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "together")
	})

	t.Run("get_range_report garbage last", func(t *testing.T) {
		res, err := callTool(t, s, "get_range_report", map[string]any{
			"last": "two hours",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "Invalid range")
	})

	t.Run("get_door_events inverted range", func(t *testing.T) {
		res, err := callTool(t, s, "get_door_events", map[string]any{
			"start": "2026-08-02T00:00:00-07:00",
			"end":   "2026-08-01T00:00:00-07:00",
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "must be before")
	})
}

func TestMCPServerHandlers_RangeReport(t *testing.T) {
	baseCfg := testBaseCfg(t)
	client := &stubClient{
		tempSamples: []schema.RawSample{
			{TimeMs: i64Ptr(60000), Value: f64Ptr(21398)},
			{TimeMs: i64Ptr(120000), Value: f64Ptr(30000)},
		},
		doorSamples: []schema.RawSample{
			{TimeMs: i64Ptr(60000), Value: f64Ptr(1)},
			{TimeMs: i64Ptr(120000), Value: f64Ptr(0)},
		},
	}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	res, err := callTool(t, s, "get_range_report", map[string]any{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var report schema.MonitorReport
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &report))
	assert.Len(t, report.Points, 2)
	assert.Len(t, report.DoorEvents, 2)
	require.NotNil(t, report.Summary.Min)
	assert.InDelta(t, 70.5, *report.Summary.Min, 0.0001)
	assert.Equal(t, 1, report.Summary.OutOfRange)
}

func TestMCPServerHandlers_CurrentStatus(t *testing.T) {
	baseCfg := testBaseCfg(t)
	closed := true
	client := &stubClient{fahrenheit: f64Ptr(70.5), doorClosed: &closed}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	res, err := callTool(t, s, "get_current_status", map[string]any{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var snapshot schema.SensorSnapshot
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &snapshot))
	require.NotNil(t, snapshot.Fahrenheit)
	assert.InDelta(t, 70.5, *snapshot.Fahrenheit, 0.0001)
	require.NotNil(t, snapshot.DoorClosed)
	assert.True(t, *snapshot.DoorClosed)
}

func TestMCPServerHandlers_DoorEvents(t *testing.T) {
	baseCfg := testBaseCfg(t)
	client := &stubClient{
		doorSamples: []schema.RawSample{
			{TimeMs: i64Ptr(60000), Value: f64Ptr(1)},
			{TimeMs: i64Ptr(120000), Value: f64Ptr(0)},
			{TimeMs: i64Ptr(180000), Value: f64Ptr(0)},
			{TimeMs: i64Ptr(240000), Value: f64Ptr(1)},
		},
	}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	res, err := callTool(t, s, "get_door_events", map[string]any{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var events []schema.DoorEvent
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &events))
	require.Len(t, events, 3)
	assert.False(t, events[0].IsOpen)
	assert.True(t, events[1].IsOpen)
	assert.False(t, events[2].IsOpen)
}
