// Package samsara is a thin client for the vendor v1 sensors API. It decodes
// the wire JSON into schema.RawSample exactly once, at this boundary, so the
// pipeline never deals with missing keys or null series values itself.
package samsara

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jayarege/Samsarademo/internal/contract"
	"github.com/jayarege/Samsarademo/schema"
)

// Series field names understood by the history endpoint.
const (
	FieldAmbientTemperature = "ambientTemperature"
	FieldDoorClosed         = "doorClosed"
)

const (
	historyTimeout = 15 * time.Second
	currentTimeout = 10 * time.Second
)

// Client calls the vendor sensor endpoints with bearer authentication.
// Retries and token refresh are deliberately out of scope; the caller
// supplies a working token.
type Client struct {
	baseURL      string
	token        string
	tempSensorID int64
	doorSensorID int64
	httpClient   *http.Client
	debug        *contract.DebugLog
}

var _ contract.SensorClient = (*Client)(nil) // Compile-time check

// NewClient builds a client from validated config. The debug log may be nil;
// when provided, every API call appends one diagnostic entry to it.
func NewClient(cfg *contract.Config, debug *contract.DebugLog) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		token:        cfg.APIToken,
		tempSensorID: cfg.TempSensorID,
		doorSensorID: cfg.DoorSensorID,
		httpClient:   &http.Client{Timeout: historyTimeout},
		debug:        debug,
	}
}

// historyRequest is the POST body for /v1/sensors/history.
type historyRequest struct {
	StartMs int64           `json:"startMs"`
	EndMs   int64           `json:"endMs"`
	StepMs  int64           `json:"stepMs"`
	Series  []historySeries `json:"series"`
}

type historySeries struct {
	Field    string `json:"field"`
	WidgetID int64  `json:"widgetId"`
}

// historyResponse mirrors the wire shape: each result optionally carries a
// timestamp and a series whose first element is null or a number.
type historyResponse struct {
	Results []historyResult `json:"results"`
}

type historyResult struct {
	TimeMs *int64     `json:"timeMs"`
	Series []*float64 `json:"series"`
}

// TemperatureHistory fetches raw ambient temperature samples (milli-Celsius)
// for the range at the fixed one-minute step.
func (c *Client) TemperatureHistory(ctx context.Context, start, end time.Time) ([]schema.RawSample, error) {
	return c.history(ctx, FieldAmbientTemperature, c.tempSensorID, start, end)
}

// DoorHistory fetches raw door-closed samples (1/0/null) for the range.
func (c *Client) DoorHistory(ctx context.Context, start, end time.Time) ([]schema.RawSample, error) {
	return c.history(ctx, FieldDoorClosed, c.doorSensorID, start, end)
}

// history runs one /v1/sensors/history query and converts the results to
// RawSample. Record order is preserved as returned by the API.
func (c *Client) history(ctx context.Context, field string, widgetID int64, start, end time.Time) ([]schema.RawSample, error) {
	body := historyRequest{
		StartMs: start.UnixMilli(),
		EndMs:   end.UnixMilli(),
		StepMs:  schema.StepMs,
		Series:  []historySeries{{Field: field, WidgetID: widgetID}},
	}

	var resp historyResponse
	status, err := c.post(ctx, "/v1/sensors/history", body, &resp)
	c.debug.Appendf("[%s_history] POST /v1/sensors/history (startMs=%d, endMs=%d) -> %s",
		field, body.StartMs, body.EndMs, statusOrError(status, err))
	if err != nil {
		return nil, fmt.Errorf("history query for %s failed: %w", field, err)
	}

	samples := make([]schema.RawSample, 0, len(resp.Results))
	for _, r := range resp.Results {
		sample := schema.RawSample{TimeMs: r.TimeMs}
		if len(r.Series) > 0 {
			sample.Value = r.Series[0]
		}
		samples = append(samples, sample)
	}
	c.debug.Appendf("[%s_history] Got %d results", field, len(resp.Results))
	return samples, nil
}

// post sends one JSON POST and decodes the response into out. It returns the
// HTTP status code alongside any error so the debug log can record both.
func (c *Client) post(ctx context.Context, path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// statusOrError renders the outcome of a call for the debug log.
func statusOrError(status int, err error) string {
	if err != nil && status == 0 {
		return fmt.Sprintf("ERROR: %v", err)
	}
	return fmt.Sprintf("%d", status)
}
