package samsara

import (
	"context"
	"fmt"

	"github.com/jayarege/Samsarademo/core"
)

// currentRequest is the POST body for the current-value endpoints.
type currentRequest struct {
	Sensors []int64 `json:"sensors"`
}

// currentResponse mirrors the wire shape of /v1/sensors/temperature and
// /v1/sensors/door. Only the fields this client reads are decoded.
type currentResponse struct {
	Sensors []struct {
		AmbientTemperature *int64 `json:"ambientTemperature"`
		DoorClosed         *bool  `json:"doorClosed"`
	} `json:"sensors"`
}

// CurrentTemperature returns the latest reading converted to Fahrenheit, or
// nil when the sensor reported nothing.
func (c *Client) CurrentTemperature(ctx context.Context) (*float64, error) {
	ctx, cancel := context.WithTimeout(ctx, currentTimeout)
	defer cancel()

	var resp currentResponse
	status, err := c.post(ctx, "/v1/sensors/temperature", currentRequest{Sensors: []int64{c.tempSensorID}}, &resp)
	c.debug.Appendf("[current_temp] POST /v1/sensors/temperature -> %s", statusOrError(status, err))
	if err != nil {
		return nil, fmt.Errorf("current temperature query failed: %w", err)
	}
	if len(resp.Sensors) == 0 || resp.Sensors[0].AmbientTemperature == nil {
		return nil, nil
	}
	fahrenheit := core.ToFahrenheit(*resp.Sensors[0].AmbientTemperature)
	return &fahrenheit, nil
}

// CurrentDoorClosed returns the latest door state. A sensor present in the
// response but without a doorClosed value defaults to closed, the same
// fail-safe the history pipeline applies.
func (c *Client) CurrentDoorClosed(ctx context.Context) (*bool, error) {
	ctx, cancel := context.WithTimeout(ctx, currentTimeout)
	defer cancel()

	var resp currentResponse
	status, err := c.post(ctx, "/v1/sensors/door", currentRequest{Sensors: []int64{c.doorSensorID}}, &resp)
	c.debug.Appendf("[current_door] POST /v1/sensors/door -> %s", statusOrError(status, err))
	if err != nil {
		return nil, fmt.Errorf("current door query failed: %w", err)
	}
	if len(resp.Sensors) == 0 {
		return nil, nil
	}
	closed := true
	if resp.Sensors[0].DoorClosed != nil {
		closed = *resp.Sensors[0].DoorClosed
	}
	return &closed, nil
}
