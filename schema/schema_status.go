package schema

import "time"

// StoreStatus describes the state of the reading store backend.
type StoreStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Connected bool            `json:"connected"`
	Runs      int             `json:"runs"`
	Points    int             `json:"points"`
	Events    int             `json:"events"`
	OldestRun time.Time       `json:"oldest_run"`
	NewestRun time.Time       `json:"newest_run"`
}
