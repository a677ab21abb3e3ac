package domain

import "time"

// Source identifies which backend produced a tracking result.
type Source string

const (
	SourceLocal   Source = "local"
	SourceCarrier Source = "carrier"
	SourceDemo    Source = "demo"
)

// Checkpoint is a timestamped location event reported by the carrier.
type Checkpoint struct {
	Location    string       `json:"location,omitempty"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	CountryName string       `json:"country_name,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Time        time.Time    `json:"checkpoint_time,omitempty"`
}

// TrackingResult is the canonical response returned to callers regardless of
// data source. It is never persisted: carrier-sourced results are returned
// directly and not written back into the shipment store.
type TrackingResult struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	Tag         string       `json:"tag,omitempty"` // raw carrier tag, carrier/demo only
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
	Source      Source       `json:"source"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
