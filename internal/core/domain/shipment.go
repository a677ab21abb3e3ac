package domain

import "time"

// Well-known shipment statuses. The set is open: operators can type any
// status in the dashboard and the carrier reports its own vocabulary, so
// unknown values are legal everywhere a status is handled.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusDelayed   = "Delayed"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Shipment is a tracked package record, keyed by its tracking identifier.
// Coordinates are only ever set on carrier-sourced results; locally created
// records carry no geo data.
type Shipment struct {
	ID          string       `json:"id" bson:"_id"`
	Status      string       `json:"status" bson:"status"`
	Location    string       `json:"location" bson:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

// StatusStyle names the display style a status renders with.
type StatusStyle string

const (
	StylePending   StatusStyle = "pending"
	StyleInTransit StatusStyle = "in-transit"
	StyleDelivered StatusStyle = "delivered"
	StyleDelayed   StatusStyle = "delayed"
	StyleDefault   StatusStyle = "default"
)

var statusStyles = map[string]StatusStyle{
	StatusPending:   StylePending,
	StatusInTransit: StyleInTransit,
	StatusDelivered: StyleDelivered,
	StatusDelayed:   StyleDelayed,
}

// StyleFor maps a status string to its display style. The mapping is total:
// unrecognized statuses get StyleDefault, never an error.
func StyleFor(status string) StatusStyle {
	if style, ok := statusStyles[status]; ok {
		return style
	}
	return StyleDefault
}
