package ports

import (
	"context"
	"time"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// CarrierCheckpoint is a single location event as reported by the carrier
// API, before normalization.
type CarrierCheckpoint struct {
	Location    string
	City        string
	State       string
	CountryName string
	Coordinates *domain.Coordinates
	Time        time.Time
}

// CarrierTracking is the carrier's view of a tracking number. Checkpoints
// are ordered oldest-first, matching the upstream API.
type CarrierTracking struct {
	TrackingNumber string
	Tag            string
	Checkpoints    []CarrierCheckpoint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CarrierClient talks to the third-party shipment-tracking API.
type CarrierClient interface {
	// GetTracking fetches live tracking data for a tracking number.
	// Returns domain.ErrShipmentNotFound when the carrier has no record,
	// or *domain.UpstreamError on any other failure.
	GetTracking(ctx context.Context, trackingNumber string) (*CarrierTracking, error)
	// CreateTracking registers a tracking number with the carrier so it
	// starts collecting checkpoints for it.
	CreateTracking(ctx context.Context, trackingNumber, slug string) (*CarrierTracking, error)
}

// TrackingService resolves a tracking identifier into the canonical result,
// consulting the local store first and the carrier API on a miss.
type TrackingService interface {
	Track(ctx context.Context, trackingID string) (*domain.TrackingResult, error)
}
