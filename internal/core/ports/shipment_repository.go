package ports

import (
	"context"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
type ListShipmentsFilter struct {
	Status string // optional: filter by shipment status
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// ShipmentPatch holds the fields an update may change. Nil means "leave as is".
// Only status and location are patchable; everything else is immutable after
// creation.
type ShipmentPatch struct {
	Status   *string
	Location *string
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	// FindPublic retrieves a shipment through the restricted public
	// projection: only id, status, location and timestamps are populated.
	// Coordinates and any internal fields are withheld from anonymous
	// tracking lookups.
	FindPublic(ctx context.Context, id string) (*domain.Shipment, error)
	// List returns a page of shipments ordered by creation time descending,
	// plus the total count of matches.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
	// Update applies the patch and returns the updated record.
	Update(ctx context.Context, id string, patch ShipmentPatch) (*domain.Shipment, error)
	Delete(ctx context.Context, id string) error
}
