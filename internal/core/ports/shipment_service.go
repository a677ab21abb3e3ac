package ports

import (
	"context"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// CreateShipmentInput carries all data needed to create a new shipment.
// The tracking identifier is caller-supplied; Status defaults to Pending
// when empty.
type CreateShipmentInput struct {
	ID       string
	Status   string
	Location string
}

// UpdateShipmentInput patches an existing shipment. Only status and location
// may change; nil fields are left untouched.
type UpdateShipmentInput struct {
	ID       string
	Status   *string
	Location *string
}

// ListShipmentsInput carries all parameters for the list endpoint.
type ListShipmentsInput struct {
	Status string
	Page   int
	Limit  int
}

// ListShipmentsResult is returned by List.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipment management.
type ShipmentService interface {
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	List(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	Update(ctx context.Context, input UpdateShipmentInput) (*domain.Shipment, error)
	Delete(ctx context.Context, id string) error
}
