package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ShipmentService implements shipment CRUD for the admin dashboard.
type ShipmentService struct {
	repo   ports.ShipmentRepository
	logger zerolog.Logger
}

func NewShipmentService(repo ports.ShipmentRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, logger: logger}
}

// Create inserts a new shipment. The tracking identifier is caller-supplied
// and must be unique; a concurrent create with the same id loses with
// domain.ErrDuplicateShipment via the store's uniqueness constraint.
func (s *ShipmentService) Create(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, domain.ErrTrackingIDRequired
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		ID:        id,
		Status:    status,
		Location:  input.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		if err != domain.ErrDuplicateShipment {
			s.logger.Error().Err(err).Str("id", id).Msg("failed to create shipment")
		}
		return nil, err
	}

	s.logger.Info().Str("id", id).Str("status", status).Msg("shipment created")
	return shipment, nil
}

// Get returns the full shipment record.
func (s *ShipmentService) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrTrackingIDRequired
	}
	return s.repo.FindByID(ctx, id)
}

// List returns a page of shipments ordered by creation time descending.
func (s *ShipmentService) List(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListShipmentsFilter{
		Status: input.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list shipments")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update patches status and/or location on an existing shipment and bumps
// updated_at. At least one field must be supplied.
func (s *ShipmentService) Update(ctx context.Context, input ports.UpdateShipmentInput) (*domain.Shipment, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, domain.ErrTrackingIDRequired
	}
	if input.Status == nil && input.Location == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	updated, err := s.repo.Update(ctx, input.ID, ports.ShipmentPatch{
		Status:   input.Status,
		Location: input.Location,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", updated.ID).Str("status", updated.Status).Msg("shipment updated")
	return updated, nil
}

// Delete removes a shipment. Deleting a nonexistent id reports
// domain.ErrShipmentNotFound and changes nothing.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrTrackingIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("shipment deleted")
	return nil
}
