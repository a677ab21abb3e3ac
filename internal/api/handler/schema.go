package handler

import (
	"time"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// errorResponse documents the standard error envelope returned on all
// 4xx/5xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Tracking ---

type trackRequest struct {
	TrackingID string `json:"tracking_id"`
}

// trackResponse is the canonical tracking shape, identical for local,
// carrier and demo sourced results.
type trackResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	StatusStyle domain.StatusStyle  `json:"status_style"`
	Tag         string              `json:"tag,omitempty"`
	Location    string              `json:"location"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Checkpoints []domain.Checkpoint `json:"checkpoints,omitempty"`
	Source      domain.Source       `json:"source"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func toTrackResponse(r *domain.TrackingResult) trackResponse {
	return trackResponse{
		ID:          r.ID,
		Status:      r.Status,
		StatusStyle: domain.StyleFor(r.Status),
		Tag:         r.Tag,
		Location:    r.Location,
		Coordinates: r.Coordinates,
		Checkpoints: r.Checkpoints,
		Source:      r.Source,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// --- Shipments ---

type createShipmentRequest struct {
	ID       string `json:"id"       validate:"required"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type updateShipmentRequest struct {
	Status   *string `json:"status"`
	Location *string `json:"location"`
}

type shipmentResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	StatusStyle domain.StatusStyle  `json:"status_style"`
	Location    string              `json:"location"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:          s.ID,
		Status:      s.Status,
		StatusStyle: domain.StyleFor(s.Status),
		Location:    s.Location,
		Coordinates: s.Coordinates,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// --- Carrier ---

type createTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
	Slug           string `json:"slug"            validate:"required"`
}

type createTrackingResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Tag            string `json:"tag,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin client"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token        string              `json:"token,omitempty"`
	User         *domain.User        `json:"user,omitempty"`
	Capabilities domain.Capabilities `json:"capabilities"`
}
