package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// Mode selects the failure policy for carrier lookups. It is fixed at
// startup and never branched on ad hoc.
type Mode string

const (
	// ModeStrict surfaces carrier and configuration failures to the caller.
	ModeStrict Mode = "strict"
	// ModeDemo substitutes a fixed synthetic result for any carrier-side
	// failure. Never use in production: it masks real upstream errors.
	ModeDemo Mode = "demo"
)

// ParseMode maps a config string to a Mode, defaulting to strict.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeDemo {
		return ModeDemo
	}
	return ModeStrict
}

// TrackingService resolves tracking identifiers against the local store
// first, then the carrier API. Carrier results are never written back to
// the store: locally created rows own their identifiers and a write-back
// would collide with them.
type TrackingService struct {
	repo    ports.ShipmentRepository
	carrier ports.CarrierClient // nil when no API key is configured
	mode    Mode
	now     func() time.Time
	logger  zerolog.Logger
}

func NewTrackingService(repo ports.ShipmentRepository, carrier ports.CarrierClient, mode Mode, logger zerolog.Logger) *TrackingService {
	if mode == "" {
		mode = ModeStrict
	}
	return &TrackingService{
		repo:    repo,
		carrier: carrier,
		mode:    mode,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// Track implements ports.TrackingService. Resolution order: local store,
// carrier API, then (demo mode only) a synthetic fallback.
func (s *TrackingService) Track(ctx context.Context, trackingID string) (*domain.TrackingResult, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, domain.ErrTrackingIDRequired
	}

	local, err := s.repo.FindPublic(ctx, trackingID)
	if err == nil {
		return fromLocal(local), nil
	}
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		// A store outage should not take public tracking down with it;
		// log and try the carrier.
		s.logger.Error().Err(err).Str("tracking_id", trackingID).Msg("local lookup failed")
	}

	result, err := s.carrierLookup(ctx, trackingID)
	if err == nil {
		return result, nil
	}

	if s.mode == ModeDemo {
		s.logger.Warn().Err(err).Str("tracking_id", trackingID).Msg("carrier lookup failed, serving demo data")
		return demoResult(trackingID, s.now()), nil
	}

	if errors.Is(err, domain.ErrShipmentNotFound) {
		return nil, domain.ErrShipmentNotFound
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		s.logger.Error().Err(err).Str("tracking_id", trackingID).Int("upstream_status", upstream.StatusCode).Msg("carrier lookup failed")
	}
	return nil, err
}

func (s *TrackingService) carrierLookup(ctx context.Context, trackingID string) (*domain.TrackingResult, error) {
	if s.carrier == nil {
		return nil, domain.ErrCarrierNotConfigured
	}

	tracking, err := s.carrier.GetTracking(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return normalizeCarrier(tracking, s.now()), nil
}
