package service

import (
	"strings"
	"time"
	"unicode"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

const unknownValue = "Unknown"

// humanizeTag converts a raw carrier tag into a display status: underscores
// become spaces and a space is inserted at every lower-to-upper boundary
// ("InTransit" -> "In Transit", "some_tag" -> "some tag"). Empty tags map
// to "Unknown".
func humanizeTag(tag string) string {
	if tag == "" {
		return unknownValue
	}

	runes := []rune(strings.ReplaceAll(tag, "_", " "))
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// checkpointLocation picks the best human-readable location from a
// checkpoint: location, then city, state, country name, "Unknown".
func checkpointLocation(cp ports.CarrierCheckpoint) string {
	switch {
	case cp.Location != "":
		return cp.Location
	case cp.City != "":
		return cp.City
	case cp.State != "":
		return cp.State
	case cp.CountryName != "":
		return cp.CountryName
	default:
		return unknownValue
	}
}

// normalizeCarrier reshapes a carrier payload into the canonical tracking
// result. The carrier orders checkpoints oldest-first, so the last element
// is the most recent and drives the headline location and coordinates.
func normalizeCarrier(t *ports.CarrierTracking, now time.Time) *domain.TrackingResult {
	res := &domain.TrackingResult{
		ID:        t.TrackingNumber,
		Tag:       t.Tag,
		Status:    humanizeTag(t.Tag),
		Location:  unknownValue,
		Source:    domain.SourceCarrier,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	if res.UpdatedAt.IsZero() {
		res.UpdatedAt = now
	}

	if n := len(t.Checkpoints); n > 0 {
		latest := t.Checkpoints[n-1]
		res.Location = checkpointLocation(latest)
		res.Coordinates = latest.Coordinates

		res.Checkpoints = make([]domain.Checkpoint, 0, n)
		for _, cp := range t.Checkpoints {
			res.Checkpoints = append(res.Checkpoints, domain.Checkpoint{
				Location:    cp.Location,
				City:        cp.City,
				State:       cp.State,
				CountryName: cp.CountryName,
				Coordinates: cp.Coordinates,
				Time:        cp.Time,
			})
		}
	}

	return res
}

// fromLocal returns the stored record verbatim as the canonical shape.
func fromLocal(s *domain.Shipment) *domain.TrackingResult {
	return &domain.TrackingResult{
		ID:          s.ID,
		Status:      s.Status,
		Location:    s.Location,
		Coordinates: s.Coordinates,
		Source:      domain.SourceLocal,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// demoResult synthesizes the fixed demo-mode payload returned when no real
// data source can answer.
func demoResult(trackingID string, now time.Time) *domain.TrackingResult {
	coords := &domain.Coordinates{Lat: 34.0522, Lng: -118.2437}
	location := "Distribution Center, Los Angeles, CA"
	return &domain.TrackingResult{
		ID:          trackingID,
		Tag:         "InTransit",
		Status:      domain.StatusInTransit,
		Location:    location,
		Coordinates: coords,
		Checkpoints: []domain.Checkpoint{{
			Location:    location,
			Coordinates: coords,
			Time:        now,
		}},
		Source:    domain.SourceDemo,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
