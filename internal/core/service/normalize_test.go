package service

import (
	"testing"
	"time"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

func TestHumanizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"InTransit", "In Transit"},
		{"some_tag", "some tag"},
		{"OutForDelivery", "Out For Delivery"},
		{"Delivered", "Delivered"},
		{"attempt_fail", "attempt fail"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := humanizeTag(tc.in); got != tc.want {
			t.Errorf("humanizeTag(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCheckpointLocation_FallbackChain(t *testing.T) {
	cases := []struct {
		name string
		cp   ports.CarrierCheckpoint
		want string
	}{
		{"location wins", ports.CarrierCheckpoint{Location: "Depot 4", City: "Lagos"}, "Depot 4"},
		{"city next", ports.CarrierCheckpoint{City: "Lagos", State: "LA"}, "Lagos"},
		{"state next", ports.CarrierCheckpoint{State: "CA", CountryName: "USA"}, "CA"},
		{"country last", ports.CarrierCheckpoint{CountryName: "Nigeria"}, "Nigeria"},
		{"all empty", ports.CarrierCheckpoint{}, "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checkpointLocation(tc.cp); got != tc.want {
				t.Errorf("checkpointLocation = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeCarrier_UsesMostRecentCheckpoint(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tracking := &ports.CarrierTracking{
		TrackingNumber: "DHL123",
		Tag:            "InTransit",
		Checkpoints: []ports.CarrierCheckpoint{
			{City: "Shenzhen"},
			{City: "Hong Kong"},
			{Location: "LAX Gateway", Coordinates: &domain.Coordinates{Lat: 33.94, Lng: -118.4}},
		},
		CreatedAt: now.Add(-72 * time.Hour),
		UpdatedAt: now.Add(-time.Hour),
	}

	res := normalizeCarrier(tracking, now)

	if res.ID != "DHL123" {
		t.Errorf("id = %q", res.ID)
	}
	if res.Status != "In Transit" {
		t.Errorf("status = %q, want In Transit", res.Status)
	}
	if res.Tag != "InTransit" {
		t.Errorf("tag = %q", res.Tag)
	}
	if res.Location != "LAX Gateway" {
		t.Errorf("location = %q, want the last checkpoint's location", res.Location)
	}
	if res.Coordinates == nil || res.Coordinates.Lat != 33.94 {
		t.Errorf("coordinates not taken from the last checkpoint: %+v", res.Coordinates)
	}
	if len(res.Checkpoints) != 3 {
		t.Errorf("checkpoints = %d, want 3", len(res.Checkpoints))
	}
	if res.Source != domain.SourceCarrier {
		t.Errorf("source = %q", res.Source)
	}
	if !res.CreatedAt.Equal(tracking.CreatedAt) || !res.UpdatedAt.Equal(tracking.UpdatedAt) {
		t.Errorf("timestamps not passed through")
	}
}

func TestNormalizeCarrier_NoCheckpoints(t *testing.T) {
	now := time.Now().UTC()
	res := normalizeCarrier(&ports.CarrierTracking{TrackingNumber: "X", Tag: ""}, now)

	if res.Location != "Unknown" {
		t.Errorf("location = %q, want Unknown", res.Location)
	}
	if res.Status != "Unknown" {
		t.Errorf("status = %q, want Unknown", res.Status)
	}
	if res.Coordinates != nil {
		t.Errorf("coordinates should be nil")
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Errorf("zero carrier timestamps should default to now")
	}
}

func TestDemoResult_FixedPayload(t *testing.T) {
	now := time.Now().UTC()
	res := demoResult("MYAPP12345", now)

	if res.ID != "MYAPP12345" {
		t.Errorf("id = %q", res.ID)
	}
	if res.Status != domain.StatusInTransit || res.Tag != "InTransit" {
		t.Errorf("status = %q tag = %q", res.Status, res.Tag)
	}
	if res.Location != "Distribution Center, Los Angeles, CA" {
		t.Errorf("location = %q", res.Location)
	}
	if res.Coordinates == nil || res.Coordinates.Lat != 34.0522 || res.Coordinates.Lng != -118.2437 {
		t.Errorf("coordinates = %+v", res.Coordinates)
	}
	if res.Source != domain.SourceDemo {
		t.Errorf("source = %q", res.Source)
	}
}
