package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	byID      map[string]*domain.Shipment
	findErr   error // if set, FindPublic/FindByID return this error
	createErr error
	deleted   []string
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byID: make(map[string]*domain.Shipment)}
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byID[s.ID]; ok {
		return domain.ErrDuplicateShipment
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := *s
	return &clone, nil
}

// FindPublic mirrors the restricted projection: coordinates are withheld.
func (r *stubShipmentRepo) FindPublic(ctx context.Context, id string) (*domain.Shipment, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Coordinates = nil
	return s, nil
}

func (r *stubShipmentRepo) List(_ context.Context, f ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	var matched []*domain.Shipment
	for _, s := range r.byID {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	// newest first
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if matched[j].CreatedAt.After(matched[i].CreatedAt) {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}
	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip > len(matched) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubShipmentRepo) Update(_ context.Context, id string, patch ports.ShipmentPatch) (*domain.Shipment, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.Location != nil {
		s.Location = *patch.Location
	}
	s.UpdatedAt = time.Now().UTC()
	clone := *s
	return &clone, nil
}

func (r *stubShipmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrShipmentNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCarrier struct {
	tracking *ports.CarrierTracking
	err      error
	calls    int
}

func (c *stubCarrier) GetTracking(_ context.Context, _ string) (*ports.CarrierTracking, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.tracking, nil
}

func (c *stubCarrier) CreateTracking(_ context.Context, trackingNumber, _ string) (*ports.CarrierTracking, error) {
	return &ports.CarrierTracking{TrackingNumber: trackingNumber}, nil
}

var discardLogger = zerolog.Nop()

func seedShipment(repo *stubShipmentRepo, id string) *domain.Shipment {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	s := &domain.Shipment{
		ID:        id,
		Status:    domain.StatusPending,
		Location:  "Lagos",
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.byID[id] = s
	return s
}

// ---------------------------------------------------------------------------
// Track tests
// ---------------------------------------------------------------------------

func TestTrack_EmptyID(t *testing.T) {
	svc := NewTrackingService(newStubShipmentRepo(), nil, ModeStrict, discardLogger)

	for _, id := range []string{"", "   "} {
		if _, err := svc.Track(context.Background(), id); !errors.Is(err, domain.ErrTrackingIDRequired) {
			t.Errorf("Track(%q) err = %v, want ErrTrackingIDRequired", id, err)
		}
	}
}

func TestTrack_LocalHitNeverCallsCarrier(t *testing.T) {
	repo := newStubShipmentRepo()
	seeded := seedShipment(repo, "ABC123")
	carrier := &stubCarrier{tracking: &ports.CarrierTracking{TrackingNumber: "ABC123", Tag: "Delivered"}}
	svc := NewTrackingService(repo, carrier, ModeStrict, discardLogger)

	res, err := svc.Track(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}

	if carrier.calls != 0 {
		t.Errorf("carrier called %d times on a local hit", carrier.calls)
	}
	if res.Source != domain.SourceLocal {
		t.Errorf("source = %q, want local", res.Source)
	}
	if res.ID != seeded.ID || res.Status != seeded.Status || res.Location != seeded.Location {
		t.Errorf("local record not returned verbatim: %+v", res)
	}
	if !res.CreatedAt.Equal(seeded.CreatedAt) || !res.UpdatedAt.Equal(seeded.UpdatedAt) {
		t.Errorf("timestamps altered: %+v", res)
	}
}

func TestTrack_MissWithoutCredentialStrict(t *testing.T) {
	svc := NewTrackingService(newStubShipmentRepo(), nil, ModeStrict, discardLogger)

	_, err := svc.Track(context.Background(), "NOPE")
	if !errors.Is(err, domain.ErrCarrierNotConfigured) {
		t.Fatalf("err = %v, want ErrCarrierNotConfigured", err)
	}
}

func TestTrack_MissWithoutCredentialDemo(t *testing.T) {
	svc := NewTrackingService(newStubShipmentRepo(), nil, ModeDemo, discardLogger)

	res, err := svc.Track(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if res.Source != domain.SourceDemo {
		t.Errorf("source = %q, want demo", res.Source)
	}
	if res.ID != "NOPE" {
		t.Errorf("id = %q, want the requested tracking id", res.ID)
	}
}

func TestTrack_CarrierHit(t *testing.T) {
	repo := newStubShipmentRepo()
	carrier := &stubCarrier{tracking: &ports.CarrierTracking{
		TrackingNumber: "DHL9",
		Tag:            "OutForDelivery",
		Checkpoints:    []ports.CarrierCheckpoint{{City: "Austin"}},
	}}
	svc := NewTrackingService(repo, carrier, ModeStrict, discardLogger)

	res, err := svc.Track(context.Background(), "DHL9")
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if res.Source != domain.SourceCarrier {
		t.Errorf("source = %q, want carrier", res.Source)
	}
	if res.Status != "Out For Delivery" {
		t.Errorf("status = %q", res.Status)
	}
	if res.Location != "Austin" {
		t.Errorf("location = %q", res.Location)
	}
}

func TestTrack_TotalMiss(t *testing.T) {
	carrier := &stubCarrier{err: domain.ErrShipmentNotFound}
	svc := NewTrackingService(newStubShipmentRepo(), carrier, ModeStrict, discardLogger)

	_, err := svc.Track(context.Background(), "GONE")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("err = %v, want ErrShipmentNotFound", err)
	}
}

func TestTrack_UpstreamFailureStrict(t *testing.T) {
	carrier := &stubCarrier{err: &domain.UpstreamError{StatusCode: 503, Detail: "maintenance"}}
	svc := NewTrackingService(newStubShipmentRepo(), carrier, ModeStrict, discardLogger)

	_, err := svc.Track(context.Background(), "X1")
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.StatusCode != 503 || upstream.Detail != "maintenance" {
		t.Errorf("upstream = %+v", upstream)
	}
}

func TestTrack_UpstreamFailureDemo(t *testing.T) {
	carrier := &stubCarrier{err: &domain.UpstreamError{StatusCode: 500, Detail: "boom"}}
	svc := NewTrackingService(newStubShipmentRepo(), carrier, ModeDemo, discardLogger)

	res, err := svc.Track(context.Background(), "X1")
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if res.Source != domain.SourceDemo {
		t.Errorf("source = %q, want demo", res.Source)
	}
}

func TestTrack_StoreOutageFallsThroughToCarrier(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.findErr = errors.New("connection reset")
	carrier := &stubCarrier{tracking: &ports.CarrierTracking{TrackingNumber: "Y2", Tag: "InTransit"}}
	svc := NewTrackingService(repo, carrier, ModeStrict, discardLogger)

	res, err := svc.Track(context.Background(), "Y2")
	if err != nil {
		t.Fatalf("Track error: %v", err)
	}
	if res.Source != domain.SourceCarrier {
		t.Errorf("source = %q, want carrier", res.Source)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"strict":  ModeStrict,
		"demo":    ModeDemo,
		" DEMO ":  ModeDemo,
		"":        ModeStrict,
		"invalid": ModeStrict,
	}
	for in, want := range cases {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %q, want %q", in, got, want)
		}
	}
}
