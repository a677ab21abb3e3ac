// Package carrier implements the third-party shipment-tracking API client.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.aftership.com/v4"
	defaultTimeout = 8 * time.Second

	headerAPIKey = "aftership-api-key"
)

// AfterShipClient calls the AfterShip v4 REST API. Requests are single-shot:
// a failed lookup is reported once per user action, never retried.
type AfterShipClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewAfterShipClient(apiKey, baseURL string, timeout time.Duration, logger zerolog.Logger) *AfterShipClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AfterShipClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// --- wire types ---

type metaPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type trackingEnvelope struct {
	Meta metaPayload `json:"meta"`
	Data struct {
		Tracking *trackingPayload `json:"tracking"`
	} `json:"data"`
}

type trackingPayload struct {
	TrackingNumber string              `json:"tracking_number"`
	Tag            string              `json:"tag"`
	Checkpoints    []checkpointPayload `json:"checkpoints"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type checkpointPayload struct {
	Location       string              `json:"location"`
	City           string              `json:"city"`
	State          string              `json:"state"`
	CountryName    string              `json:"country_name"`
	Coordinates    *coordinatesPayload `json:"coordinates"`
	CheckpointTime string              `json:"checkpoint_time"`
}

type coordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// checkpoint timestamps arrive without a zone; AfterShip reports them in the
// checkpoint's local time.
var checkpointTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseCheckpointTime(s string) time.Time {
	for _, layout := range checkpointTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// GetTracking fetches live tracking data for a tracking number.
func (c *AfterShipClient) GetTracking(ctx context.Context, trackingNumber string) (*ports.CarrierTracking, error) {
	endpoint := fmt.Sprintf("%s/trackings/%s", c.baseURL, url.PathEscape(trackingNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build carrier request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrShipmentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("tracking_number", trackingNumber).Msg("carrier returned error")
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: upstreamDetail(body)}
	}

	var envelope trackingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("malformed response: %v", err)}
	}
	if envelope.Data.Tracking == nil {
		return nil, domain.ErrShipmentNotFound
	}

	return toCarrierTracking(envelope.Data.Tracking), nil
}

// CreateTracking registers a tracking number with the carrier.
func (c *AfterShipClient) CreateTracking(ctx context.Context, trackingNumber, slug string) (*ports.CarrierTracking, error) {
	payload := map[string]any{
		"tracking": map[string]string{
			"tracking_number": trackingNumber,
			"slug":            slug,
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode carrier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/trackings", bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build carrier request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("tracking_number", trackingNumber).Msg("carrier rejected tracking creation")
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: upstreamDetail(body)}
	}

	var envelope trackingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("malformed response: %v", err)}
	}
	if envelope.Data.Tracking == nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: "response missing tracking"}
	}

	return toCarrierTracking(envelope.Data.Tracking), nil
}

func (c *AfterShipClient) setHeaders(req *http.Request) {
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// upstreamDetail extracts the carrier's own error message when present,
// falling back to a body snippet.
func upstreamDetail(body []byte) string {
	var envelope trackingEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Meta.Message != "" {
		return envelope.Meta.Message
	}
	const maxSnippet = 200
	if len(body) > maxSnippet {
		body = body[:maxSnippet]
	}
	return string(body)
}

func toCarrierTracking(p *trackingPayload) *ports.CarrierTracking {
	t := &ports.CarrierTracking{
		TrackingNumber: p.TrackingNumber,
		Tag:            p.Tag,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, cp := range p.Checkpoints {
		converted := ports.CarrierCheckpoint{
			Location:    cp.Location,
			City:        cp.City,
			State:       cp.State,
			CountryName: cp.CountryName,
			Time:        parseCheckpointTime(cp.CheckpointTime),
		}
		if cp.Coordinates != nil {
			converted.Coordinates = &domain.Coordinates{Lat: cp.Coordinates.Lat, Lng: cp.Coordinates.Lng}
		}
		t.Checkpoints = append(t.Checkpoints, converted)
	}
	return t
}
