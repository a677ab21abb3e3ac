package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/track", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestResolveError_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"tracking id required", domain.ErrTrackingIDRequired, http.StatusBadRequest, "Tracking ID is required"},
		{"no fields to update", domain.ErrNoFieldsToUpdate, http.StatusBadRequest, "no fields to update"},
		{"shipment not found", domain.ErrShipmentNotFound, http.StatusNotFound, "Shipment not found"},
		{"duplicate shipment", domain.ErrDuplicateShipment, http.StatusConflict, "shipment already exists"},
		{"carrier unconfigured", domain.ErrCarrierNotConfigured, http.StatusInternalServerError, "Carrier API key not configured"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext()
			code, resp := resolveError(tc.err, zerolog.Nop(), c)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if resp.Error != tc.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error, tc.wantMsg)
			}
		})
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	c, _ := newTestContext()
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrShipmentNotFound)
	code, resp := resolveError(wrapped, zerolog.Nop(), c)
	if code != http.StatusNotFound || resp.Error != "Shipment not found" {
		t.Fatalf("got %d %q", code, resp.Error)
	}
}

func TestResolveError_Upstream(t *testing.T) {
	c, _ := newTestContext()
	err := &domain.UpstreamError{StatusCode: 503, Detail: "carrier maintenance window"}
	code, resp := resolveError(err, zerolog.Nop(), c)
	if code != http.StatusBadGateway {
		t.Errorf("code = %d, want 502", code)
	}
	if resp.Error != "Carrier lookup failed" {
		t.Errorf("message = %q", resp.Error)
	}
	if resp.Details != "carrier maintenance window" {
		t.Errorf("details = %q", resp.Details)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	c, _ := newTestContext()
	code, resp := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), zerolog.Nop(), c)
	if code != http.StatusUnauthorized || resp.Error != "missing authorization header" {
		t.Fatalf("got %d %q", code, resp.Error)
	}
}

func TestResolveError_Unknown(t *testing.T) {
	c, _ := newTestContext()
	code, resp := resolveError(errors.New("driver: bad connection"), zerolog.Nop(), c)
	if code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", code)
	}
	if resp.Error != "internal server error" {
		t.Errorf("internal cause leaked: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_WritesEnvelope(t *testing.T) {
	c, rec := newTestContext()
	h := NewHTTPErrorHandler(zerolog.Nop())
	h(domain.ErrShipmentNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "Shipment not found" {
		t.Fatalf("message = %q", resp.Error)
	}
}
