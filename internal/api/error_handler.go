// Package api wires the HTTP transport: routing, middleware and the central
// error handler.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Details is only populated for upstream carrier failures.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Upstream carrier failures keep the carrier's detail attached.
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway, errorResponse{
			Error:   "Carrier lookup failed",
			Details: upstream.Detail,
		}
	}

	// Known domain errors → deterministic HTTP codes. Tracking messages
	// keep their historical casing; clients match on them.
	switch {
	case errors.Is(err, domain.ErrTrackingIDRequired):
		return http.StatusBadRequest, errorResponse{Error: "Tracking ID is required"}
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		return http.StatusBadRequest, errorResponse{Error: "no fields to update"}
	case errors.Is(err, domain.ErrShipmentNotFound):
		return http.StatusNotFound, errorResponse{Error: "Shipment not found"}
	case errors.Is(err, domain.ErrDuplicateShipment):
		return http.StatusConflict, errorResponse{Error: "shipment already exists"}
	case errors.Is(err, domain.ErrCarrierNotConfigured):
		return http.StatusInternalServerError, errorResponse{Error: "Carrier API key not configured"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{Error: "too many requests"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
