package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dqexpress/courier-tracking/internal/api/metrics"
	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// TrackingHandler serves the public tracking lookup.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles POST /v1/track — the public tracking lookup.
//
// @Summary      Look up a tracking identifier
// @Description  Resolves a tracking ID against the local shipment store first, then the carrier API. The response shape is identical regardless of source.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      trackRequest  true  "Tracking identifier"
// @Success      200   {object}  trackResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/track [post]
func (h *TrackingHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Track(c.Request().Context(), req.TrackingID)
	if err != nil {
		metrics.TrackingErrorsTotal.WithLabelValues(trackingErrorReason(err)).Inc()
		return err
	}

	metrics.TrackingLookupsTotal.WithLabelValues(string(result.Source)).Inc()
	return c.JSON(http.StatusOK, toTrackResponse(result))
}

func trackingErrorReason(err error) string {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrTrackingIDRequired):
		return "invalid_request"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCarrierNotConfigured):
		return "carrier_unconfigured"
	case errors.As(err, &upstream):
		return "upstream"
	default:
		return "internal"
	}
}
