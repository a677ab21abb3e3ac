package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// CarrierHandler exposes admin operations against the carrier API.
type CarrierHandler struct {
	client ports.CarrierClient // nil when no API key is configured
}

func NewCarrierHandler(client ports.CarrierClient) *CarrierHandler {
	return &CarrierHandler{client: client}
}

// CreateTracking handles POST /v1/carrier/trackings — registers a tracking
// number with the carrier so it starts collecting checkpoints.
//
// @Summary      Register a tracking number with the carrier
// @Tags         carrier
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTrackingRequest  true  "Tracking number and carrier slug (e.g. dhl)"
// @Success      201   {object}  createTrackingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/carrier/trackings [post]
func (h *CarrierHandler) CreateTracking(c echo.Context) error {
	var req createTrackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.client == nil {
		return domain.ErrCarrierNotConfigured
	}

	tracking, err := h.client.CreateTracking(c.Request().Context(), req.TrackingNumber, req.Slug)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createTrackingResponse{
		TrackingNumber: tracking.TrackingNumber,
		Tag:            tracking.Tag,
	})
}
