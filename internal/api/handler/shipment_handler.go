package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dqexpress/courier-tracking/internal/api/metrics"
	"github.com/dqexpress/courier-tracking/internal/core/ports"
)

// ShipmentHandler handles the admin dashboard's shipment CRUD.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details; status defaults to Pending"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shipment, err := h.service.Create(c.Request().Context(), ports.CreateShipmentInput{
		ID:       req.ID,
		Status:   req.Status,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(shipment.Status).Inc()
	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Description  Returns shipments ordered by creation time descending.
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listShipmentsResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListShipmentsInput{
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	items := make([]shipmentResponse, 0, len(result.Items))
	for _, s := range result.Items {
		items = append(items, toShipmentResponse(s))
	}

	return c.JSON(http.StatusOK, listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/shipments/:id.
//
// @Summary      Get a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tracking identifier"
// @Success      200  {object}  shipmentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Update handles PATCH /v1/shipments/:id. Only status and location are
// patchable.
//
// @Summary      Update a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Tracking identifier"
// @Param        body  body      updateShipmentRequest  true  "Fields to patch"
// @Success      200   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/shipments/{id} [patch]
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	shipment, err := h.service.Update(c.Request().Context(), ports.UpdateShipmentInput{
		ID:       c.Param("id"),
		Status:   req.Status,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Delete handles DELETE /v1/shipments/:id.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Security     BearerAuth
// @Param        id  path  string  true  "Tracking identifier"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ShipmentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
