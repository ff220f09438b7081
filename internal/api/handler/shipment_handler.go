package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyparcel/admin-api/internal/api/metrics"
	"github.com/skyparcel/admin-api/internal/core/domain"
	"github.com/skyparcel/admin-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for the console's shipment views.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /v1/shipments — the console's working list.
//
// @Summary      List active shipments
// @Description  Shipments past quoting/payment, delivered excluded, newest update first.
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring match on tracking number, pickup, delivery, or id"
// @Param        status  query     string  false  "Exact status filter; omit or 'all' for every active status"
// @Success      200     {object}  listShipmentsResponse
// @Failure      401     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}

	result, err := h.service.ListShipments(c.Request().Context(), ports.ListShipmentsInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	metrics.ListRequestsTotal.Inc()
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/shipments/:id — the detail modal payload.
//
// @Summary      Get a shipment by id
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shipment id"
// @Success      200  {object}  getShipmentResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}

	shipment, err := h.service.GetShipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGetResponse(shipment))
}

// UpdateStatus handles PATCH /v1/shipments/:id/status — a status transition.
//
// @Summary      Apply a status transition
// @Description  Transitions are checked against the allowed-transition table. The first move into in_transit mints the tracking number.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Shipment id"
// @Param        body  body      updateStatusRequest  true  "Target status and optional notes"
// @Success      200   {object}  updateStatusResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	if _, err := ctxRole(c); err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		metrics.StatusUpdateErrorsTotal.WithLabelValues(updateErrorReason(err)).Inc()
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(result.PreviousStatus, result.Status).Inc()
	return c.JSON(http.StatusOK, toUpdateResponse(result))
}

func updateErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrUnknownStatus):
		return "unknown_status"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "not_found"
	default:
		return "write_failed"
	}
}
