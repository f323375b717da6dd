package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/drivers"
)

// DriversHandler handles HTTP requests for driver operations
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new drivers HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{driverUC: driverUC}
}

// SearchNearby handles GET /drivers/nearby?lat=&lng=&radius=&total=&session_id=&capture_once=
func (h *DriversHandler) SearchNearby(c echo.Context) error {
	var req models.NearbyDriversRequest
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Center.Latitude).
		MustFloat64("lng", &req.Center.Longitude).
		Float64("radius", &req.RadiusMeters).
		Int("total", &req.TotalDrivers).
		String("session_id", &req.SessionID).
		Bool("capture_once", &req.CaptureOnce).
		BindError()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query: "+err.Error())
	}

	result, err := h.driverUC.SearchNearbyDrivers(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, "Failed to search nearby drivers", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers found", result)
}

// FindWithin handles GET /drivers/within?lat=&lng=&radius= against the live feed
func (h *DriversHandler) FindWithin(c echo.Context) error {
	var center models.Coordinate
	var radius float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &center.Latitude).
		MustFloat64("lng", &center.Longitude).
		MustFloat64("radius", &radius).
		BindError()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query: "+err.Error())
	}

	result, err := h.driverUC.FindDriversWithinRadius(c.Request().Context(), center, radius)
	if err != nil {
		return h.handleError(c, "Failed to find drivers", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers found", result)
}

// UpdateLocation handles PUT /drivers/:id/location. Drivers may only move themselves.
func (h *DriversHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}
	if middleware.UserIDFromContext(c) != driverID {
		return utils.ForbiddenResponse(c, "Cannot update another driver's location")
	}

	var location models.Coordinate
	if err := c.Bind(&location); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.driverUC.UpdateDriverLocation(c.Request().Context(), driverID, location); err != nil {
		return h.handleError(c, "Failed to update driver location", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// GoOffline handles DELETE /drivers/:id/location. Drivers may only remove themselves.
func (h *DriversHandler) GoOffline(c echo.Context) error {
	if middleware.UserIDFromContext(c) != c.Param("id") {
		return utils.ForbiddenResponse(c, "Cannot remove another driver")
	}
	return h.RemoveDriver(c)
}

// RemoveDriver handles DELETE /internal/drivers/:id/location
func (h *DriversHandler) RemoveDriver(c echo.Context) error {
	if err := h.driverUC.RemoveDriver(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, "Failed to remove driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver removed", nil)
}

// GetLocation handles GET /drivers/:id/location
func (h *DriversHandler) GetLocation(c echo.Context) error {
	record, err := h.driverUC.GetDriverLocation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, "Failed to get driver location", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver location", record)
}

func (h *DriversHandler) handleError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, drivers.ErrInvalidCoordinate),
		errors.Is(err, drivers.ErrInvalidRadius),
		errors.Is(err, drivers.ErrSessionRequired),
		errors.Is(err, drivers.ErrDriverIDRequired):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, drivers.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	}

	logger.Error(msg,
		logger.String("path", c.Path()),
		logger.RequestID(c.Request().Context()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
