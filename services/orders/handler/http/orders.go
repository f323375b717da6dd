package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/orders"
)

// OrdersHandler handles HTTP requests for orders
type OrdersHandler struct {
	orderUC orders.OrderUC
}

// NewOrdersHandler creates a new orders HTTP handler
func NewOrdersHandler(orderUC orders.OrderUC) *OrdersHandler {
	return &OrdersHandler{orderUC: orderUC}
}

// PlaceOrder handles POST /orders. The customer is always the token's user.
func (h *OrdersHandler) PlaceOrder(c echo.Context) error {
	var req models.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.CustomerID = middleware.UserIDFromContext(c)

	return h.placeOrder(c, req)
}

// PlaceInternalOrder handles POST /internal/orders from the cart service
func (h *OrdersHandler) PlaceInternalOrder(c echo.Context) error {
	var req models.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	return h.placeOrder(c, req)
}

func (h *OrdersHandler) placeOrder(c echo.Context, req models.PlaceOrderRequest) error {
	order, err := h.orderUC.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, "Failed to place order", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order placed", order)
}

// GetOrder handles GET /orders/:id for the order's customer or restaurant
func (h *OrdersHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, "Failed to get order", err)
	}

	userID := middleware.UserIDFromContext(c)
	switch middleware.RoleFromContext(c) {
	case jwtpkg.RoleCustomer:
		if order.CustomerID == userID {
			return utils.SuccessResponse(c, http.StatusOK, "Order retrieved", order)
		}
	case jwtpkg.RoleRestaurant:
		if order.RestaurantID == userID {
			return utils.SuccessResponse(c, http.StatusOK, "Order retrieved", order)
		}
	}
	return utils.ForbiddenResponse(c, "Order belongs to another user")
}

// ListRestaurantOrders handles GET /restaurants/:id/orders?status=
func (h *OrdersHandler) ListRestaurantOrders(c echo.Context) error {
	restaurantID := c.Param("id")
	if restaurantID != middleware.UserIDFromContext(c) {
		return utils.ForbiddenResponse(c, "Cannot list another restaurant's orders")
	}

	status := models.TrackingStatus(c.QueryParam("status"))
	list, err := h.orderUC.ListRestaurantOrders(c.Request().Context(), restaurantID, status)
	if err != nil {
		return h.handleError(c, "Failed to list orders", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Orders retrieved", list)
}

// UpdateTrackingStatus handles PATCH /orders/:id/status
func (h *OrdersHandler) UpdateTrackingStatus(c echo.Context) error {
	var req models.UpdateTrackingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.orderUC.UpdateTrackingStatus(c.Request().Context(),
		middleware.UserIDFromContext(c), c.Param("id"), req)
	if err != nil {
		return h.handleError(c, "Failed to update order status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order status updated", order)
}

func (h *OrdersHandler) handleError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, orders.ErrNotOrderOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, orders.ErrInvalidTransition):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, orders.ErrInvalidOrderID),
		errors.Is(err, orders.ErrNoItems),
		errors.Is(err, orders.ErrInvalidItem),
		errors.Is(err, orders.ErrInvalidPaymentMethod),
		errors.Is(err, orders.ErrCustomerRequired),
		errors.Is(err, orders.ErrRestaurantRequired),
		errors.Is(err, orders.ErrAddressRequired),
		errors.Is(err, orders.ErrInvalidStatus):
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.Error(msg,
		logger.String("path", c.Path()),
		logger.RequestID(c.Request().Context()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
