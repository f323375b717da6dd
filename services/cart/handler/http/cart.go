package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/flashfood/internal/pkg/http"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/middleware"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/piresc/flashfood/services/cart"
)

// CartHandler handles HTTP requests for the customer's cart
type CartHandler struct {
	cartUC cart.CartUC
}

// NewCartHandler creates a new cart HTTP handler
func NewCartHandler(cartUC cart.CartUC) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	items, err := h.cartUC.GetCart(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return h.handleError(c, "Failed to get cart", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cart retrieved", items)
}

// GetGroupedCart handles GET /cart/grouped
func (h *CartHandler) GetGroupedCart(c echo.Context) error {
	grouped, err := h.cartUC.GetGroupedCart(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return h.handleError(c, "Failed to get cart", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cart retrieved", grouped)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	var item models.CartLineItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	items, err := h.cartUC.AddItem(c.Request().Context(), middleware.UserIDFromContext(c), item)
	if err != nil {
		return h.handleError(c, "Failed to add item to cart", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Item added to cart", items)
}

// RemoveItem handles DELETE /cart/items/:lineId
func (h *CartHandler) RemoveItem(c echo.Context) error {
	items, err := h.cartUC.RemoveItem(c.Request().Context(), middleware.UserIDFromContext(c), c.Param("lineId"))
	if err != nil {
		return h.handleError(c, "Failed to remove item from cart", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Item removed from cart", items)
}

// UpdateVariantQuantity handles PATCH /cart/items/:lineId/variants/:variantId
func (h *CartHandler) UpdateVariantQuantity(c echo.Context) error {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	req := models.UpdateQuantityRequest{
		LineID:    c.Param("lineId"),
		VariantID: c.Param("variantId"),
		Quantity:  body.Quantity,
	}
	items, err := h.cartUC.UpdateVariantQuantity(c.Request().Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return h.handleError(c, "Failed to update quantity", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Quantity updated", items)
}

// ToggleSelection handles POST /cart/selection/toggle
func (h *CartHandler) ToggleSelection(c echo.Context) error {
	var req models.ToggleSelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	selection, err := h.cartUC.ToggleSelection(c.Request().Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return h.handleError(c, "Failed to update selection", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Selection updated", selection)
}

// GetFavorites handles GET /cart/favorites
func (h *CartHandler) GetFavorites(c echo.Context) error {
	favorites, err := h.cartUC.GetFavoriteRestaurants(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return h.handleError(c, "Failed to get favorite restaurants", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favorite restaurants", favorites)
}

// ToggleFavorite handles POST /cart/favorites/toggle
func (h *CartHandler) ToggleFavorite(c echo.Context) error {
	var restaurant models.RestaurantSummary
	if err := c.Bind(&restaurant); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	favorites, err := h.cartUC.ToggleFavoriteRestaurant(c.Request().Context(), middleware.UserIDFromContext(c), restaurant)
	if err != nil {
		return h.handleError(c, "Failed to update favorite restaurants", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favorite restaurants updated", favorites)
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	order, err := h.cartUC.Checkout(c.Request().Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return h.handleError(c, "Failed to checkout", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order placed", order)
}

func (h *CartHandler) handleError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, cart.ErrVariantNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, cart.ErrMixedRestaurants),
		errors.Is(err, cart.ErrLineRestaurant):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, cart.ErrCustomerIDRequired):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, cart.ErrInvalidItem),
		errors.Is(err, cart.ErrInvalidVariant),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrEmptySelection),
		errors.Is(err, cart.ErrInvalidPaymentMethod),
		errors.Is(err, cart.ErrAddressRequired),
		errors.Is(err, cart.ErrRestaurantRequired):
		return utils.BadRequestResponse(c, err.Error())
	}

	// The orders service refused the draft; pass its 4xx through
	if code := httpclient.StatusCode(err); code >= 400 && code < 500 {
		return utils.ErrorResponseHandler(c, code, err.Error())
	}

	logger.Error(msg,
		logger.String("path", c.Path()),
		logger.RequestID(c.Request().Context()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
