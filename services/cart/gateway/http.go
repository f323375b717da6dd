package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/flashfood/internal/pkg/http"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
)

// HTTPGateway talks to the orders service with the cart service's API key
type HTTPGateway struct {
	ordersClient *httpclient.APIKeyClient
}

// NewHTTPGateway creates a new HTTP gateway for the orders service
func NewHTTPGateway(ordersServiceURL string, config *models.APIKeyConfig) *HTTPGateway {
	return &HTTPGateway{
		ordersClient: httpclient.NewAPIKeyClient("cart-service", ordersServiceURL, config.CartService),
	}
}

// PlaceOrder submits an order draft to POST /internal/orders
func (gw *HTTPGateway) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.Order, error) {
	var response struct {
		Data models.Order `json:"data"`
	}
	if err := gw.ordersClient.PostJSON(ctx, "/internal/orders", req, &response); err != nil {
		logger.Error("Failed to place order",
			logger.String("customer_id", req.CustomerID),
			logger.String("restaurant_id", req.RestaurantID),
			logger.Err(err))
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	return &response.Data, nil
}
