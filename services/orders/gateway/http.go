package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	httpclient "github.com/piresc/flashfood/internal/pkg/http"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
)

// HTTPGateway talks to the drivers service with the orders service's API key
type HTTPGateway struct {
	driversClient *httpclient.APIKeyClient
}

// NewHTTPGateway creates a new HTTP gateway for the drivers service
func NewHTTPGateway(driversServiceURL string, config *models.APIKeyConfig) *HTTPGateway {
	return &HTTPGateway{
		driversClient: httpclient.NewAPIKeyClient("orders-service", driversServiceURL, config.OrdersService),
	}
}

// FindDriversWithinRadius asks the drivers service for drivers around center
func (gw *HTTPGateway) FindDriversWithinRadius(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]models.DriverRecord, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(center.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(center.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.FormatFloat(radiusMeters, 'f', -1, 64))

	var response struct {
		Data []models.DriverRecord `json:"data"`
	}
	if err := gw.driversClient.GetJSON(ctx, "/internal/drivers/within?"+query.Encode(), &response); err != nil {
		logger.Error("Failed to find drivers within radius",
			logger.Float64("radius_meters", radiusMeters),
			logger.Err(err))
		return nil, fmt.Errorf("failed to find drivers within radius: %w", err)
	}

	if response.Data == nil {
		return []models.DriverRecord{}, nil
	}
	return response.Data, nil
}
