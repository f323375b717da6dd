package gateway

import (
	"github.com/piresc/flashfood/internal/pkg/models"
	nsqpkg "github.com/piresc/flashfood/internal/pkg/nsq"
	"github.com/piresc/flashfood/services/orders"
)

// OrderGW combines the NSQ publisher and the drivers service client
type OrderGW struct {
	*NSQGateway
	*HTTPGateway
}

// NewOrderGW creates the orders gateway
func NewOrderGW(publisher nsqpkg.Publisher, driversServiceURL string, config *models.APIKeyConfig) orders.OrderGW {
	return &OrderGW{
		NSQGateway:  NewNSQGateway(publisher),
		HTTPGateway: NewHTTPGateway(driversServiceURL, config),
	}
}
