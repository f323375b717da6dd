package usecase

import (
	"time"

	"github.com/piresc/flashfood/internal/pkg/metrics"
	"github.com/piresc/flashfood/services/cart"
)

// CartUC implements the cart use case interface
type CartUC struct {
	cartRepo cart.CartRepo
	cartGW   cart.CartGW
	metrics  *metrics.Collector
	now      func() time.Time
}

// NewCartUC creates a new cart use case
func NewCartUC(cartRepo cart.CartRepo, cartGW cart.CartGW, collector *metrics.Collector) *CartUC {
	return &CartUC{
		cartRepo: cartRepo,
		cartGW:   cartGW,
		metrics:  collector,
		now:      time.Now,
	}
}
