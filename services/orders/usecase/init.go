package usecase

import (
	"time"

	"github.com/piresc/flashfood/internal/pkg/metrics"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
	"github.com/piresc/flashfood/services/orders/feed"
)

// OrderUC implements the order use case interface
type OrderUC struct {
	cfg       *models.Config
	orderRepo orders.OrderRepo
	orderGW   orders.OrderGW
	hub       *feed.Hub
	notifier  feed.Notifier
	metrics   *metrics.Collector
	now       func() time.Time
}

// NewOrderUC creates a new order use case. A nil notifier logs incoming orders.
func NewOrderUC(
	cfg *models.Config,
	orderRepo orders.OrderRepo,
	orderGW orders.OrderGW,
	hub *feed.Hub,
	notifier feed.Notifier,
	collector *metrics.Collector,
) *OrderUC {
	if notifier == nil {
		notifier = feed.NewLogNotifier()
	}
	return &OrderUC{
		cfg:       cfg,
		orderRepo: orderRepo,
		orderGW:   orderGW,
		hub:       hub,
		notifier:  notifier,
		metrics:   collector,
		now:       time.Now,
	}
}
