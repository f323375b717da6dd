package feed

import (
	"context"

	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
)

// Notifier raises a local notification for a newly arrived order
type Notifier interface {
	Notify(ctx context.Context, order *models.Order) error
}

// LogNotifier writes the notification to the service log
type LogNotifier struct{}

// NewLogNotifier creates a notifier that logs
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the order summary
func (n *LogNotifier) Notify(_ context.Context, order *models.Order) error {
	logger.Info("New incoming order",
		logger.String("order_id", order.ID.String()),
		logger.String("restaurant_id", order.RestaurantID),
		logger.Int("items", len(order.Items)),
		logger.Float64("total_amount", order.TotalAmount))
	return nil
}
