package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/flashfood/internal/pkg/constants"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	nsqpkg "github.com/piresc/flashfood/internal/pkg/nsq"
	"github.com/piresc/flashfood/internal/pkg/retry"
)

// NSQGateway publishes order events; transient publish failures are retried with backoff
type NSQGateway struct {
	publisher nsqpkg.Publisher
	retrier   *retry.Retrier
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(publisher nsqpkg.Publisher) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
		retrier:   retry.NewWithDefaults("nsq-publish"),
	}
}

// PublishIncomingOrder announces a placed order to the restaurant feeds
func (g *NSQGateway) PublishIncomingOrder(ctx context.Context, order *models.Order) error {
	if err := g.publish(ctx, constants.TopicIncomingOrder, order); err != nil {
		return fmt.Errorf("failed to publish incoming order: %w", err)
	}
	logger.Debug("Published incoming order",
		logger.String("order_id", order.ID.String()),
		logger.String("restaurant_id", order.RestaurantID))
	return nil
}

// PublishOrderDispatch hands an accepted order and its candidate drivers downstream
func (g *NSQGateway) PublishOrderDispatch(ctx context.Context, dispatch models.OrderDispatch) error {
	if err := g.publish(ctx, constants.TopicOrderDispatch, dispatch); err != nil {
		return fmt.Errorf("failed to publish order dispatch: %w", err)
	}
	logger.Debug("Published order dispatch",
		logger.String("order_id", dispatch.OrderID.String()),
		logger.Int("drivers", len(dispatch.Drivers)))
	return nil
}

func (g *NSQGateway) publish(ctx context.Context, topic string, message interface{}) error {
	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.publisher.Publish(topic, message)
	})
}
