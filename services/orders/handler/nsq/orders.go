package nsq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/flashfood/internal/pkg/constants"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	nsqpkg "github.com/piresc/flashfood/internal/pkg/nsq"
	"github.com/piresc/flashfood/services/orders"
)

// OrdersHandler consumes order events for the orders service
type OrdersHandler struct {
	orderUC   orders.OrderUC
	cfg       *models.Config
	consumers []*nsqpkg.Consumer
}

// NewOrdersHandler creates a new orders NSQ handler
func NewOrdersHandler(orderUC orders.OrderUC, cfg *models.Config) *OrdersHandler {
	return &OrdersHandler{
		orderUC: orderUC,
		cfg:     cfg,
	}
}

// FeedChannel returns the incoming_order channel for one orders instance.
// Each instance holds its own feed subscribers, so each needs every message:
// the channel is per instance and ephemeral so nsqd drops it on disconnect.
func FeedChannel(instanceID string) string {
	if len(instanceID) > 8 {
		instanceID = instanceID[:8]
	}
	return fmt.Sprintf("%s-%s#ephemeral", constants.ChannelRestaurantFeed, instanceID)
}

// InitNSQConsumers starts the incoming_order consumer feeding the restaurant hub
func (h *OrdersHandler) InitNSQConsumers() error {
	channel := FeedChannel(uuid.NewString())

	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:            constants.TopicIncomingOrder,
		Channel:          channel,
		NSQDAddress:      h.cfg.NSQ.Address,
		LookupdAddresses: h.cfg.NSQ.LookupdAddress,
		// Preserve FIFO arrival order on the feed
		MaxInFlight: 1,
	}, h.HandleIncomingOrder)
	if err != nil {
		return fmt.Errorf("failed to start %s consumer: %w", constants.TopicIncomingOrder, err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("Initialized NSQ consumers for orders service",
		logger.String("channel", channel))
	return nil
}

// HandleIncomingOrder delivers one incoming_order message to the live feed.
// Undecodable messages are dropped; other failures requeue the message.
func (h *OrdersHandler) HandleIncomingOrder(body []byte) error {
	var order models.Order
	if err := nsqpkg.UnmarshalMessage(body, &order); err != nil {
		logger.Error("Dropping malformed incoming order",
			logger.Err(err))
		return nil
	}

	err := h.orderUC.DeliverIncomingOrder(context.Background(), &order)
	if errors.Is(err, orders.ErrRestaurantRequired) {
		logger.Warn("Dropping incoming order without restaurant",
			logger.String("order_id", order.ID.String()))
		return nil
	}
	return err
}

// Stop stops every consumer and waits for in-flight messages
func (h *OrdersHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}
