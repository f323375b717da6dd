package feed

import (
	"sync"

	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/metrics"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/orders"
)

// DefaultBufferSize is how many undelivered orders a subscription holds before new ones are dropped
const DefaultBufferSize = 32

// Hub fans incoming orders out to the live feeds of their restaurant.
// Each subscription receives orders in the order they were published.
type Hub struct {
	mu         sync.Mutex
	subs       map[string]map[*Subscription]struct{}
	total      int
	bufferSize int
	metrics    *metrics.Collector
}

// Subscription is one listener on a restaurant's feed
type Subscription struct {
	RestaurantID string

	hub    *Hub
	orders chan *models.Order
	closed bool
}

// NewHub creates a hub; a non-positive bufferSize uses DefaultBufferSize
func NewHub(bufferSize int, collector *metrics.Collector) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		subs:       make(map[string]map[*Subscription]struct{}),
		bufferSize: bufferSize,
		metrics:    collector,
	}
}

// Subscribe starts listening on restaurantID's feed
func (h *Hub) Subscribe(restaurantID string) (*Subscription, error) {
	if restaurantID == "" {
		return nil, orders.ErrRestaurantRequired
	}

	sub := &Subscription{
		RestaurantID: restaurantID,
		hub:          h,
		orders:       make(chan *models.Order, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[restaurantID] == nil {
		h.subs[restaurantID] = make(map[*Subscription]struct{})
	}
	h.subs[restaurantID][sub] = struct{}{}
	h.total++
	h.metrics.SetFeedSubscribers(h.total)

	logger.Debug("Feed subscription opened",
		logger.String("restaurant_id", restaurantID),
		logger.Int("subscribers", h.total))

	return sub, nil
}

// Publish hands order to every subscription of its restaurant and returns how many received it.
// A subscription whose buffer is full misses the order.
func (h *Hub) Publish(order *models.Order) int {
	if order == nil {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for sub := range h.subs[order.RestaurantID] {
		select {
		case sub.orders <- order:
			delivered++
			h.metrics.IncFeedDelivery()
		default:
			logger.Warn("Feed subscriber is not keeping up, dropping order",
				logger.String("restaurant_id", order.RestaurantID),
				logger.String("order_id", order.ID.String()))
		}
	}
	return delivered
}

// SubscriberCount returns the number of open subscriptions for restaurantID
func (h *Hub) SubscriberCount(restaurantID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[restaurantID])
}

// Close ends every subscription
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, subs := range h.subs {
		for sub := range subs {
			h.remove(sub)
		}
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(s *Subscription) {
	if s.closed {
		return
	}
	s.closed = true

	if subs, ok := h.subs[s.RestaurantID]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.subs, s.RestaurantID)
		}
	}
	h.total--
	close(s.orders)
	h.metrics.SetFeedSubscribers(h.total)
}

// Orders returns the channel the subscription's orders arrive on. It is closed by Close.
func (s *Subscription) Orders() <-chan *models.Order {
	return s.orders
}

// Close unsubscribes; calling it more than once is a no-op
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	s.hub.remove(s)
}
