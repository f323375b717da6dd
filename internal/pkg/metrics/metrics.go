package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics of a flashfood service.
// Every recording method is safe on a nil *Collector.
type Collector struct {
	gatherer prometheus.Gatherer
	service  string

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	DriversGenerated    prometheus.Counter
	DriversWithinRadius prometheus.Counter
	CartMerges          prometheus.Counter
	OrdersPlaced        *prometheus.CounterVec
	FeedDeliveries      prometheus.Counter
	FeedSubscribers     prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil
func NewCollector(reg prometheus.Registerer, service string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer, service: service}
	var err error

	if c.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flashfood_http_requests_total",
		Help: "Handled HTTP requests, labeled by service, method, route and status code.",
	}, []string{"service", "method", "route", "code"}), "flashfood_http_requests_total"); err != nil {
		return nil, err
	}
	if c.HTTPDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flashfood_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"service", "method", "route"}), "flashfood_http_request_duration_seconds"); err != nil {
		return nil, err
	}
	if c.DriversGenerated, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flashfood_drivers_generated_total",
		Help: "Simulated drivers scattered around a search center.",
	}), "flashfood_drivers_generated_total"); err != nil {
		return nil, err
	}
	if c.DriversWithinRadius, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flashfood_drivers_within_radius_total",
		Help: "Drivers that passed the radius filter.",
	}), "flashfood_drivers_within_radius_total"); err != nil {
		return nil, err
	}
	if c.CartMerges, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flashfood_cart_variant_merges_total",
		Help: "Variants merged into an existing cart line item.",
	}), "flashfood_cart_variant_merges_total"); err != nil {
		return nil, err
	}
	if c.OrdersPlaced, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flashfood_orders_placed_total",
		Help: "Orders placed, labeled by payment method.",
	}, []string{"payment_method"}), "flashfood_orders_placed_total"); err != nil {
		return nil, err
	}
	if c.FeedDeliveries, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flashfood_feed_deliveries_total",
		Help: "Incoming orders delivered to restaurant feed subscribers.",
	}), "flashfood_feed_deliveries_total"); err != nil {
		return nil, err
	}
	if c.FeedSubscribers, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "flashfood_feed_subscribers",
		Help: "Open restaurant feed subscriptions.",
	}), "flashfood_feed_subscribers"); err != nil {
		return nil, err
	}

	return c, nil
}

// Middleware records request counts and durations per matched route
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if c == nil || ctx.Path() == "/metrics" {
				return next(ctx)
			}

			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !ctx.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			method := ctx.Request().Method
			route := ctx.Path()
			c.HTTPRequests.WithLabelValues(c.service, method, route, strconv.Itoa(status)).Inc()
			c.HTTPDurations.WithLabelValues(c.service, method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RegisterRoutes mounts GET /metrics on e
func (c *Collector) RegisterRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(c.Handler()))
}

// ObserveDriverSearch records one simulated search
func (c *Collector) ObserveDriverSearch(generated, within int) {
	if c == nil {
		return
	}
	c.DriversGenerated.Add(float64(generated))
	c.DriversWithinRadius.Add(float64(within))
}

// IncCartMerge records a variant merged into an existing line item
func (c *Collector) IncCartMerge() {
	if c == nil {
		return
	}
	c.CartMerges.Inc()
}

// IncOrderPlaced records a persisted order
func (c *Collector) IncOrderPlaced(paymentMethod string) {
	if c == nil {
		return
	}
	c.OrdersPlaced.WithLabelValues(paymentMethod).Inc()
}

// IncFeedDelivery records an order handed to a feed subscriber
func (c *Collector) IncFeedDelivery() {
	if c == nil {
		return
	}
	c.FeedDeliveries.Inc()
}

// SetFeedSubscribers reports the number of open feed subscriptions
func (c *Collector) SetFeedSubscribers(n int) {
	if c == nil {
		return
	}
	c.FeedSubscribers.Set(float64(n))
}

// register adds collector to reg, reusing an already registered collector of the same type
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
