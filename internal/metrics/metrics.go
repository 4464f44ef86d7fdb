// Package metrics exposes the storefront's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adega_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// OrdersPlaced counts orders finalized through checkout.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adega_orders_placed_total",
		Help: "Orders finalized through checkout.",
	})

	// CartAdds counts successful add-to-cart operations.
	CartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adega_cart_items_added_total",
		Help: "Successful add-to-cart operations.",
	})
)

// Middleware records request latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
