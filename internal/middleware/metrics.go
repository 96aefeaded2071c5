package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name; incremented by the
	// cache client's hook.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FeedRequests counts feed page loads by feed kind (home or category).
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_feed_requests_total",
		Help: "Total number of feed page requests by feed kind",
	}, []string{"feed"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
