package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/service"
)

// Pinger is a dependency whose reachability decides readiness.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

// PingContext implements Pinger.
func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthHandler exposes liveness, readiness and metrics endpoints.
type HealthHandler struct {
	metrics *service.MetricsService
	deps    map[string]Pinger
	logger  *zap.Logger
}

// NewHealthHandler constructs a health handler. deps are checked by Ready.
func NewHealthHandler(metrics *service.MetricsService, deps map[string]Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{metrics: metrics, deps: deps, logger: logger}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *HealthHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health reports that the process is serving.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether every dependency answers a ping within two seconds.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	status := http.StatusOK
	for name, dep := range h.deps {
		if err := dep.PingContext(ctx); err != nil {
			h.logger.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
