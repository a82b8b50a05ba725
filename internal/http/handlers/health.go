package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookbrainz-backend/internal/platform/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	log     *logger.Logger
	pingers map[string]Pinger
}

func NewHealthHandler(log *logger.Logger, pingers map[string]Pinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), pingers: pingers}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	for name, p := range h.pingers {
		if p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			h.log.Warn("health check failed", "dependency", name, "error", err)
			c.String(http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	c.String(http.StatusOK, "ok")
}
