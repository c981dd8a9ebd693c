package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc reports whether a dependency is reachable
type PingFunc func(ctx context.Context) error

// HealthHandler reports liveness and dependency state
type HealthHandler struct {
	service string
	version string
	checks  map[string]PingFunc
}

// NewHealthHandler creates a health handler. checks maps a dependency name to its probe.
func NewHealthHandler(service, version string, checks map[string]PingFunc) *HealthHandler {
	return &HealthHandler{service: service, version: version, checks: checks}
}

// Health always answers 200 while the process serves; dependency state is reported per check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			deps[name] = "down"
			continue
		}
		deps[name] = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      h.service,
		"version":      h.version,
		"dependencies": deps,
	})
}
