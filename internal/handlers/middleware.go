package handlers

import (
	"net/http"
	"time"

	"rfid_tracking/internal/endpoint"
	"rfid_tracking/internal/models"

	"github.com/gin-gonic/gin"
)

const envContextKey = "env"

// environmentMiddleware captures the ambient values the resolvers read: the
// host the browser used and the clock at request time.
func (h *Handler) environmentMiddleware(c *gin.Context) {
	c.Set(envContextKey, models.Environment{
		Host: endpoint.BrowsingHost(c.Request),
		Now:  h.now(),
	})
	c.Next()
}

// environment returns the request's Environment, rebuilding it when the
// middleware did not run (e.g. handlers mounted on a bare router in tests).
func (h *Handler) environment(c *gin.Context) models.Environment {
	if v, ok := c.Get(envContextKey); ok {
		if env, ok := v.(models.Environment); ok {
			return env
		}
	}
	return models.Environment{Host: endpoint.BrowsingHost(c.Request), Now: h.now()}
}

func (h *Handler) now() time.Time {
	if h.services != nil && h.services.OperatingDay != nil {
		return h.services.OperatingDay.Now()
	}
	return time.Now()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	status := c.Writer.Status()
	kv := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", status,
		"latency", time.Since(start),
		"host", endpoint.BrowsingHost(c.Request),
	}
	if status >= http.StatusInternalServerError {
		h.log.Warnw("http_request", kv...)
		return
	}
	h.log.Debugw("http_request", kv...)
}
