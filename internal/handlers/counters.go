package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rfid_tracking/internal/endpoint"
	"rfid_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errUnknownRoute  = "unknown route"
	errUpstreamFetch = "failed to fetch counter from backend"
)

// @Summary      Fetch a counter
// @Description  Sends the page's active filters to the named route on the backend derived from the browsing host and relays the answer.
// @Tags         counters
// @Produce      json
// @Param        id     path  string  true  "Page session id"
// @Param        route  path  string  true  "Route name"  Enums(sewing-output,rework,qc,dryroom-in,dryroom-out,folding-in,folding-out,last-status,cycle-time)
// @Success      200  {object}  map[string]interface{}  "route, url, status, data"
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/v1/pages/{id}/counters/{route} [get]
func (h *Handler) getCounter(c *gin.Context) {
	id, route := c.Param("id"), c.Param("route")
	res, err := h.services.Counters.Fetch(c.Request.Context(), id, route, h.environment(c))
	switch {
	case errors.Is(err, endpoint.ErrUnknownRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": errUnknownRoute})
		return
	case errors.Is(err, service.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errPageNotFound})
		return
	case err != nil:
		if h.log != nil {
			h.log.Errorw("counter_fetch_failed", "err", err, "route", route, "url", res.URL)
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           errUpstreamFetch,
			"url":             res.URL,
			"upstream_status": res.Status,
		})
		return
	}

	resp := gin.H{
		"route":  res.Route,
		"url":    res.URL,
		"status": res.Status,
	}
	// Relay JSON bodies as-is; anything else goes back as text.
	if json.Valid(res.Body) {
		resp["data"] = json.RawMessage(res.Body)
	} else {
		resp["data"] = string(res.Body)
	}
	c.JSON(http.StatusOK, resp)
}
