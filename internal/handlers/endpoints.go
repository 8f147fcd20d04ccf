package handlers

import (
	"net/http"

	"rfid_tracking/internal/endpoint"

	"github.com/gin-gonic/gin"
)

// @Summary      Resolve backend endpoint
// @Description  Derives the backend base URLs from the host the browser used. localhost and 127.0.0.1 both resolve to localhost.
// @Tags         endpoint
// @Produce      json
// @Param        port  query  int  false  "Primary port override (default 7000)"  example(8000)
// @Success      200  {object}  models.EndpointInfo
// @Router       /api/v1/endpoint [get]
func (h *Handler) getEndpoint(c *gin.Context) {
	env := h.environment(c)
	port := endpoint.ParsePort(c.Query("port"))
	c.JSON(http.StatusOK, h.services.Endpoints.Resolve(env.Host, port))
}

// @Summary      List data routes
// @Tags         endpoint
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, routes"
// @Router       /api/v1/routes [get]
func (h *Handler) listRoutes(c *gin.Context) {
	routes := h.services.Endpoints.Routes(h.environment(c).Host)
	c.JSON(http.StatusOK, gin.H{
		"count":  len(routes),
		"routes": routes,
	})
}
