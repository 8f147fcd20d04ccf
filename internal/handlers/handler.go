package handlers

import (
	"rfid_tracking/internal/logger"
	"rfid_tracking/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.environmentMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// page snapshot stream, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/reporting-day", h.getReportingDay)
		api.GET("/endpoint", h.getEndpoint)
		api.GET("/routes", h.listRoutes)
		h.registerPageRoutes(api)
	}
}

func (h *Handler) registerPageRoutes(api *gin.RouterGroup) {
	pages := api.Group("/pages")
	{
		pages.POST("", h.mountPage)
		pages.GET("/:id", h.getPage)
		pages.DELETE("/:id", h.unmountPage)
		// Body example: {"field":"work_order","value":"WO-1024"}
		pages.PATCH("/:id/filters", h.updateFilter)
		pages.POST("/:id/filters/reset", h.resetFilters)
		// Body example: {"modal":"date","open":true}
		pages.PATCH("/:id/modals", h.setModal)
		pages.GET("/:id/query", h.getActiveQuery)
		pages.GET("/:id/counters/:route", h.getCounter)
	}
}
