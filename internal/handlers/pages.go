package handlers

import (
	"errors"
	"io"
	"net/http"

	"rfid_tracking/internal/filter"
	"rfid_tracking/internal/models"
	"rfid_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK        = "ok"
	statusUnmounted = "unmounted"

	errPageNotFound    = "page not found"
	errMountPage       = "failed to mount page"
	errLoadPage        = "failed to load page"
	errUnknownField    = "unknown filter field; use work_order, date_from or date_to"
	errUnknownModal    = "unknown filter modal; use work_order or date"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// pageError maps a page service error to 404 or 500.
func (h *Handler) pageError(c *gin.Context, err error, logKey string) {
	if errors.Is(err, service.ErrPageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errPageNotFound})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errLoadPage, logKey, err, "page_id", c.Param("id"))
}

type mountRequest struct {
	Page string `json:"page" example:"sewing"`
}

type filterRequest struct {
	Field string `json:"field" binding:"required" example:"work_order"`
	// Value is stored verbatim; empty clears the field.
	Value string `json:"value" example:"WO-1024"`
}

type modalRequest struct {
	Modal string `json:"modal" binding:"required" example:"date"`
	Open  bool   `json:"open"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Mount a page
// @Description  Creates fresh filter state for a dashboard page: empty filters, popovers closed.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        body  body  mountRequest  false  "Page name"
// @Success      201  {object}  models.PageSession
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/pages [post]
func (h *Handler) mountPage(c *gin.Context) {
	var req mountRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ps, err := h.services.Pages.Mount(c.Request.Context(), req.Page)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errMountPage, "page_mount_failed", err, "page", req.Page)
		return
	}
	c.JSON(http.StatusCreated, ps)
}

// @Summary      Get page state
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Page session id"
// @Success      200  {object}  models.PageSession
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id} [get]
func (h *Handler) getPage(c *gin.Context) {
	ps, err := h.services.Pages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pageError(c, err, "page_get_failed")
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Unmount a page
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Page session id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id} [delete]
func (h *Handler) unmountPage(c *gin.Context) {
	if err := h.services.Pages.Unmount(c.Request.Context(), c.Param("id")); err != nil {
		h.pageError(c, err, "page_unmount_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusUnmounted})
}

// @Summary      Set one filter field
// @Description  Replaces exactly one of work_order, date_from, date_to. Other fields are untouched.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Page session id"
// @Param        body  body  filterRequest  true  "Field update"
// @Success      200  {object}  models.PageSession
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id}/filters [patch]
func (h *Handler) updateFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	field, ok := filter.ParseField(req.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownField})
		return
	}
	ps, err := h.services.Pages.Update(c.Request.Context(), c.Param("id"), models.FilterUpdate{Field: field, Value: req.Value})
	if err != nil {
		h.pageError(c, err, "page_update_filter_failed")
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Reset filters
// @Description  Clears all filter values. Popover visibility is left unchanged.
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Page session id"
// @Success      200  {object}  models.PageSession
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id}/filters/reset [post]
func (h *Handler) resetFilters(c *gin.Context) {
	ps, err := h.services.Pages.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pageError(c, err, "page_reset_failed")
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Open or close a filter popover
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "Page session id"
// @Param        body  body  modalRequest  true  "Popover update"
// @Success      200  {object}  models.PageSession
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id}/modals [patch]
func (h *Handler) setModal(c *gin.Context) {
	var req modalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	modal, ok := filter.ParseModal(req.Modal)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownModal})
		return
	}
	ps, err := h.services.Pages.SetModal(c.Request.Context(), c.Param("id"), models.ModalUpdate{Modal: modal, Open: req.Open})
	if err != nil {
		h.pageError(c, err, "page_set_modal_failed")
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Effective query parameters
// @Description  Filter values with empty dates defaulted to the current reporting day.
// @Tags         pages
// @Produce      json
// @Param        id  path  string  true  "Page session id"
// @Success      200  {object}  models.ActiveQuery
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/pages/{id}/query [get]
func (h *Handler) getActiveQuery(c *gin.Context) {
	q, err := h.services.Pages.ActiveQuery(c.Request.Context(), c.Param("id"), h.environment(c))
	if err != nil {
		h.pageError(c, err, "page_query_failed")
		return
	}
	c.JSON(http.StatusOK, q)
}
