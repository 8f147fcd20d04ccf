package handlers

import (
	"fmt"
	"net/http"
	"time"

	"rfid_tracking/internal/models"
	"rfid_tracking/internal/opday"

	"github.com/gin-gonic/gin"
)

const (
	errAtInvalid = "invalid 'at' time; use RFC3339 or YYYY-MM-DD HH:MM:SS"

	layoutDateTime = "2006-01-02 15:04:05"
)

type reportingDayResponse struct {
	ReportingDay  models.ReportingDay `json:"reporting_day" example:"2025-06-01"`
	AfterRollover bool                `json:"after_rollover"`
	RolloverHour  int                 `json:"rollover_hour" example:"8"`
	At            time.Time           `json:"at"`
}

// @Summary      Current reporting day
// @Description  The production day rolls over at 08:00 local time. Before that hour the previous calendar date is returned.
// @Tags         calendar
// @Produce      json
// @Param        at  query  string  false  "Instant to resolve instead of now (RFC3339 or 'YYYY-MM-DD HH:MM:SS' in factory time)"  example(2025-06-02 07:59:59)
// @Success      200  {object}  reportingDayResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/reporting-day [get]
func (h *Handler) getReportingDay(c *gin.Context) {
	days := h.services.OperatingDay
	at := h.environment(c).Now
	if qs := c.Query("at"); qs != "" {
		t, err := parseQueryTime(qs, days.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errAtInvalid})
			return
		}
		at = t
	}
	at = at.In(days.Location())
	c.JSON(http.StatusOK, reportingDayResponse{
		ReportingDay:  days.At(at),
		AfterRollover: opday.IsAfterRollover(at),
		RolloverHour:  opday.RolloverHour,
		At:            at,
	})
}

// parseQueryTime accepts RFC3339 or a wall-clock time in the factory location.
func parseQueryTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected RFC3339 (e.g. 2025-06-02T07:30:00+07:00) or 'YYYY-MM-DD HH:MM:SS'",
		s,
	)
}
