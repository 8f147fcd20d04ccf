package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"rfid_tracking/internal/models"
	"rfid_tracking/internal/opday"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// pageSnapshot is what a page re-renders from.
type pageSnapshot struct {
	ReportingDay  models.ReportingDay `json:"reporting_day"`
	AfterRollover bool                `json:"after_rollover"`
	Page          *models.PageSession `json:"page,omitempty"`
	Query         *models.ActiveQuery `json:"query,omitempty"`
}

// changed reports whether a consumer would render s differently from prev.
func (s pageSnapshot) changed(prev *pageSnapshot) bool {
	if prev == nil {
		return true
	}
	if s.ReportingDay != prev.ReportingDay || s.AfterRollover != prev.AfterRollover {
		return true
	}
	if (s.Page == nil) != (prev.Page == nil) {
		return true
	}
	return s.Page != nil && s.Page.Version != prev.Page.Version
}

// Upgrader for HTTP -> WebSocket. Any origin is accepted.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Page snapshot stream
// @Description  WebSocket. Sends {"type":"snapshot"} on connect and whenever the reporting day or the page state changes.
// @Tags         pages
// @Param        page         query  string  false  "Page session id; omit to stream only the reporting day"
// @Param        interval     query  string  false  "Poll interval, e.g. 2s (max 10s)"
// @Param        interval_ms  query  int     false  "Poll interval in ms (max 10000)"
// @Failure      404  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	pageID := c.Query("page")
	host := h.environment(c).Host

	if pageID != "" {
		if _, err := h.services.Pages.Get(c.Request.Context(), pageID); err != nil {
			h.pageError(c, err, "ws_page_lookup_failed")
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	var last *pageSnapshot
	send := func() error {
		snap, err := h.snapshot(ctx, pageID, host)
		if err != nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: errPageNotFound})
			return err
		}
		if !snap.changed(last) {
			return nil
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(wsEnvelope{Type: "snapshot", Data: snap}); err != nil {
			return err
		}
		last = &snap
		return nil
	}

	if err := send(); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := send(); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err, "page_id", pageID)
				}
				return
			}
		}
	}
}

// snapshot recomputes the reporting day from the clock and, when a page is
// given, reads its state and active query.
func (h *Handler) snapshot(ctx context.Context, pageID, host string) (pageSnapshot, error) {
	days := h.services.OperatingDay
	now := h.now().In(days.Location())
	snap := pageSnapshot{
		ReportingDay:  days.At(now),
		AfterRollover: opday.IsAfterRollover(now),
	}
	if pageID == "" {
		return snap, nil
	}
	ps, err := h.services.Pages.Get(ctx, pageID)
	if err != nil {
		return pageSnapshot{}, err
	}
	q, err := h.services.Pages.ActiveQuery(ctx, pageID, models.Environment{Host: host, Now: now})
	if err != nil {
		return pageSnapshot{}, err
	}
	snap.Page = &ps
	snap.Query = &q
	return snap, nil
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil && !errors.Is(err, websocket.ErrCloseSent) {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

