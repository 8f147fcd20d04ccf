package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"rfid_tracking/internal/models"
	"rfid_tracking/internal/repository"
	"rfid_tracking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tc.u, nil)
			if got := h.parseInterval(c); got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

func TestPageSnapshot_Changed(t *testing.T) {
	v1 := &models.PageSession{Version: 1}
	v2 := &models.PageSession{Version: 2}
	base := pageSnapshot{ReportingDay: "2025-06-01", Page: v1}

	cases := []struct {
		name string
		next pageSnapshot
		prev *pageSnapshot
		want bool
	}{
		{"first snapshot", base, nil, true},
		{"identical", base, &base, false},
		{"day rolled over", pageSnapshot{ReportingDay: "2025-06-02", Page: v1}, &base, true},
		{"page version bumped", pageSnapshot{ReportingDay: "2025-06-01", Page: v2}, &base, true},
		{"page dropped", pageSnapshot{ReportingDay: "2025-06-01"}, &base, true},
	}
	for _, tc := range cases {
		if got := tc.next.changed(tc.prev); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// --- websocket integration tests ---

type wsTestEnvelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newWSServer(t *testing.T, s *service.Service) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, q url.Values) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = q.Encode()
	return u.String()
}

func readSnapshot(t *testing.T, conn *websocket.Conn) pageSnapshot {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "snapshot" {
		t.Fatalf("bad envelope: %+v", env)
	}
	var snap pageSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	return snap
}

func TestWebSocket_PageStream_InitialAndOnChange(t *testing.T) {
	now := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	days := fixedDays(now)
	pages := service.NewPageService(repository.NewPageMemory(), days)
	s := &service.Service{OperatingDay: days, Pages: pages}
	srv := newWSServer(t, s)

	ctx := context.Background()
	ps, err := pages.Mount(ctx, "sewing")
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}

	q := url.Values{}
	q.Set("page", ps.ID)
	q.Set("interval_ms", "20")
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, q), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	first := readSnapshot(t, conn)
	if first.ReportingDay != "2025-06-01" || first.AfterRollover {
		t.Fatalf("unexpected day in snapshot: %+v", first)
	}
	if first.Page == nil || first.Page.ID != ps.ID || first.Page.Version != 0 {
		t.Fatalf("unexpected page in snapshot: %+v", first.Page)
	}
	if first.Query == nil || first.Query.DateFrom != "2025-06-01" {
		t.Fatalf("unexpected query in snapshot: %+v", first.Query)
	}

	if _, err := pages.Update(ctx, ps.ID, models.FilterUpdate{Field: models.FieldWorkOrder, Value: "WO-5"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	next := readSnapshot(t, conn)
	if next.Page == nil || next.Page.Version != 1 || next.Page.Filters.WorkOrder != "WO-5" {
		t.Fatalf("change not pushed: %+v", next.Page)
	}
	if next.Query == nil || next.Query.WorkOrder != "WO-5" {
		t.Fatalf("query not refreshed: %+v", next.Query)
	}
}

func TestWebSocket_DayOnlyStream(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	s := &service.Service{OperatingDay: fixedDays(now)}
	srv := newWSServer(t, s)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, url.Values{}), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	snap := readSnapshot(t, conn)
	if snap.ReportingDay != "2025-06-02" || !snap.AfterRollover || snap.Page != nil {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestWebSocket_UnknownPage_NotUpgraded(t *testing.T) {
	days := fixedDays(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	pages := service.NewPageService(repository.NewPageMemory(), days)
	srv := newWSServer(t, &service.Service{OperatingDay: days, Pages: pages})

	q := url.Values{}
	q.Set("page", "missing")
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(wsURL(srv, q), nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", resp)
	}
}

func TestWebSocket_PageUnmountedDuringStream_SendsError(t *testing.T) {
	days := fixedDays(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	pages := service.NewPageService(repository.NewPageMemory(), days)
	srv := newWSServer(t, &service.Service{OperatingDay: days, Pages: pages})

	ctx := context.Background()
	ps, _ := pages.Mount(ctx, "qc")

	q := url.Values{}
	q.Set("page", ps.ID)
	q.Set("interval_ms", "20")
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, q), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	_ = readSnapshot(t, conn)
	if err := pages.Unmount(ctx, ps.ID); err != nil {
		t.Fatalf("Unmount: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsTestEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "error" || env.Error != errPageNotFound {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}
