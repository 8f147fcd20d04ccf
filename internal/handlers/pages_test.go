package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"rfid_tracking/internal/models"
	"rfid_tracking/internal/service"
)

func TestPageHandlers_Lifecycle(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	pages := &mockPages{
		session: models.PageSession{ID: "p1", Page: "sewing"},
		query:   models.ActiveQuery{DateFrom: "2025-06-02", DateTo: "2025-06-02", ReportingDay: "2025-06-02"},
	}
	r := newTestRouter(newTestService(now, pages, nil))

	// mount with body
	w := doJSON(r, http.MethodPost, "/api/v1/pages", `{"page":"sewing"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("mount status=%d body=%s", w.Code, w.Body.String())
	}
	if pages.lastPage != "sewing" {
		t.Fatalf("page name not forwarded: %q", pages.lastPage)
	}
	var ps models.PageSession
	decodeBody(t, w, &ps)
	if ps.ID != "p1" {
		t.Fatalf("unexpected session: %+v", ps)
	}

	// mount without body
	w = doJSON(r, http.MethodPost, "/api/v1/pages", "")
	if w.Code != http.StatusCreated || pages.mountCalls != 2 || pages.lastPage != "" {
		t.Fatalf("mount without body: status=%d calls=%d page=%q", w.Code, pages.mountCalls, pages.lastPage)
	}

	// get
	w = doJSON(r, http.MethodGet, "/api/v1/pages/p1", "")
	if w.Code != http.StatusOK || pages.lastID != "p1" {
		t.Fatalf("get status=%d id=%q", w.Code, pages.lastID)
	}

	// set one field
	w = doJSON(r, http.MethodPatch, "/api/v1/pages/p1/filters", `{"field":"work_order","value":"WO-1024"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", w.Code, w.Body.String())
	}
	if pages.lastUpdate != (models.FilterUpdate{Field: models.FieldWorkOrder, Value: "WO-1024"}) {
		t.Fatalf("wrong update forwarded: %+v", pages.lastUpdate)
	}

	// empty value clears the field and is forwarded verbatim
	w = doJSON(r, http.MethodPatch, "/api/v1/pages/p1/filters", `{"field":"date_to","value":""}`)
	if w.Code != http.StatusOK || pages.lastUpdate != (models.FilterUpdate{Field: models.FieldDateTo}) {
		t.Fatalf("clear field: status=%d update=%+v", w.Code, pages.lastUpdate)
	}

	// reset
	w = doJSON(r, http.MethodPost, "/api/v1/pages/p1/filters/reset", "")
	if w.Code != http.StatusOK || pages.resetCalls != 1 {
		t.Fatalf("reset status=%d calls=%d", w.Code, pages.resetCalls)
	}

	// modal
	w = doJSON(r, http.MethodPatch, "/api/v1/pages/p1/modals", `{"modal":"date","open":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("modal status=%d body=%s", w.Code, w.Body.String())
	}
	if pages.lastModal != (models.ModalUpdate{Modal: models.ModalDate, Open: true}) {
		t.Fatalf("wrong modal forwarded: %+v", pages.lastModal)
	}

	// active query receives the request environment
	w = doJSON(r, http.MethodGet, "/api/v1/pages/p1/query", "")
	if w.Code != http.StatusOK {
		t.Fatalf("query status=%d", w.Code)
	}
	if pages.lastEnv.Host != "10.5.0.2" || !pages.lastEnv.Now.Equal(now) {
		t.Fatalf("environment not forwarded: %+v", pages.lastEnv)
	}
	var q models.ActiveQuery
	decodeBody(t, w, &q)
	if q.DateFrom != "2025-06-02" {
		t.Fatalf("unexpected query: %+v", q)
	}

	// unmount
	w = doJSON(r, http.MethodDelete, "/api/v1/pages/p1", "")
	if w.Code != http.StatusOK || pages.unmountedID != "p1" {
		t.Fatalf("unmount status=%d id=%q", w.Code, pages.unmountedID)
	}
}

func TestPageHandlers_BadRequests(t *testing.T) {
	pages := &mockPages{}
	r := newTestRouter(newTestService(time.Now(), pages, nil))

	cases := []struct {
		name, method, target, body string
	}{
		{"malformed mount body", http.MethodPost, "/api/v1/pages", `{"page":`},
		{"missing field", http.MethodPatch, "/api/v1/pages/p1/filters", `{"value":"x"}`},
		{"unknown field", http.MethodPatch, "/api/v1/pages/p1/filters", `{"field":"colour","value":"x"}`},
		{"missing modal", http.MethodPatch, "/api/v1/pages/p1/modals", `{"open":true}`},
		{"unknown modal", http.MethodPatch, "/api/v1/pages/p1/modals", `{"modal":"size","open":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, tc.method, tc.target, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
			}
		})
	}
	if pages.mountCalls != 0 || pages.lastID != "" {
		t.Fatalf("service must not be called on bad input")
	}
}

func TestPageHandlers_ErrorMapping(t *testing.T) {
	notFound := fmt.Errorf("%w: p9", service.ErrPageNotFound)

	cases := []struct {
		name       string
		err        error
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"get missing", notFound, http.MethodGet, "/api/v1/pages/p9", "", http.StatusNotFound},
		{"update missing", notFound, http.MethodPatch, "/api/v1/pages/p9/filters", `{"field":"date_from","value":"2025-06-01"}`, http.StatusNotFound},
		{"reset missing", notFound, http.MethodPost, "/api/v1/pages/p9/filters/reset", "", http.StatusNotFound},
		{"modal missing", notFound, http.MethodPatch, "/api/v1/pages/p9/modals", `{"modal":"work_order","open":false}`, http.StatusNotFound},
		{"query missing", notFound, http.MethodGet, "/api/v1/pages/p9/query", "", http.StatusNotFound},
		{"unmount missing", notFound, http.MethodDelete, "/api/v1/pages/p9", "", http.StatusNotFound},
		{"mount failure", errors.New("store full"), http.MethodPost, "/api/v1/pages", `{"page":"qc"}`, http.StatusInternalServerError},
		{"get failure", errors.New("boom"), http.MethodGet, "/api/v1/pages/p9", "", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(newTestService(time.Now(), &mockPages{err: tc.err}, nil))
			w := doJSON(r, tc.method, tc.target, tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
			var out map[string]string
			decodeBody(t, w, &out)
			if out["error"] == "" {
				t.Fatalf("missing error message: %s", w.Body.String())
			}
		})
	}
}
