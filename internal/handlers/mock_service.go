package handlers

import (
	"context"
	"net/http"
	"time"

	"rfid_tracking/internal/models"
	"rfid_tracking/internal/opday"
	"rfid_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockPages struct {
	session  models.PageSession
	query    models.ActiveQuery
	err      error
	queryErr error

	mountCalls  int
	lastPage    string
	lastID      string
	lastUpdate  models.FilterUpdate
	lastModal   models.ModalUpdate
	lastEnv     models.Environment
	resetCalls  int
	unmountedID string
}

func (m *mockPages) Mount(ctx context.Context, page string) (models.PageSession, error) {
	m.mountCalls++
	m.lastPage = page
	return m.session, m.err
}
func (m *mockPages) Unmount(ctx context.Context, id string) error {
	m.unmountedID = id
	return m.err
}
func (m *mockPages) Get(ctx context.Context, id string) (models.PageSession, error) {
	m.lastID = id
	return m.session, m.err
}
func (m *mockPages) Update(ctx context.Context, id string, u models.FilterUpdate) (models.PageSession, error) {
	m.lastID = id
	m.lastUpdate = u
	return m.session, m.err
}
func (m *mockPages) Reset(ctx context.Context, id string) (models.PageSession, error) {
	m.lastID = id
	m.resetCalls++
	return m.session, m.err
}
func (m *mockPages) SetModal(ctx context.Context, id string, u models.ModalUpdate) (models.PageSession, error) {
	m.lastID = id
	m.lastModal = u
	return m.session, m.err
}
func (m *mockPages) ActiveQuery(ctx context.Context, id string, env models.Environment) (models.ActiveQuery, error) {
	m.lastID = id
	m.lastEnv = env
	if m.err != nil {
		return models.ActiveQuery{}, m.err
	}
	return m.query, m.queryErr
}

type mockCounters struct {
	res       models.CounterResult
	err       error
	lastID    string
	lastRoute string
	lastEnv   models.Environment
}

func (m *mockCounters) Fetch(ctx context.Context, id, route string, env models.Environment) (models.CounterResult, error) {
	m.lastID = id
	m.lastRoute = route
	m.lastEnv = env
	return m.res, m.err
}

// ---- Shared Test Helpers ----

// fixedDays resolves reporting days against a frozen UTC clock.
func fixedDays(now time.Time) *opday.Resolver {
	return opday.NewResolver(func() time.Time { return now }, time.UTC)
}

func newTestService(now time.Time, pages service.Pages, counters service.Counters) *service.Service {
	return &service.Service{
		OperatingDay: fixedDays(now),
		Endpoints:    service.NewEndpointService(),
		Pages:        pages,
		Counters:     counters,
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func withHost(req *http.Request, host string) *http.Request {
	req.Host = host
	return req
}
