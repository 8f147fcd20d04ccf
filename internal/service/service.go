package service

import (
	"context"
	"time"

	"rfid_tracking/internal/client"
	"rfid_tracking/internal/logger"
	"rfid_tracking/internal/models"
	"rfid_tracking/internal/repository"
)

// OperatingDay resolves the factory reporting day from the wall clock.
type OperatingDay interface {
	Now() time.Time
	Location() *time.Location
	IsAfterRolloverHour() bool
	CurrentReportingDay() models.ReportingDay
	At(t time.Time) models.ReportingDay
}

// Endpoints derives backend base URLs from the browsing host.
type Endpoints interface {
	Resolve(host string, port int) models.EndpointInfo
	Routes(host string) []models.RouteURL
}

// Pages is the filter state coordinator for mounted dashboard pages.
type Pages interface {
	Mount(ctx context.Context, page string) (models.PageSession, error)
	Unmount(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.PageSession, error)
	Update(ctx context.Context, id string, u models.FilterUpdate) (models.PageSession, error)
	Reset(ctx context.Context, id string) (models.PageSession, error)
	SetModal(ctx context.Context, id string, u models.ModalUpdate) (models.PageSession, error)
	ActiveQuery(ctx context.Context, id string, env models.Environment) (models.ActiveQuery, error)
}

// Counters fetches one counter route for a page using its active filters.
type Counters interface {
	Fetch(ctx context.Context, id, route string, env models.Environment) (models.CounterResult, error)
}

// Janitor evicts page sessions whose page went away without unmounting.
// Stop via context cancellation in main() for graceful shutdown.
type Janitor interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	OperatingDay
	Endpoints
	Pages
	Counters
	Janitor
}

// Deps are the collaborators that do not come from the repository layer.
type Deps struct {
	Days    OperatingDay
	Fetcher client.Fetcher
	IdleTTL time.Duration
	Log     *logger.Logger
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	pages := NewPageService(repos.Pages, deps.Days)
	return &Service{
		OperatingDay: deps.Days,
		Endpoints:    NewEndpointService(),
		Pages:        pages,
		Counters:     NewCounterService(pages, deps.Fetcher),
		Janitor:      NewJanitorService(repos.Pages, deps.IdleTTL, deps.Log),
	}
}
