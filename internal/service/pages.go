package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rfid_tracking/internal/filter"
	"rfid_tracking/internal/models"
	"rfid_tracking/internal/opday"
	"rfid_tracking/internal/repository"

	"github.com/google/uuid"
)

const defaultPageName = "dashboard"

// ErrPageNotFound is returned for an id with no mounted page.
var ErrPageNotFound = errors.New("page not found")

type PageService struct {
	repo repository.PageRepo
	days OperatingDay
	now  func() time.Time
}

func NewPageService(repo repository.PageRepo, days OperatingDay) *PageService {
	if days == nil {
		days = opday.NewResolver(nil, nil)
	}
	return &PageService{
		repo: repo,
		days: days,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Mount creates fresh filter state for a page: empty filters, popovers closed.
func (s *PageService) Mount(ctx context.Context, page string) (models.PageSession, error) {
	page = strings.TrimSpace(page)
	if page == "" {
		page = defaultPageName
	}
	now := s.now()
	ps := models.PageSession{
		ID:        uuid.NewString(),
		Page:      page,
		MountedAt: now,
		TouchedAt: now,
	}
	if err := s.repo.Create(ctx, ps); err != nil {
		return models.PageSession{}, fmt.Errorf("mount page %q: %w", page, err)
	}
	return ps, nil
}

// Unmount discards the page's state.
func (s *PageService) Unmount(ctx context.Context, id string) error {
	return s.mapNotFound(id, s.repo.Delete(ctx, id))
}

// Get returns the current state and marks the page as still alive.
func (s *PageService) Get(ctx context.Context, id string) (models.PageSession, error) {
	return s.mutate(ctx, id, func(*models.PageSession) bool { return false })
}

// Update replaces exactly one filter field.
func (s *PageService) Update(ctx context.Context, id string, u models.FilterUpdate) (models.PageSession, error) {
	return s.mutate(ctx, id, func(ps *models.PageSession) bool {
		next := filter.Apply(ps.Filters, u)
		if next == ps.Filters {
			return false
		}
		ps.Filters = next
		return true
	})
}

// Reset clears the filters. Popover visibility is left as is.
func (s *PageService) Reset(ctx context.Context, id string) (models.PageSession, error) {
	return s.mutate(ctx, id, func(ps *models.PageSession) bool {
		next := filter.Reset(ps.Filters)
		if next == ps.Filters {
			return false
		}
		ps.Filters = next
		return true
	})
}

// SetModal opens or closes one filter popover.
func (s *PageService) SetModal(ctx context.Context, id string, u models.ModalUpdate) (models.PageSession, error) {
	return s.mutate(ctx, id, func(ps *models.PageSession) bool {
		next := filter.ApplyModal(ps.Modals, u)
		if next == ps.Modals {
			return false
		}
		ps.Modals = next
		return true
	})
}

// ActiveQuery returns the parameters a data request should carry. Empty dates
// default to the reporting day at env.Now (or now, if env has no clock).
func (s *PageService) ActiveQuery(ctx context.Context, id string, env models.Environment) (models.ActiveQuery, error) {
	ps, err := s.Get(ctx, id)
	if err != nil {
		return models.ActiveQuery{}, err
	}
	day := s.reportingDay(env)
	q := models.ActiveQuery{
		WorkOrder:    ps.Filters.WorkOrder,
		DateFrom:     ps.Filters.DateFrom,
		DateTo:       ps.Filters.DateTo,
		ReportingDay: day,
	}
	if q.DateFrom == "" {
		q.DateFrom = day.String()
	}
	if q.DateTo == "" {
		q.DateTo = day.String()
	}
	return q, nil
}

func (s *PageService) reportingDay(env models.Environment) models.ReportingDay {
	if env.Now.IsZero() {
		return s.days.CurrentReportingDay()
	}
	return s.days.At(env.Now)
}

// mutate applies fn and bumps Version when fn changed the state. TouchedAt is
// refreshed on every call so the janitor leaves live pages alone.
func (s *PageService) mutate(ctx context.Context, id string, fn func(*models.PageSession) bool) (models.PageSession, error) {
	now := s.now()
	ps, err := s.repo.Update(ctx, id, func(ps *models.PageSession) bool {
		if fn(ps) {
			ps.Version++
		}
		ps.TouchedAt = now
		return true
	})
	if err != nil {
		return models.PageSession{}, s.mapNotFound(id, err)
	}
	return ps, nil
}

func (s *PageService) mapNotFound(id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	return err
}
