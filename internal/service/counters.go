package service

import (
	"context"
	"errors"
	"net/url"

	"rfid_tracking/internal/client"
	"rfid_tracking/internal/endpoint"
	"rfid_tracking/internal/models"
)

var errNoFetcher = errors.New("counter fetching is not configured")

// Query parameter names understood by the line backends.
const (
	paramWorkOrder = "wo"
	paramDateFrom  = "date_from"
	paramDateTo    = "date_to"
)

type CounterService struct {
	pages   Pages
	fetcher client.Fetcher
}

func NewCounterService(pages Pages, fetcher client.Fetcher) *CounterService {
	return &CounterService{pages: pages, fetcher: fetcher}
}

// Fetch resolves the route against the browsing host, applies the page's
// active filters and performs the request.
func (s *CounterService) Fetch(ctx context.Context, id, route string, env models.Environment) (models.CounterResult, error) {
	r, err := endpoint.Lookup(route)
	if err != nil {
		return models.CounterResult{}, err
	}
	q, err := s.pages.ActiveQuery(ctx, id, env)
	if err != nil {
		return models.CounterResult{}, err
	}
	res := models.CounterResult{
		Route: r.Name,
		URL:   endpoint.URL(env.Host, r, queryValues(q)),
	}
	if s.fetcher == nil {
		return res, errNoFetcher
	}
	resp, err := s.fetcher.Get(ctx, res.URL)
	res.Status = resp.Status
	res.Body = resp.Body
	return res, err
}

func queryValues(q models.ActiveQuery) url.Values {
	v := url.Values{}
	if q.WorkOrder != "" {
		v.Set(paramWorkOrder, q.WorkOrder)
	}
	v.Set(paramDateFrom, q.DateFrom)
	v.Set(paramDateTo, q.DateTo)
	return v
}
