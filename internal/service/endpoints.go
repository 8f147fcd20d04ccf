package service

import (
	"rfid_tracking/internal/endpoint"
	"rfid_tracking/internal/models"
)

type EndpointService struct{}

func NewEndpointService() *EndpointService {
	return &EndpointService{}
}

// Resolve reports both backend targets for host. port overrides the primary
// port only; 0 keeps the default.
func (s *EndpointService) Resolve(host string, port int) models.EndpointInfo {
	primary := endpoint.Target(host, port)
	secondary := endpoint.SecondaryTarget(host, 0)
	return models.EndpointInfo{
		BrowsingHost: host,
		Host:         primary.Host,
		Primary:      primary,
		Secondary:    secondary,
		PrimaryURL:   primary.String(),
		SecondaryURL: secondary.String(),
	}
}

// Routes lists the route catalog with URLs resolved for host.
func (s *EndpointService) Routes(host string) []models.RouteURL {
	routes := endpoint.Routes()
	out := make([]models.RouteURL, 0, len(routes))
	for _, r := range routes {
		out = append(out, models.RouteURL{Route: r, URL: endpoint.URL(host, r, nil)})
	}
	return out
}
