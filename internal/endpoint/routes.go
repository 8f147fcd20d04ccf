package endpoint

import (
	"errors"
	"net/url"

	"rfid_tracking/internal/models"
)

// ErrUnknownRoute is returned by Lookup for a name not in the catalog.
var ErrUnknownRoute = errors.New("unknown route")

// Route names used by the dashboard pages.
const (
	RouteSewingOutput = "sewing-output"
	RouteRework       = "rework"
	RouteQC           = "qc"
	RouteDryroomIn    = "dryroom-in"
	RouteDryroomOut   = "dryroom-out"
	RouteFoldingIn    = "folding-in"
	RouteFoldingOut   = "folding-out"
	RouteLastStatus   = "last-status"
	RouteCycleTime    = "cycle-time"
)

// catalog lists the path prefixes the reverse proxy forwards to the line
// backends. Which backend serves a prefix is the proxy's concern.
var catalog = []models.Route{
	{Name: RouteSewingOutput, Prefix: "/wira"},
	{Name: RouteRework, Prefix: "/rework"},
	{Name: RouteQC, Prefix: "/qc"},
	{Name: RouteDryroomIn, Prefix: "/dryroom/in"},
	{Name: RouteDryroomOut, Prefix: "/dryroom/out"},
	{Name: RouteFoldingIn, Prefix: "/folding/in"},
	{Name: RouteFoldingOut, Prefix: "/folding/out"},
	{Name: RouteLastStatus, Prefix: "/last-status"},
	{Name: RouteCycleTime, Prefix: "/cycletime", Secondary: true},
}

// Routes returns a copy of the route catalog.
func Routes() []models.Route {
	out := make([]models.Route, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a route by name.
func Lookup(name string) (models.Route, error) {
	for _, r := range catalog {
		if r.Name == name {
			return r, nil
		}
	}
	return models.Route{}, ErrUnknownRoute
}

// BaseURL returns the base URL a route is reached at from host.
func BaseURL(host string, r models.Route) string {
	if r.Secondary {
		return ResolveSecondaryBaseURL(host, 0)
	}
	return ResolveBaseURL(host, 0)
}

// URL builds the full request URL for a route with optional query values.
func URL(host string, r models.Route, q url.Values) string {
	u := BaseURL(host, r) + r.Prefix
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
