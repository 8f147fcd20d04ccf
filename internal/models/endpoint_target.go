package models

import (
	"net"
	"strconv"
)

// EndpointTarget is the scheme+host+port a data request must be sent to.
type EndpointTarget struct {
	Scheme string `json:"scheme"` // always "http"
	Host   string `json:"host"`
	Port   int    `json:"port"`
}

// String formats the target as a base URL, e.g. http://10.5.0.2:7000.
// IPv6 literals are bracketed.
func (t EndpointTarget) String() string {
	return t.Scheme + "://" + net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Route is a named path prefix forwarded by the reverse proxy to a backend.
type Route struct {
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	// Secondary routes are reached on the secondary backend port (8000)
	// instead of the primary proxy port (7000).
	Secondary bool `json:"secondary"`
}

// CounterResult is the raw upstream answer for one counter route.
type CounterResult struct {
	Route  string `json:"route"`
	URL    string `json:"url"`
	Status int    `json:"status"`
	Body   []byte `json:"-"`
}

// EndpointInfo describes where a page's data requests go from a given host.
type EndpointInfo struct {
	BrowsingHost string         `json:"browsing_host"`
	Host         string         `json:"host"`
	Primary      EndpointTarget `json:"primary"`
	Secondary    EndpointTarget `json:"secondary"`
	PrimaryURL   string         `json:"primary_url"`
	SecondaryURL string         `json:"secondary_url"`
}

// RouteURL pairs a catalog route with its resolved request URL.
type RouteURL struct {
	Route
	URL string `json:"url"`
}
