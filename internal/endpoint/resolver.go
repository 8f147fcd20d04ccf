// Package endpoint derives the backend base URL from the host the browser
// used to reach the dashboard, so one build serves every deployment.
package endpoint

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"rfid_tracking/internal/models"
)

const (
	Scheme        = "http"
	PrimaryPort   = 7000 // reverse proxy in front of the line backends
	SecondaryPort = 8000 // cycle-time backend
	fallbackHost  = "localhost"
	loopbackIPv4  = "127.0.0.1"
)

// ResolveHost normalizes loopback names to "localhost" and returns any other
// host unchanged. An empty host (no browsing context) falls back to localhost.
func ResolveHost(host string) string {
	switch host {
	case "", fallbackHost, loopbackIPv4:
		return fallbackHost
	default:
		return host
	}
}

// Target returns the primary target; port 0 selects PrimaryPort.
func Target(host string, port int) models.EndpointTarget {
	return newTarget(host, port, PrimaryPort)
}

// SecondaryTarget returns the secondary target; port 0 selects SecondaryPort.
func SecondaryTarget(host string, port int) models.EndpointTarget {
	return newTarget(host, port, SecondaryPort)
}

func newTarget(host string, port, def int) models.EndpointTarget {
	if port == 0 {
		port = def
	}
	return models.EndpointTarget{Scheme: Scheme, Host: ResolveHost(host), Port: port}
}

// ResolveBaseURL formats "http://<host>:<port>", defaulting to port 7000.
func ResolveBaseURL(host string, port int) string {
	return Target(host, port).String()
}

// ResolveSecondaryBaseURL formats "http://<host>:<port>", defaulting to port 8000.
func ResolveSecondaryBaseURL(host string, port int) string {
	return SecondaryTarget(host, port).String()
}

// BrowsingHost extracts the hostname the browser used for r. Behind a reverse
// proxy the original host arrives in X-Forwarded-Host. The port the page was
// served on is dropped. The value is not validated.
func BrowsingHost(r *http.Request) string {
	if r == nil {
		return ""
	}
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	return stripPort(host)
}

func stripPort(hostport string) string {
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		return h
	}
	// no port: still unwrap a bracketed IPv6 literal
	return strings.TrimSuffix(strings.TrimPrefix(hostport, "["), "]")
}

// ParsePort reads an optional port override. Empty or invalid input yields 0,
// which callers treat as "use the default port".
func ParsePort(s string) int {
	if s == "" {
		return 0
	}
	p, err := strconv.Atoi(s)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
