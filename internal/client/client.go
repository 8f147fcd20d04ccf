// Package client performs the data requests dashboard pages send to the line
// backends. It only moves bytes; decoding counters is up to the page.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20 // 1 MB
)

// ErrUpstreamStatus wraps any non-2xx answer from a backend.
var ErrUpstreamStatus = errors.New("upstream returned error status")

// Response is the raw upstream answer.
type Response struct {
	Status int
	Body   []byte
}

// Fetcher issues a GET and returns the raw response.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (Response, error)
}

type HTTPClient struct {
	http *http.Client
}

// New returns a client with the given timeout (0 selects 5s).
func New(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{http: &http.Client{Timeout: timeout}}
}

func (c *HTTPClient) Get(ctx context.Context, rawURL string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request %q: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("get %q: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{Status: resp.StatusCode}, fmt.Errorf("read body of %q: %w", rawURL, err)
	}
	out := Response{Status: resp.StatusCode, Body: body}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, fmt.Errorf("get %q: %w: %d", rawURL, ErrUpstreamStatus, resp.StatusCode)
	}
	return out, nil
}
