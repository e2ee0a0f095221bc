// Package http provides the retrying HTTP fetcher used for all upstream
// scripture page requests.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"scriptura"
)

// Default fetch policy. Timeouts are per-request and fatal to that single
// request only; retries cover transient upstream failures.
const (
	DefaultTimeout   = 12 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; scriptura/1.0)"
)

// DefaultRetryDelays returns the backoff delays between attempts: 0.5s, 1s,
// 2s (three retries, four total attempts).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second}
}

// retryableStatus reports whether a response status warrants another
// attempt. Only idempotent GETs pass through this fetcher, so retrying is
// safe.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Ensure Fetcher implements scriptura.Fetcher at compile time.
var _ scriptura.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from upstream URLs over a pooled HTTP client,
// retrying transient failures with exponential backoff.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays sets the backoff delays between attempts. Useful for
// testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a Fetcher with a connection-pooling client.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}

	return f
}

// Fetch GETs url and returns the body as a string, always treated as UTF-8.
// Transport errors and the statuses 429/500/502/503/504 are retried with
// backoff; a 404 returns ENOTFOUND immediately; exhausted retries return
// EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	attempts := len(f.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.retryDelays[attempt-1]):
			}
		}

		body, retry, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retry {
			return "", err
		}
		lastErr = err
	}

	return "", scriptura.Errorf(scriptura.EUNAVAILABLE, "fetch %s failed after %d attempts: %v", url, attempts, lastErr)
}

// fetchOnce performs a single attempt. retry reports whether the failure is
// transient.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (body string, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, scriptura.Errorf(scriptura.EINVALID, "build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, scriptura.Errorf(scriptura.ENOTFOUND, "not found: %s", url)
	case retryableStatus(resp.StatusCode):
		return "", true, scriptura.Errorf(scriptura.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", false, scriptura.Errorf(scriptura.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	return string(b), false, nil
}

// Close releases idle pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
