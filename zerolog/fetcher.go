// Package zerolog provides logging decorators for the core services. The
// core packages stay log-free; the composition root wraps them here.
package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"scriptura"
)

// Ensure Fetcher implements scriptura.Fetcher at compile time.
var _ scriptura.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a scriptura.Fetcher with per-request logging.
type Fetcher struct {
	next   scriptura.Fetcher
	logger zerolog.Logger
}

// NewFetcher creates a logging decorator around next.
func NewFetcher(next scriptura.Fetcher, logger zerolog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome. Failures log
// at warn level because most callers degrade gracefully rather than abort.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)

	evt := f.logger.Debug()
	if err != nil {
		evt = f.logger.Warn().Err(err)
	}
	evt.Str("url", url).
		Dur("duration", time.Since(begin)).
		Int("bytes", len(body)).
		Msg("upstream fetch")

	return body, err
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
