// Package books resolves per-language book metadata. Resolved entries are
// cached for a day because the live fallback costs one upstream fetch per
// book.
package books

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"scriptura"
)

// CacheTTL is how long a resolved language entry stays fresh. Stale entries
// are replaced on the next request, never actively evicted.
const CacheTTL = 24 * time.Hour

// DefaultConcurrency bounds parallel title fetches during live fallback.
const DefaultConcurrency = 6

// cacheEntry is one cached per-language resolution.
type cacheEntry struct {
	fetchedAt time.Time
	books     []scriptura.Book
}

// Ensure Service implements scriptura.BookService at compile time.
var _ scriptura.BookService = (*Service)(nil)

// Service implements scriptura.BookService over the precomputed name table,
// falling back to live title extraction for languages the table does not
// cover.
type Service struct {
	titles      scriptura.TitleService
	table       scriptura.NameTable
	concurrency int
	now         func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source. Defaults to time.Now; tests inject a
// controllable clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithConcurrency sets the live-fallback fetch limit.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewService creates a Service over titles and the precomputed table.
// A nil table behaves as an empty one.
func NewService(titles scriptura.TitleService, table scriptura.NameTable, opts ...Option) *Service {
	s := &Service{
		titles:      titles,
		table:       table,
		concurrency: DefaultConcurrency,
		now:         time.Now,
		cache:       make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BooksForLanguage returns the 15 canonical books with localized names for
// lang. Chapter counts always come from the static table, never from
// scraped data. The cache key is lang exactly as supplied.
func (s *Service) BooksForLanguage(ctx context.Context, lang string) ([]scriptura.Book, error) {
	if books, ok := s.cached(lang); ok {
		return books, nil
	}

	books, err := s.resolve(ctx, lang)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[lang] = cacheEntry{fetchedAt: s.now(), books: books}
	s.mu.Unlock()

	return books, nil
}

// cached returns the fresh cache entry for lang, if any. Concurrent readers
// for different languages share the read lock and never block each other.
func (s *Service) cached(lang string) ([]scriptura.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[lang]
	if !ok || expired(entry, s.now()) {
		return nil, false
	}
	return entry.books, true
}

// expired reports whether entry is stale at now.
func expired(entry cacheEntry, now time.Time) bool {
	return now.Sub(entry.fetchedAt) >= CacheTTL
}

func (s *Service) resolve(ctx context.Context, lang string) ([]scriptura.Book, error) {
	names := s.table[lang]
	if len(names) == 0 {
		return s.resolveLive(ctx, lang)
	}

	// Fast path: build from precomputed names, no network.
	books := make([]scriptura.Book, 0, len(scriptura.BookSlugs))
	for _, slug := range scriptura.BookSlugs {
		name := names[slug]
		if name == "" {
			name = strings.ToUpper(slug)
		}
		books = append(books, scriptura.Book{
			Slug:     slug,
			Name:     name,
			Chapters: scriptura.BookChapters[slug],
		})
	}
	return books, nil
}

// resolveLive fetches each book's title upstream, one fetch per slug. A
// miss is expensive, which is why resolved entries are cached for a full
// day.
func (s *Service) resolveLive(ctx context.Context, lang string) ([]scriptura.Book, error) {
	books := make([]scriptura.Book, len(scriptura.BookSlugs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, slug := range scriptura.BookSlugs {
		i, slug := i, slug
		g.Go(func() error {
			title, err := s.titles.BookTitle(gctx, slug, lang)
			if err != nil {
				return err
			}
			books[i] = scriptura.Book{
				Slug:     slug,
				Name:     title,
				Chapters: scriptura.BookChapters[slug],
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return books, nil
}
