package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"scriptura"
)

// Ensure BookService implements scriptura.BookService at compile time.
var _ scriptura.BookService = (*BookService)(nil)

// BookService wraps a scriptura.BookService with lookup logging, making
// cache misses (and their 15-fetch cost) visible in the logs.
type BookService struct {
	next   scriptura.BookService
	logger zerolog.Logger
}

// NewBookService creates a logging decorator around next.
func NewBookService(next scriptura.BookService, logger zerolog.Logger) *BookService {
	return &BookService{next: next, logger: logger}
}

// BooksForLanguage delegates to the wrapped service and logs the outcome.
func (s *BookService) BooksForLanguage(ctx context.Context, lang string) ([]scriptura.Book, error) {
	begin := time.Now()
	books, err := s.next.BooksForLanguage(ctx, lang)
	if err != nil {
		s.logger.Error().Err(err).Str("lang", lang).Msg("book lookup failed")
		return nil, err
	}

	s.logger.Debug().
		Str("lang", lang).
		Int("books", len(books)).
		Dur("duration", time.Since(begin)).
		Msg("book lookup")

	return books, nil
}
