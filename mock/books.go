package mock

import (
	"context"

	"scriptura"
)

var _ scriptura.BookService = (*BookService)(nil)

// BookService is a mock implementation of scriptura.BookService.
type BookService struct {
	BooksForLanguageFn func(ctx context.Context, lang string) ([]scriptura.Book, error)
}

func (s *BookService) BooksForLanguage(ctx context.Context, lang string) ([]scriptura.Book, error) {
	return s.BooksForLanguageFn(ctx, lang)
}
