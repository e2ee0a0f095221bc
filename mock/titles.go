package mock

import (
	"context"

	"scriptura"
)

var _ scriptura.TitleService = (*TitleService)(nil)

// TitleService is a mock implementation of scriptura.TitleService.
type TitleService struct {
	BookTitleFn    func(ctx context.Context, slug, lang string) (string, error)
	ChapterLabelFn func(ctx context.Context, lang string) (string, error)
}

func (s *TitleService) BookTitle(ctx context.Context, slug, lang string) (string, error) {
	return s.BookTitleFn(ctx, slug, lang)
}

func (s *TitleService) ChapterLabel(ctx context.Context, lang string) (string, error) {
	return s.ChapterLabelFn(ctx, lang)
}
