package mock

import (
	"context"

	"scriptura"
)

var _ scriptura.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of scriptura.ChapterService.
type ChapterService struct {
	VersesFn func(ctx context.Context, book string, chapter int, lang string) ([]scriptura.Verse, error)
	IntroFn  func(ctx context.Context, book string, chapter int, lang string) (scriptura.ChapterIntro, error)
}

func (s *ChapterService) Verses(ctx context.Context, book string, chapter int, lang string) ([]scriptura.Verse, error) {
	return s.VersesFn(ctx, book, chapter, lang)
}

func (s *ChapterService) Intro(ctx context.Context, book string, chapter int, lang string) (scriptura.ChapterIntro, error) {
	return s.IntroFn(ctx, book, chapter, lang)
}
