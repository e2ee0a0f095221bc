package goquery

import (
	"context"

	"scriptura"
)

// Ensure service implementations satisfy the domain interfaces at compile time.
var (
	_ scriptura.TitleService   = (*TitleService)(nil)
	_ scriptura.ChapterService = (*ChapterService)(nil)
)

// TitleService resolves localized book titles and chapter labels by
// fetching each book's chapter 1 page.
type TitleService struct {
	fetcher  scriptura.Fetcher
	resolver *Resolver
}

// NewTitleService creates a TitleService backed by fetcher.
func NewTitleService(fetcher scriptura.Fetcher) *TitleService {
	return &TitleService{fetcher: fetcher, resolver: NewResolver(fetcher)}
}

// BookTitle fetches and extracts the localized title for slug. A 404 maps
// to the NotAvailable sentinel: the upstream does not carry this language.
func (s *TitleService) BookTitle(ctx context.Context, slug, lang string) (string, error) {
	pageURL := scriptura.BookTitleURL(slug, lang)
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if scriptura.ErrorCode(err) == scriptura.ENOTFOUND {
			return scriptura.NotAvailable, nil
		}
		return "", err
	}
	doc, err := s.resolver.Resolve(ctx, pageURL, html)
	if err != nil {
		return "", err
	}
	return ExtractTitle(doc), nil
}

// ChapterLabel fetches the fixed chapter-1 page for lang and recovers the
// localized "chapter" word. Missing pages and unrecoverable headings yield
// an empty label, not an error.
func (s *TitleService) ChapterLabel(ctx context.Context, lang string) (string, error) {
	pageURL := scriptura.LabelURL(lang)
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if scriptura.ErrorCode(err) == scriptura.ENOTFOUND {
			return "", nil
		}
		return "", err
	}
	doc, err := s.resolver.Resolve(ctx, pageURL, html)
	if err != nil {
		return "", err
	}
	return ExtractLabel(doc), nil
}

// ChapterService fetches chapter pages and extracts verses and intros.
type ChapterService struct {
	fetcher  scriptura.Fetcher
	resolver *Resolver
}

// NewChapterService creates a ChapterService backed by fetcher.
func NewChapterService(fetcher scriptura.Fetcher) *ChapterService {
	return &ChapterService{fetcher: fetcher, resolver: NewResolver(fetcher)}
}

// Verses fetches a chapter page and returns its verses in document order.
// Fetch failures are surfaced to the caller: unlike titles and intros there
// is no sensible empty fallback for chapter body text.
func (s *ChapterService) Verses(ctx context.Context, book string, chapter int, lang string) ([]scriptura.Verse, error) {
	pageURL := scriptura.ChapterURL(book, chapter, lang)
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := s.resolver.Resolve(ctx, pageURL, html)
	if err != nil {
		return nil, err
	}
	return ExtractVerses(doc), nil
}

// Intro returns the chapter subtitle and introduction. Only 1 Nephi 1
// carries an intro block; every other address returns the zero value, as
// does any fetch or parse failure.
func (s *ChapterService) Intro(ctx context.Context, book string, chapter int, lang string) (scriptura.ChapterIntro, error) {
	if book != "1-ne" || chapter != 1 {
		return scriptura.ChapterIntro{}, nil
	}
	pageURL := scriptura.ChapterURL(book, chapter, lang)
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return scriptura.ChapterIntro{}, nil
	}
	doc, err := s.resolver.Resolve(ctx, pageURL, html)
	if err != nil {
		return scriptura.ChapterIntro{}, nil
	}
	return ExtractIntro(doc), nil
}
