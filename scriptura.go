// Package scriptura extracts structured scripture text (book titles, chapter
// verses, chapter introductions, localized "chapter" labels) from the
// churchofjesuschrist.org study pages, normalizes it, and caches per-language
// book metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fiber/).
package scriptura

import "context"

// Fetcher retrieves raw HTML from upstream URLs.
// Implementations own connection pooling, timeouts, and retry policy.
type Fetcher interface {
	// Fetch performs a GET against url and returns the body as a string.
	// Bodies are always treated as UTF-8, regardless of any declared
	// encoding. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// BookService resolves per-language book metadata.
type BookService interface {
	// BooksForLanguage returns the canonical books with localized names
	// for lang. The cache key is lang exactly as supplied; callers must
	// normalize case before calling.
	BooksForLanguage(ctx context.Context, lang string) ([]Book, error)
}

// TitleService resolves localized titles and chapter labels from upstream.
type TitleService interface {
	// BookTitle returns the localized display title for a book slug.
	// Languages the upstream does not carry yield the NotAvailable
	// sentinel rather than an error.
	BookTitle(ctx context.Context, slug, lang string) (string, error)

	// ChapterLabel returns the localized word for "chapter", or an empty
	// string when none can be recovered.
	ChapterLabel(ctx context.Context, lang string) (string, error)
}

// ChapterService resolves chapter content from upstream.
type ChapterService interface {
	// Verses returns the chapter's verses in document order. A fetch
	// failure is surfaced as an error: an empty verse list would be
	// indistinguishable from a scrape failure.
	Verses(ctx context.Context, book string, chapter int, lang string) ([]Verse, error)

	// Intro returns the chapter subtitle and introduction. Extraction
	// failure is represented as the zero value, never as an error, so the
	// chapter page renders even when intro scraping fails.
	Intro(ctx context.Context, book string, chapter int, lang string) (ChapterIntro, error)
}

// NameTableStore persists the per-language name table.
type NameTableStore interface {
	// Load reads the table. A missing or corrupt store yields an empty
	// table, never a startup failure.
	Load(ctx context.Context) (NameTable, error)

	// Save writes the table atomically.
	Save(ctx context.Context, table NameTable) error
}
