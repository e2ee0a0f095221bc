package scriptura

import (
	"fmt"
	"net/url"
)

// BookSlugs lists the canonical book identifiers in reading order.
// Slugs are stable across languages.
var BookSlugs = []string{
	"1-ne", "2-ne", "jacob", "enos", "jarom", "omni",
	"w-of-m", "mosiah", "alma", "hel", "3-ne", "4-ne", "morm", "ether", "moro",
}

// BookChapters maps each canonical slug to its chapter count. Counts are
// fixed and never derived from scraped data.
var BookChapters = map[string]int{
	"1-ne": 22, "2-ne": 33, "jacob": 7, "enos": 1, "jarom": 1, "omni": 1,
	"w-of-m": 1, "mosiah": 29, "alma": 63, "hel": 16, "3-ne": 30, "4-ne": 1,
	"morm": 9, "ether": 15, "moro": 10,
}

// Title sentinels. UnknownTitle marks a page where no title strategy
// matched; NotAvailable marks a language the upstream does not carry.
const (
	UnknownTitle = "<UNKNOWN>"
	NotAvailable = "<NOT AVAILABLE>"
)

// baseURL is the upstream scripture content root. Chapter pages hang off it
// as /{slug}/{chapter}?lang={lang}.
const baseURL = "https://www.churchofjesuschrist.org/study/scriptures/bofm"

// ChapterURL returns the upstream URL for a chapter page.
func ChapterURL(slug string, chapter int, lang string) string {
	return fmt.Sprintf("%s/%s/%d?lang=%s", baseURL, slug, chapter, url.QueryEscape(lang))
}

// BookTitleURL returns the URL used to resolve a book's localized title.
// Chapter 1 is the page that consistently carries the book heading.
func BookTitleURL(slug, lang string) string {
	return ChapterURL(slug, 1, lang)
}

// LabelURL returns the fixed chapter-1 URL used for label and intro
// extraction.
func LabelURL(lang string) string {
	return ChapterURL("1-ne", 1, lang)
}

// Book represents one canonical book with its localized display name.
type Book struct {
	Slug     string `json:"abbr"`
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

// Validate returns an error if the book carries an unknown slug.
func (b *Book) Validate() error {
	if _, ok := BookChapters[b.Slug]; !ok {
		return Errorf(EINVALID, "unknown book slug %q", b.Slug)
	}
	return nil
}
