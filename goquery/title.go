package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scriptura"
)

// TitleStrategy is one candidate selector for the book title. Fn returns an
// empty string when its selector finds nothing, passing control to the next
// strategy in order.
type TitleStrategy struct {
	Name string
	Fn   func(doc *goquery.Document) string
}

// TitleStrategies returns the ordered candidate list for title resolution.
// First non-empty result wins. The list is a plain slice so strategies can
// be unit-tested independently and reordered.
func TitleStrategies() []TitleStrategy {
	return []TitleStrategy{
		// The contentTitle region is the most consistent on scripture pages.
		{Name: "contentTitle", Fn: func(doc *goquery.Document) string {
			return strings.TrimSpace(doc.Find(`span[class*="contentTitle"] div`).First().Text())
		}},
		{Name: "dominant", Fn: func(doc *goquery.Document) string {
			return strings.TrimSpace(doc.Find("h1 span.dominant").First().Text())
		}},
		{Name: "h1", Fn: func(doc *goquery.Document) string {
			return strings.TrimSpace(doc.Find("h1").First().Text())
		}},
		// og:title is less ideal but better than nothing.
		{Name: "og:title", Fn: func(doc *goquery.Document) string {
			content, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
			return strings.TrimSpace(content)
		}},
	}
}

// ExtractTitle resolves the book title from a content document and strips
// leaked chapter headings. Chapter leakage occurs as either a leading
// "Chapter N" phrase or a bare trailing digit, and the two can co-occur, so
// both strips run independently.
func ExtractTitle(doc *goquery.Document) string {
	title := scriptura.UnknownTitle
	for _, s := range TitleStrategies() {
		if t := s.Fn(doc); t != "" {
			title = t
			break
		}
	}
	title = scriptura.StripLeadingChapterPhrase(title)
	return scriptura.CleanSpaces(scriptura.StripTrailingChapterNumber(scriptura.CleanSpaces(title)))
}
