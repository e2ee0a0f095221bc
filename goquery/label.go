package goquery

import (
	"github.com/PuerkitoBio/goquery"

	"scriptura"
)

// ExtractLabel recovers the localized word for "chapter" from a chapter
// document's heading element. The primary selector is p.title-number; some
// themes wrap the heading in a span or h2 variant, caught by the bare class
// fallback. Returns an empty string when no heading is found.
func ExtractLabel(doc *goquery.Document) string {
	for _, selector := range []string{"p.title-number", ".title-number"} {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := joinText(sel); text != "" {
			return scriptura.LabelFromHeading(text)
		}
	}
	return ""
}
