package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scriptura"
)

// ExtractVerses returns the chapter's verses in document order. A document
// without verse containers yields an empty slice, not an error.
func ExtractVerses(doc *goquery.Document) []scriptura.Verse {
	var verses []scriptura.Verse
	doc.Find("p.verse").Each(func(_ int, sel *goquery.Selection) {
		num := strings.TrimSpace(sel.Find(".verse-number").First().Text())

		// Drop every number node before reading the body so the number
		// cannot appear twice.
		sel.Find(".verse-number").Remove()

		text := joinText(sel)
		if num != "" {
			text = stripLeadingNumber(text, num)
		}
		text = scriptura.TightenPunctuation(text)

		verses = append(verses, scriptura.Verse{
			Number: num,
			Text:   strings.TrimSpace(text),
		})
	})
	return verses
}

// stripLeadingNumber removes a leading occurrence of num plus trailing
// separator characters (space, period, NBSP, colon, hyphen/dash variants)
// from text. Upstream markup sometimes duplicates the verse number as plain
// text inside the body.
func stripLeadingNumber(text, num string) string {
	re := regexp.MustCompile(`^\s*` + regexp.QuoteMeta(num) + `[\s.\x{00a0}:\-–—]*`)
	return re.ReplaceAllString(text, "")
}
