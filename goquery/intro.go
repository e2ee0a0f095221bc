package goquery

import (
	"github.com/PuerkitoBio/goquery"

	"scriptura"
)

// Selector cascades for the intro blocks. Upstream tags them by class, id
// prefix, or data-aid prefix depending on locale.
const (
	subtitleSelector = `p.subtitle, [id^="subtitle"], [data-aid^="subtitle"]`
	introSelector    = `p.intro, [id^="intro"], [data-aid^="intro"]`
)

// ExtractIntro pulls the chapter subtitle and introduction from a content
// document. Missing elements yield empty fields, never an error: the
// chapter page must render even when intro scraping fails.
func ExtractIntro(doc *goquery.Document) scriptura.ChapterIntro {
	return scriptura.ChapterIntro{
		Subtitle:     introText(doc, subtitleSelector),
		Introduction: introText(doc, introSelector),
	}
}

func introText(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	return scriptura.Demojibake(joinText(sel))
}
