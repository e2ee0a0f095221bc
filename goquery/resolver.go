// Package goquery implements DOM-based extraction of scripture content
// using CSS selectors over parsed upstream pages. Every extractor degrades
// through an ordered fallback chain and returns an empty or sentinel value
// rather than failing, because the upstream HTML shape drifts per locale.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scriptura"
)

// Resolver locates the content document for a fetched page. Some locales
// inline the scripture text through iframe[srcdoc]; others render it via a
// genuinely separate framed request that must be fetched.
type Resolver struct {
	fetcher scriptura.Fetcher
}

// NewResolver creates a Resolver that uses fetcher for framed sub-requests.
func NewResolver(fetcher scriptura.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve parses html (fetched from pageURL) and returns the document that
// actually carries the scripture content. The fallback chain, first match
// wins:
//
//  1. iframe[srcdoc] — parse the embedded document directly, no extra fetch.
//  2. A scripture-path iframe[src], preferring one scoped under
//     section#content.
//  3. The first iframe[src] that is not a login or silent-auth frame.
//  4. No usable iframe — the outer document is the content document.
//
// Frame URLs chosen in steps 2-3 are resolved against pageURL and fetched
// with the same retry policy as the primary fetch.
func (r *Resolver) Resolve(ctx context.Context, pageURL, html string) (*goquery.Document, error) {
	outer, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scriptura.Errorf(scriptura.EINVALID, "parse page: %v", err)
	}

	if srcdoc, ok := outer.Find("iframe[srcdoc]").First().Attr("srcdoc"); ok && srcdoc != "" {
		inner, err := goquery.NewDocumentFromReader(strings.NewReader(srcdoc))
		if err != nil {
			return nil, scriptura.Errorf(scriptura.EINVALID, "parse srcdoc frame: %v", err)
		}
		return inner, nil
	}

	frame := outer.Find(`section#content iframe[src*="/study/scriptures/"]`).First()
	if frame.Length() == 0 {
		frame = outer.Find(`iframe[src*="/study/scriptures/"]`).First()
	}
	if frame.Length() == 0 {
		outer.Find("iframe[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			src, _ := sel.Attr("src")
			if strings.Contains(src, "login") || strings.Contains(src, "silent") {
				return true
			}
			frame = sel
			return false
		})
	}

	src, ok := frame.Attr("src")
	if !ok || src == "" {
		return outer, nil
	}

	frameURL, err := resolveRef(pageURL, src)
	if err != nil {
		return outer, nil
	}
	inner, err := r.fetcher.Fetch(ctx, frameURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return nil, scriptura.Errorf(scriptura.EINVALID, "parse frame document: %v", err)
	}
	return doc, nil
}

// resolveRef resolves href against the page URL, as a browser would for an
// iframe src.
func resolveRef(pageURL, href string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
