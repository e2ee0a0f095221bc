package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"scriptura"
)

// joinText joins the selection's descendant text nodes with single spaces
// and normalizes the result. Unlike Selection.Text, adjacent nodes never
// run together.
func joinText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return scriptura.CleanSpaces(strings.Join(parts, " "))
}
