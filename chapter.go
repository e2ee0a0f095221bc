package scriptura

import "strings"

// Verse represents one verse of a chapter. Number may be empty when the
// upstream markup carries no number element.
type Verse struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// String renders the verse as "{number} {text}" trimmed, which is the wire
// form the chapter API emits.
func (v Verse) String() string {
	return strings.TrimSpace(v.Number + " " + v.Text)
}

// ChapterIntro holds a chapter's subtitle and introduction. The zero value
// is the valid "nothing found" result.
type ChapterIntro struct {
	Subtitle     string `json:"subtitle"`
	Introduction string `json:"introduction"`
}
