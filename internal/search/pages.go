package search

import "strings"

const (
	pageMarker = "[PAGE "
	headerEnd  = "]\n"
)

// Page is one page of a document. Number is 1-based and follows the order
// the page blocks appear in the text, not the label written in the marker.
type Page struct {
	Number int
	Text   string
}

// SplitPages cuts a document blob into pages on the literal "[PAGE " marker.
//
// Anything before the first marker is preamble and dropped. A page's text is
// everything after the first "]\n" of its block; a block without one yields a
// page with empty text so numbering stays aligned. Malformed markers never
// fail the split. Only an empty blob is an error.
func SplitPages(text string) ([]Page, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	frags := strings.Split(text, pageMarker)
	pages := make([]Page, 0, len(frags)-1)
	for i, frag := range frags[1:] {
		p := Page{Number: i + 1}
		if _, body, ok := strings.Cut(frag, headerEnd); ok {
			p.Text = body
		}
		pages = append(pages, p)
	}
	return pages, nil
}
