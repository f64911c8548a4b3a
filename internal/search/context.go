package search

// Snippet is the text around a match, split into three parts.
type Snippet struct {
	Before string `json:"before" yaml:"before"`
	Match  string `json:"match" yaml:"match"`
	After  string `json:"after" yaml:"after"`
}

// Position is the [Start, End) rune range of a match within its page.
type Position struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ExtractContext slices the match at [offset, offset+length) out of page
// together with up to n runes on either side. All bounds are clamped to the
// page, so a window never leaves [0, len(page)] and never splits a rune.
func ExtractContext(page []rune, offset, length, n int) (Snippet, Position) {
	n = max(n, 0)
	start := clamp(offset, 0, len(page))
	end := clamp(offset+length, start, len(page))
	from := max(0, start-n)
	to := min(len(page), end+n)

	return Snippet{
		Before: string(page[from:start]),
		Match:  string(page[start:end]),
		After:  string(page[end:to]),
	}, Position{Start: start, End: end}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
