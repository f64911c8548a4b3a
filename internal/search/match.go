package search

import "unicode"

// FuzzyThreshold is the similarity a fuzzy window must exceed to count as a match.
const FuzzyThreshold = 0.8

// Candidate is a match found in a page's normalized text. Offset and Length
// are rune counts and are valid in the original page text as well.
type Candidate struct {
	Offset int
	Length int
	Score  float64
}

// FindMatches scans text for query and returns candidates in ascending
// offset order. Both arguments must already be normalized.
//
// Exact mode restarts the search one rune after each hit, so overlapping
// occurrences are all reported ("aa" in "aaaa" hits at 0, 1 and 2). Fuzzy
// mode slides a query-wide window over every offset (clipped at the end of
// text) and keeps windows scoring above FuzzyThreshold; overlapping fuzzy
// hits are not merged.
func FindMatches(text, query []rune, fuzzy bool) []Candidate {
	if len(query) == 0 || len(text) == 0 {
		return nil
	}
	if fuzzy {
		return findFuzzy(text, query)
	}
	return findExact(text, query)
}

func findExact(text, query []rune) []Candidate {
	var out []Candidate
	for from := 0; ; {
		i := indexRunes(text, query, from)
		if i < 0 {
			return out
		}
		out = append(out, Candidate{Offset: i, Length: len(query), Score: 1})
		from = i + 1
	}
}

func findFuzzy(text, query []rune) []Candidate {
	var out []Candidate
	for i := range text {
		end := min(i+len(query), len(text))
		window := text[i:end]
		if s := Similarity(window, query); s > FuzzyThreshold {
			out = append(out, Candidate{Offset: i, Length: len(window), Score: s})
		}
	}
	return out
}

// indexRunes returns the first offset >= from where query occurs in text, or -1.
func indexRunes(text, query []rune, from int) int {
	last := len(text) - len(query)
outer:
	for i := from; i <= last; i++ {
		for j, r := range query {
			if text[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}

// IsWholeWord reports whether text[offset:offset+length] stands on word
// boundaries: the rune right before it and the rune right after it, where
// present, are neither letters nor digits.
func IsWholeWord(text []rune, offset, length int) bool {
	if offset > 0 && isWordRune(text[offset-1]) {
		return false
	}
	if end := offset + length; end < len(text) && isWordRune(text[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
