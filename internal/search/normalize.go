package search

import "unicode"

// Normalize returns the comparison form of s.
//
// Case-sensitive searches compare s as-is. Otherwise every rune is mapped
// through unicode.ToLower, a one-rune-in, one-rune-out fold, so offsets found
// in the result index the same characters in s. Special casings that expand
// to several code points (e.g. German sharp s upper forms) are not applied.
func Normalize(s []rune, caseSensitive bool) []rune {
	if caseSensitive {
		return s
	}
	out := make([]rune, len(s))
	for i, r := range s {
		out[i] = unicode.ToLower(r)
	}
	return out
}
