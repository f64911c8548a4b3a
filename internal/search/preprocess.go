package search

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const bom = "\ufeff"

// PrepareText canonicalizes an extracted text blob before it is stored or
// searched.
//
// Notes:
//   - Drops a leading byte order mark.
//   - Rewrites CRLF and lone CR line endings to LF so "]\n" page headers
//     are recognized in text produced on Windows.
//   - Applies Unicode NFC so precomposed and decomposed accents compare equal.
//   - Wraps a blob that carries no page marker at all as a single page 1.
//
// Blank input stays blank.
func PrepareText(raw string) string {
	s := strings.TrimPrefix(raw, bom)
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = norm.NFC.String(s)
	if !strings.Contains(s, pageMarker) {
		s = pageMarker + "1" + headerEnd + s
	}
	return s
}

// PrepareTextReader reads r to the end and returns the prepared text.
func PrepareTextReader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return PrepareText(string(b)), nil
}

// PrepareTextFile reads the file at path and returns the prepared text.
func PrepareTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return PrepareTextReader(f)
}

// CountPages returns the number of page blocks in an already prepared text.
func CountPages(text string) int {
	pages, err := SplitPages(text)
	if err != nil {
		return 0
	}
	return len(pages)
}
