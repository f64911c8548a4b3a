// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts s with strconv.Atoi, returning def when s is empty
// or not an integer.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// PageBounds are the defaults and limits for page/page_size parameters.
type PageBounds struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageBounds serves 20 items per page and never more than 100.
var DefaultPageBounds = PageBounds{DefaultSize: 20, MaxSize: 100}

// ClampPage parses raw page and page_size values. Unparsable values fall
// back to page 1 and b.DefaultSize; the size is then clamped to [1, b.MaxSize].
func ClampPage(rawPage, rawSize string, b PageBounds) (page, size int) {
	page = max(AtoiDefault(rawPage, 1), 1)
	size = max(AtoiDefault(rawSize, b.DefaultSize), 1)
	if b.MaxSize > 0 {
		size = min(size, b.MaxSize)
	}
	return page, size
}

// TotalPages returns how many pages of size hold total items.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
