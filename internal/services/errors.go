// Package services defines the business logic for documents, highlights and
// search. This file centralizes service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"

	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// Search errors.
var (
	// ErrDocumentIDRequired is returned when a search names no document.
	ErrDocumentIDRequired = errors.New("document id required")

	// ErrDocumentNotFound indicates that the document does not exist or is
	// not accessible to the current user.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoText is returned when the document exists but carries no
	// extracted text. Handlers report it as an empty, successful search.
	ErrNoText = errors.New("no text content available for this document")

	// ErrSearchFailed wraps an unexpected fault inside the engine.
	ErrSearchFailed = errors.New("search failed")

	// The following are re-exported from the engine so handlers depend on
	// one package for error mapping.
	ErrEmptyQuery   = search.ErrEmptyQuery
	ErrQueryTooLong = search.ErrQueryTooLong
	ErrPageTooLong  = search.ErrPageTooLong
)

// Document errors.
var (
	// ErrEmptyName is returned when a document is created without a name.
	ErrEmptyName = errors.New("document name is empty")

	// ErrNameTooLong is returned when a document name exceeds the stored width.
	ErrNameTooLong = errors.New("document name too long")
)

// Highlight errors.
var (
	// ErrHighlightNotFound indicates that the highlight does not exist or is
	// not owned by the current user.
	ErrHighlightNotFound = errors.New("highlight not found")

	// ErrIdempotencyConflict is returned when an Idempotency-Key is held by a
	// concurrent request whose highlight cannot be replayed.
	ErrIdempotencyConflict = errors.New("idempotency key is in use by another request")

	// ErrEmptyHighlightText is returned when a highlight carries no text.
	ErrEmptyHighlightText = errors.New("highlight text is empty")

	// ErrInvalidPage is returned when the page number is below 1.
	ErrInvalidPage = errors.New("page number must be >= 1")

	// ErrInvalidPosition is returned unless 0 <= start <= end.
	ErrInvalidPosition = errors.New("position must satisfy 0 <= start <= end")

	// ErrInvalidColor is returned when a color is not a #rgb or #rrggbb hex value.
	ErrInvalidColor = errors.New("color must be a hex value like #ffeb3b")
)
