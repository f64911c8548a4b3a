// Package services – DocumentService
//
// This file implements the DocumentService, which manages the document
// registry: registering a document with its page-marked text, reading it back,
// listing a user's documents page by page, and deleting a document together
// with its highlights.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/repo"
	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// DocumentService provides document registry operations scoped to a user.
type DocumentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// NameMaxLen caps document names by rune length.
	NameMaxLen int
}

// NewDocumentService constructs a DocumentService with the stored name width.
func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{DB: db, NameMaxLen: 255}
}

// Create registers a document for userID. The text is normalized (BOM, line
// endings, NFC) before it is stored; a nil or empty text stores a document
// that searches report as having no text.
func (s *DocumentService) Create(ctx context.Context, userID, name string, text *string) (*domain.Document, error) {
	tr := otel.Tracer("services/DocumentService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	name = normalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if s.NameMaxLen > 0 && utf8.RuneCountInString(name) > s.NameMaxLen {
		return nil, ErrNameTooLong
	}

	var stored *string
	pages := 0
	if text != nil {
		if prepared := search.PrepareText(*text); prepared != "" {
			stored = &prepared
			pages = search.CountPages(prepared)
		}
	}
	span.SetAttributes(attribute.Int("document.pages", pages))

	return repo.CreateDocument(ctx, s.DB, userID, name, stored, pages)
}

// Get returns the document owned by userID.
func (s *DocumentService) Get(ctx context.Context, userID, id string) (*domain.Document, error) {
	d, err := repo.GetDocument(ctx, s.DB, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrDocumentNotFound
	}
	return d, err
}

// ListPage returns a page of the user's documents (newest first) and the
// total count. Invalid page or pageSize fall back to 1 and 20.
func (s *DocumentService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Document, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountDocuments(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Document{}, 0, nil
	}

	items, err := repo.ListDocumentsPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}

// Stats returns the number of userID's documents and their latest update
// time, which together change whenever the listing does.
func (s *DocumentService) Stats(ctx context.Context, userID string) (int64, *time.Time, error) {
	return repo.DocumentsStats(ctx, s.DB, userID)
}

// Delete soft-deletes the document and its highlights.
func (s *DocumentService) Delete(ctx context.Context, userID, id string) error {
	err := repo.DeleteDocument(ctx, s.DB, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrDocumentNotFound
	}
	return err
}

// normalizeName trims whitespace and collapses inner runs to one space.
func normalizeName(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE matches consecutive whitespace.
var whitespaceRE = regexp.MustCompile(`\s+`)
