// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Document
// model, the registry the search service reads extracted text from.
//
// All functions are context-aware and accept a *gorm.DB handle, so they
// can run inside transactions. They follow the "thin repository" approach:
// persistence and query composition only, no business rules.
//
// Error semantics:
//   - A missing (or foreign-owned) document yields ErrNotFound.
//   - Other DB errors are propagated unchanged.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// listColumns are the document columns loaded for listings; the extracted
// text can be large and is only read by GetDocument.
var listColumns = []string{"id", "user_id", "name", "page_count", "created_at", "updated_at"}

// CreateDocument inserts a document owned by userID. text may be nil when no
// text has been extracted yet.
func CreateDocument(ctx context.Context, db *gorm.DB, userID, name string, text *string, pageCount int) (*domain.Document, error) {
	now := time.Now().UTC()
	d := &domain.Document{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		ExtractedText: text,
		PageCount:     pageCount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// GetDocument fetches a document, including its extracted text, by ID and
// owner. It returns ErrNotFound when no such document exists for userID.
func GetDocument(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Document, error) {
	var d domain.Document
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CountDocuments returns the number of documents owned by userID.
func CountDocuments(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Document{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListDocumentsPage returns a page of userID's documents, newest first,
// without their extracted text.
func ListDocumentsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Document, error) {
	var out []domain.Document
	err := db.WithContext(ctx).
		Select(listColumns).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteDocument soft-deletes a document and its highlights in one
// transaction. It returns ErrNotFound when the document does not exist for
// userID.
func DeleteDocument(ctx context.Context, db *gorm.DB, id, userID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Document{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("document_id = ?", id).Delete(&domain.Highlight{}).Error
	})
}
