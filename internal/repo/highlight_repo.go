// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Highlight
// model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
)

// NewHighlight carries the fields of a highlight to be inserted.
type NewHighlight struct {
	DocumentID    string
	UserID        string
	PageNumber    int
	Text          string
	Color         string
	PositionStart int
	PositionEnd   int
}

// CreateHighlight inserts a highlight. The document must exist; the foreign
// key rejects orphans on backends that enforce it.
func CreateHighlight(ctx context.Context, db *gorm.DB, in NewHighlight) (*domain.Highlight, error) {
	now := time.Now().UTC()
	h := &domain.Highlight{
		ID:            uuid.NewString(),
		DocumentID:    in.DocumentID,
		UserID:        in.UserID,
		PageNumber:    in.PageNumber,
		Text:          in.Text,
		Color:         in.Color,
		PositionStart: in.PositionStart,
		PositionEnd:   in.PositionEnd,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := db.WithContext(ctx).Omit("Document").Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// GetHighlight fetches a highlight by ID and author.
func GetHighlight(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Highlight, error) {
	var h domain.Highlight
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHighlights returns userID's highlights on a document ordered
// deterministically (CreatedAt ASC, ID ASC).
func ListHighlights(ctx context.Context, db *gorm.DB, documentID, userID string) ([]domain.Highlight, error) {
	var out []domain.Highlight
	err := db.WithContext(ctx).
		Where("document_id = ? AND user_id = ?", documentID, userID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// DeleteHighlight soft-deletes a highlight owned by userID, returning
// ErrNotFound when there is none.
func DeleteHighlight(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Highlight{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
