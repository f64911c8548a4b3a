// Package services – HighlightService
//
// This file implements the HighlightService, which lets users save spans of a
// document (usually taken from a search result) and read them back. It
// enforces span rules (page >= 1, 0 <= start <= end), document ownership and
// Idempotency-Key replay so retried POSTs do not create duplicates.
package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/repo"
)

// HighlightInput is the caller-provided part of a highlight.
type HighlightInput struct {
	PageNumber    int
	Text          string
	Color         string
	PositionStart int
	PositionEnd   int
}

// HighlightService implements the highlight use-cases.
type HighlightService struct {
	// DB is the database handle used for all highlight operations.
	DB *gorm.DB

	// IdempotencyTTL is how long an Idempotency-Key keeps replaying.
	IdempotencyTTL time.Duration
}

// NewHighlightService constructs a HighlightService with a 24h replay window.
func NewHighlightService(db *gorm.DB) *HighlightService {
	return &HighlightService{DB: db, IdempotencyTTL: 24 * time.Hour}
}

var colorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks in and fills the default color.
func (in *HighlightInput) Validate() error {
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return ErrEmptyHighlightText
	}
	if in.PageNumber < 1 {
		return ErrInvalidPage
	}
	if in.PositionStart < 0 || in.PositionEnd < in.PositionStart {
		return ErrInvalidPosition
	}
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = domain.DefaultHighlightColor
	}
	if !colorRE.MatchString(in.Color) {
		return ErrInvalidColor
	}
	return nil
}

// Create stores a highlight on documentID for userID.
//
// When key is non-empty and a live record exists for (userID, documentID,
// key), the highlight created by the first request is returned with
// replayed=true and nothing new is written. A record that expired or whose
// highlight was deleted is released and the key starts over. The highlight
// and its idempotency record are inserted in one transaction; losing a
// concurrent race on the same key also resolves to a replay, or to
// ErrIdempotencyConflict when the winner's highlight cannot be read back.
func (s *HighlightService) Create(ctx context.Context, userID, documentID, key string, in HighlightInput) (h *domain.Highlight, replayed bool, err error) {
	if err := in.Validate(); err != nil {
		return nil, false, err
	}

	if _, err := repo.GetDocument(ctx, s.DB, documentID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, ErrDocumentNotFound
		}
		return nil, false, err
	}

	if key != "" {
		prev, err := s.replay(ctx, userID, documentID, key)
		if err == nil {
			return prev, true, nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, false, err
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if key != "" {
			if _, err := repo.ReleaseIdempotency(ctx, tx, userID, documentID, key, time.Now().UTC()); err != nil {
				return err
			}
		}
		created, err := repo.CreateHighlight(ctx, tx, repo.NewHighlight{
			DocumentID:    documentID,
			UserID:        userID,
			PageNumber:    in.PageNumber,
			Text:          in.Text,
			Color:         in.Color,
			PositionStart: in.PositionStart,
			PositionEnd:   in.PositionEnd,
		})
		if err != nil {
			return err
		}
		if key != "" {
			if _, err := repo.CreateIdempotency(ctx, tx, userID, documentID, key, created.ID, http.StatusCreated, s.ttl()); err != nil {
				return err
			}
		}
		h = created
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		prev, rerr := s.replay(ctx, userID, documentID, key)
		if errors.Is(rerr, repo.ErrNotFound) {
			return nil, false, ErrIdempotencyConflict
		}
		if rerr != nil {
			return nil, false, rerr
		}
		return prev, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return h, false, nil
}

// replay resolves a live idempotency record to the highlight it recorded.
func (s *HighlightService) replay(ctx context.Context, userID, documentID, key string) (*domain.Highlight, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, userID, documentID, key, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return repo.GetHighlight(ctx, s.DB, rec.HighlightID, userID)
}

// List returns userID's highlights on documentID, oldest first.
func (s *HighlightService) List(ctx context.Context, userID, documentID string) ([]domain.Highlight, error) {
	if _, err := repo.GetDocument(ctx, s.DB, documentID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	items, err := repo.ListHighlights(ctx, s.DB, documentID, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Highlight{}
	}
	return items, nil
}

// Stats returns the count and latest update time of userID's highlights on
// documentID, for conditional listing.
func (s *HighlightService) Stats(ctx context.Context, userID, documentID string) (int64, *time.Time, error) {
	return repo.HighlightsStats(ctx, s.DB, documentID, userID)
}

// Delete soft-deletes a highlight owned by userID.
func (s *HighlightService) Delete(ctx context.Context, userID, id string) error {
	err := repo.DeleteHighlight(ctx, s.DB, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrHighlightNotFound
	}
	return err
}

func (s *HighlightService) ttl() time.Duration {
	if s.IdempotencyTTL <= 0 {
		return 24 * time.Hour
	}
	return s.IdempotencyTTL
}
