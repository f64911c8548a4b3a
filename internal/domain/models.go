// Package domain defines the persistence models for documents and their
// highlights. These types are mapped with GORM and are shared across the
// repository and service layers.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// DefaultHighlightColor is used when a highlight is saved without a color.
const DefaultHighlightColor = "#ffeb3b"

// Document is an uploaded file whose text has already been extracted into
// "[PAGE n]" blocks. The search engine reads ExtractedText; the registry
// stores it and nothing else about the original bytes.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the owner; indexed for listing.
//   - Name: display name, echoed in search metadata.
//   - ExtractedText: page-marked text, nil when extraction has not produced any.
//   - PageCount: number of page blocks in ExtractedText.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type Document struct {
	ID            string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID        string         `json:"user_id"    gorm:"type:varchar(64);not null;index:idx_user_docs,priority:1"`
	Name          string         `json:"name"       gorm:"type:varchar(255);not null"`
	ExtractedText *string        `json:"-"          gorm:"type:text"`
	PageCount     int            `json:"page_count" gorm:"not null;default:0"`
	CreatedAt     time.Time      `json:"created_at" gorm:"index:idx_user_docs,priority:2"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Document.
func (Document) TableName() string { return "documents" }

// HasText reports whether the document carries non-empty extracted text.
func (d *Document) HasText() bool {
	return d != nil && d.ExtractedText != nil && *d.ExtractedText != ""
}

// Text returns the extracted text or "" when there is none.
func (d *Document) Text() string {
	if !d.HasText() {
		return ""
	}
	return *d.ExtractedText
}

// Highlight marks a span of a page that a user saved from a search result.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - DocumentID: foreign key to the highlighted document.
//   - UserID: author of the highlight.
//   - PageNumber: 1-based page the span belongs to.
//   - Text: the highlighted text as shown to the user.
//   - Color: CSS color, DefaultHighlightColor when not given.
//   - PositionStart / PositionEnd: rune offsets of the span within the page.
//   - Document: FK association, cascade on delete.
type Highlight struct {
	ID            string         `json:"id"             gorm:"type:char(36);primaryKey"`
	DocumentID    string         `json:"document_id"    gorm:"type:char(36);not null;index:idx_doc_highlights,priority:1"`
	UserID        string         `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	PageNumber    int            `json:"page_number"    gorm:"not null;check:page_number >= 1"`
	Text          string         `json:"text"           gorm:"type:text;not null"`
	Color         string         `json:"color"          gorm:"type:varchar(32);not null;default:'#ffeb3b'"`
	PositionStart int            `json:"position_start" gorm:"not null;check:position_start >= 0"`
	PositionEnd   int            `json:"position_end"   gorm:"not null;check:chk_highlight_span,position_end >= position_start"`
	CreatedAt     time.Time      `json:"created_at"     gorm:"index:idx_doc_highlights,priority:2"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-"              gorm:"index"`

	// Document is the parent. Highlights are cascade-deleted with it.
	Document Document `json:"-" gorm:"foreignKey:DocumentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Highlight.
func (Highlight) TableName() string { return "highlights" }
