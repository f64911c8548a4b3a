package domain

import "time"

// Idempotency records the highlight produced by a previous request carrying
// the same Idempotency-Key, keyed by (user_id, document_id, key). Replays
// return the stored highlight instead of creating a second one.
type Idempotency struct {
	ID          string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID      string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_doc_key,priority:1"`
	DocumentID  string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_doc_key,priority:2"`
	Key         string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_doc_key,priority:3"`
	HighlightID string    `gorm:"type:TEXT NOT NULL"`
	Status      int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
