package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-docsearch-backend/internal/analytics"
	"github.com/tbourn/go-docsearch-backend/internal/domain"
)

const foxText = "[PAGE 1]\nThe quick brown fox\n\n[PAGE 2]\njumps over the lazy dog\n\n"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.Document{}, &domain.Highlight{}, &domain.Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mustCreateDoc(t *testing.T, db *gorm.DB, userID, name string, text *string) *domain.Document {
	t.Helper()
	d, err := NewDocumentService(db).Create(context.Background(), userID, name, text)
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	return d
}

func strp(s string) *string { return &s }

// recordingTracker keeps every event it is handed.
type recordingTracker struct {
	mu     sync.Mutex
	events []analytics.SearchEvent
}

func (r *recordingTracker) TrackSearch(_ context.Context, ev analytics.SearchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingTracker) last(t *testing.T) analytics.SearchEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatal("no events tracked")
	}
	return r.events[len(r.events)-1]
}
