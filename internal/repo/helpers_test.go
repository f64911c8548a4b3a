package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
)

// newRepoDB opens a private in-memory database with foreign keys enforced and
// migrates the given models.
func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
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
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func allModels() []any {
	return []any{&domain.Document{}, &domain.Highlight{}, &domain.Idempotency{}}
}

func seedDocument(t *testing.T, db *gorm.DB, userID, name, text string) *domain.Document {
	t.Helper()
	var p *string
	if text != "" {
		p = &text
	}
	d, err := CreateDocument(context.Background(), db, userID, name, p, 1)
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	return d
}
