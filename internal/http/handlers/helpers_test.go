package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-docsearch-backend/internal/analytics"
	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/services"
)

const foxText = "[PAGE 1]\nThe quick brown fox\n\n[PAGE 2]\njumps over the lazy dog\n\n"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:h_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
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

// mount registers every endpoint on r the way the router does, minus the
// cross-cutting middleware that has its own tests.
func mount(r *gin.Engine, h *Handlers) {
	r.POST("/search", middleware.MarkSearchRoute(), h.Search)
	r.POST("/documents", h.CreateDocument)
	r.GET("/documents", h.ListDocuments)
	r.GET("/documents/:id", h.GetDocument)
	r.DELETE("/documents/:id", h.DeleteDocument)
	r.POST("/documents/:id/highlights", h.CreateHighlight)
	r.GET("/documents/:id/highlights", h.ListHighlights)
	r.DELETE("/highlights/:id", h.DeleteHighlight)
}

// newServer wires real services over an in-memory database.
func newServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	searchSvc := services.NewSearchService(services.NewDocumentStore(db), nil, analytics.Noop{})
	h := New(searchSvc, services.NewDocumentService(db), services.NewHighlightService(db))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Identity(),
		middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil),
	)
	mount(r, h)
	return r, db
}

// newStubServer mounts handlers over the given services without a database.
func newStubServer(searchSvc SearchService, docSvc DocumentService, hlSvc HighlightService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	mount(r, New(searchSvc, docSvc, hlSvc))
	return r
}

func do(t *testing.T, r http.Handler, method, path, user string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func createDoc(t *testing.T, r http.Handler, user, name string, text *string) DocumentResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/documents", user, CreateDocumentRequest{Name: name, ExtractedText: text})
	if w.Code != http.StatusCreated {
		t.Fatalf("create document: status=%d body=%s", w.Code, w.Body.String())
	}
	return decode[DocumentResponse](t, w)
}

func strp(s string) *string { return &s }
