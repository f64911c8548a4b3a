// Package handlers exposes the REST endpoints of the document search API:
//
//   - POST   /search                       (search one document)
//   - POST   /documents                    (register a document)
//   - GET    /documents                    (list, paginated, ETag support)
//   - GET    /documents/{id}               (metadata)
//   - DELETE /documents/{id}               (delete with its highlights)
//   - POST   /documents/{id}/highlights    (save a highlight, idempotent)
//   - GET    /documents/{id}/highlights    (list, ETag support)
//   - DELETE /highlights/{id}              (delete a highlight)
//
// Handlers are transport-thin: they bind and validate input, call the
// services and translate results and sentinel errors into HTTP responses.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/search"
	"github.com/tbourn/go-docsearch-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// SearchService runs a search over one stored document.
type SearchService interface {
	Search(ctx context.Context, userID string, req services.SearchRequest) (*search.Envelope, error)
}

// DocumentService manages the document registry.
type DocumentService interface {
	Create(ctx context.Context, userID, name string, text *string) (*domain.Document, error)
	Get(ctx context.Context, userID, id string) (*domain.Document, error)
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Document, int64, error)
	Delete(ctx context.Context, userID, id string) error
	// Stats feeds the listing ETag.
	Stats(ctx context.Context, userID string) (int64, *time.Time, error)
}

// HighlightService manages highlights on documents.
type HighlightService interface {
	Create(ctx context.Context, userID, documentID, key string, in services.HighlightInput) (*domain.Highlight, bool, error)
	List(ctx context.Context, userID, documentID string) ([]domain.Highlight, error)
	Delete(ctx context.Context, userID, id string) error
	// Stats feeds the listing ETag.
	Stats(ctx context.Context, userID, documentID string) (int64, *time.Time, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints and the services behind them.
type Handlers struct {
	searchSvc SearchService
	docSvc    DocumentService
	hlSvc     HighlightService

	// defaults are the options applied to fields a search request omits.
	defaults search.Options
}

// New binds handlers to their services.
func New(searchSvc SearchService, docSvc DocumentService, hlSvc HighlightService) *Handlers {
	return &Handlers{
		searchSvc: searchSvc,
		docSvc:    docSvc,
		hlSvc:     hlSvc,
		defaults:  search.DefaultOptions(),
	}
}

// userID is the caller identity resolved by middleware.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// notModified sets a weak ETag derived from (scope, count, latest update)
// and reports whether the request's If-None-Match already holds it, in which
// case 304 has been written. Stats errors skip the ETag silently.
func notModified(c *gin.Context, scope string, stats func() (int64, *time.Time, error)) bool {
	count, latest, err := stats()
	if err != nil {
		return false
	}
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	etag := fmt.Sprintf(`W/"%s:%d:%d"`, scope, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}
