package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/services"
	"github.com/tbourn/go-docsearch-backend/internal/utils"
)

//
// DTOs
//

// CreateDocumentRequest is the JSON payload for registering a document.
type CreateDocumentRequest struct {
	// Name is the display name echoed in search metadata (1-255 chars).
	Name string `json:"name" binding:"required" example:"annual-report-2024.pdf"`
	// ExtractedText is the page-marked text ("[PAGE n]\n..." blocks).
	// Omit it for documents whose extraction produced nothing.
	ExtractedText *string `json:"extractedText" example:"[PAGE 1]\nRevenue grew in every quarter."`
}

// DocumentResponse is the public view of a document; the text itself is
// only ever exposed through search results.
type DocumentResponse struct {
	ID        string    `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Name      string    `json:"name" example:"annual-report-2024.pdf"`
	HasText   bool      `json:"hasText" example:"true"`
	PageCount int       `json:"pageCount" example:"12"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Name:      d.Name,
		HasText:   d.HasText(),
		PageCount: d.PageCount,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ListDocumentsResponse wraps a page of documents and pagination information.
type ListDocumentsResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}

//
// Handlers
//

// CreateDocument godoc
// @ID          createDocument
// @Summary     Register a document
// @Description Stores a document with its extracted, page-marked text. Text without page markers is stored as a single page.
// @Tags        Documents
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateDocumentRequest  true  "Document payload"
//
// @Success     201  {object}  handlers.DocumentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     413  {object}  handlers.ErrorResponse  "Payload too large"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /documents [post]
func (h *Handlers) CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large")
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}

	d, err := h.docSvc.Create(c.Request.Context(), userID(c), req.Name, req.ExtractedText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName), errors.Is(err, services.ErrNameTooLong):
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, toDocumentResponse(d))
}

// ListDocuments godoc
// @ID          listDocuments
// @Summary     List documents (paginated)
// @Description Returns a page of the user's documents, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Documents
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"docs:user123:p1:s20:3:1700000000\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListDocumentsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /documents [get]
func (h *Handlers) ListDocuments(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := utils.ClampPage(c.Query("page"), c.Query("page_size"), utils.DefaultPageBounds)

	scope := fmt.Sprintf("docs:%s:p%d:s%d", uid, page, pageSize)
	if notModified(c, scope, func() (int64, *time.Time, error) { return h.docSvc.Stats(ctx, uid) }) {
		return
	}

	items, total, err := h.docSvc.ListPage(ctx, uid, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	docs := make([]DocumentResponse, 0, len(items))
	for i := range items {
		docs = append(docs, toDocumentResponse(&items[i]))
	}
	totalPages := utils.TotalPages(total, pageSize)
	ok(c, http.StatusOK, ListDocumentsResponse{
		Documents: docs,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetDocument godoc
// @ID          getDocument
// @Summary     Get document metadata
// @Description Returns name, page count and whether the document has searchable text.
// @Tags        Documents
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Document ID (UUID)"     format(uuid)
//
// @Success     200  {object} handlers.DocumentResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Document not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /documents/{id} [get]
func (h *Handlers) GetDocument(c *gin.Context) {
	id, good := documentIDParam(c)
	if !good {
		return
	}
	d, err := h.docSvc.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, toDocumentResponse(d))
}

// DeleteDocument godoc
// @ID          deleteDocument
// @Summary     Delete a document
// @Description Deletes the document and every highlight on it.
// @Tags        Documents
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Document ID (UUID)"     format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Document not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /documents/{id} [delete]
func (h *Handlers) DeleteDocument(c *gin.Context) {
	id, good := documentIDParam(c)
	if !good {
		return
	}
	if err := h.docSvc.Delete(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	noContent(c)
}

// documentIDParam reads :id and answers 400 unless it is a UUID.
func documentIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "document id must be a UUID")
		return "", false
	}
	return id, true
}
