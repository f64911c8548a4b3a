package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/services"
)

//
// DTOs
//

// PositionDTO is a rune span within a page.
type PositionDTO struct {
	Start int `json:"start" example:"120"`
	End   int `json:"end" example:"148"`
}

// CreateHighlightRequest is the JSON payload for saving a highlight.
type CreateHighlightRequest struct {
	PageNumber int         `json:"pageNumber" example:"3"`
	Text       string      `json:"text" example:"quarterly revenue"`
	Color      string      `json:"color" example:"#ffeb3b"`
	Position   PositionDTO `json:"position"`
}

// HighlightResponse is the public view of a highlight.
type HighlightResponse struct {
	ID         string      `json:"id" example:"8c7c5d0f-9f55-4d1f-9b3a-1b1e2f3a4b5c"`
	DocumentID string      `json:"documentId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	PageNumber int         `json:"pageNumber" example:"3"`
	Text       string      `json:"text" example:"quarterly revenue"`
	Color      string      `json:"color" example:"#ffeb3b"`
	Position   PositionDTO `json:"position"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func toHighlightResponse(h *domain.Highlight) HighlightResponse {
	return HighlightResponse{
		ID:         h.ID,
		DocumentID: h.DocumentID,
		PageNumber: h.PageNumber,
		Text:       h.Text,
		Color:      h.Color,
		Position:   PositionDTO{Start: h.PositionStart, End: h.PositionEnd},
		CreatedAt:  h.CreatedAt,
	}
}

// ListHighlightsResponse wraps the highlights of one document.
type ListHighlightsResponse struct {
	Highlights []HighlightResponse `json:"highlights"`
}

//
// Handlers
//

// CreateHighlight godoc
// @ID          createHighlight
// @Summary     Save a highlight
// @Description Saves a span of a page, typically taken from a search result. Supports Idempotency-Key: a retried request returns the original highlight with 200 and Idempotency-Replayed: true.
// @Tags        Highlights
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"          example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries" example(2b1f0e3c-6a7d-4b8e-9f10-1a2b3c4d5e6f)
// @Param       id               path    string  true  "Document ID (UUID)"              format(uuid)
// @Param       body             body    handlers.CreateHighlightRequest  true  "Highlight payload"
//
// @Success     201  {object}  handlers.HighlightResponse
// @Success     200  {object}  handlers.HighlightResponse  "Replayed"
// @Header      200  {string}  Idempotency-Replayed  "true when the response is a replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Document not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Idempotency-Key held by a concurrent request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /documents/{id}/highlights [post]
func (h *Handlers) CreateHighlight(c *gin.Context) {
	docID, good := documentIDParam(c)
	if !good {
		return
	}

	var req CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large")
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	key, _ := middleware.GetIdempotencyKey(c)
	hl, replayed, err := h.hlSvc.Create(c.Request.Context(), userID(c), docID, key, services.HighlightInput{
		PageNumber:    req.PageNumber,
		Text:          req.Text,
		Color:         req.Color,
		PositionStart: req.Position.Start,
		PositionEnd:   req.Position.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDocumentNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
		case errors.Is(err, services.ErrEmptyHighlightText),
			errors.Is(err, services.ErrInvalidPage),
			errors.Is(err, services.ErrInvalidPosition),
			errors.Is(err, services.ErrInvalidColor):
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		case errors.Is(err, services.ErrIdempotencyConflict):
			fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	if replayed {
		c.Header(middleware.HeaderIdempotencyReplayed, "true")
		ok(c, http.StatusOK, toHighlightResponse(hl))
		return
	}
	ok(c, http.StatusCreated, toHighlightResponse(hl))
}

// ListHighlights godoc
// @ID          listHighlights
// @Summary     List highlights of a document
// @Description Returns the caller's highlights on a document, oldest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Highlights
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       id             path    string  true  "Document ID (UUID)"          format(uuid)
//
// @Success     200  {object} handlers.ListHighlightsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Document not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /documents/{id}/highlights [get]
func (h *Handlers) ListHighlights(c *gin.Context) {
	docID, good := documentIDParam(c)
	if !good {
		return
	}
	ctx := c.Request.Context()
	uid := userID(c)

	items, err := h.hlSvc.List(ctx, uid, docID)
	if err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "document not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	if notModified(c, "hl:"+uid+":"+docID, func() (int64, *time.Time, error) { return h.hlSvc.Stats(ctx, uid, docID) }) {
		return
	}

	out := make([]HighlightResponse, 0, len(items))
	for i := range items {
		out = append(out, toHighlightResponse(&items[i]))
	}
	ok(c, http.StatusOK, ListHighlightsResponse{Highlights: out})
}

// DeleteHighlight godoc
// @ID          deleteHighlight
// @Summary     Delete a highlight
// @Tags        Highlights
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Highlight ID (UUID)"    format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Highlight not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /highlights/{id} [delete]
func (h *Handlers) DeleteHighlight(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "highlight id must be a UUID")
		return
	}
	if err := h.hlSvc.Delete(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, services.ErrHighlightNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "highlight not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	noContent(c)
}
