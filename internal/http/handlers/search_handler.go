package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/search"
	"github.com/tbourn/go-docsearch-backend/internal/services"
)

// noTextMessage is returned with 200 when the document has no extracted text.
const noTextMessage = "No text content available for this document"

//
// DTOs
//

// SearchOptionsRequest holds the optional search toggles. Absent fields keep
// their defaults (case-insensitive, fuzzy, 100 runes of context, 50 results).
type SearchOptionsRequest struct {
	CaseSensitive *bool `json:"caseSensitive" example:"false"`
	WholeWord     *bool `json:"wholeWord" example:"false"`
	FuzzyMatch    *bool `json:"fuzzyMatch" example:"true"`
	ContextLength *int  `json:"contextLength" example:"100"`
	MaxResults    *int  `json:"maxResults" example:"50"`
}

// apply overlays the fields present in o on base.
func (o *SearchOptionsRequest) apply(base search.Options) search.Options {
	if o == nil {
		return base
	}
	if o.CaseSensitive != nil {
		base.CaseSensitive = *o.CaseSensitive
	}
	if o.WholeWord != nil {
		base.WholeWord = *o.WholeWord
	}
	if o.FuzzyMatch != nil {
		base.FuzzyMatch = *o.FuzzyMatch
	}
	if o.ContextLength != nil {
		base.ContextLength = *o.ContextLength
	}
	if o.MaxResults != nil {
		base.MaxResults = *o.MaxResults
	}
	return base
}

// SearchRequest is the JSON payload of POST /search. Unknown fields are ignored.
type SearchRequest struct {
	DocumentID string                `json:"documentId" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	SearchText string                `json:"searchText" example:"quarterly revenue"`
	Options    *SearchOptionsRequest `json:"options"`
}

// SearchEmptyResponse is returned with 200 when the document has no text.
type SearchEmptyResponse struct {
	Error   string          `json:"error" example:"No text content available for this document"`
	Results []search.Result `json:"results"`
}

//
// Handlers
//

// Search godoc
// @ID          searchDocument
// @Summary     Search a document
// @Description Finds searchText in the extracted text of one document, page by page, with exact or fuzzy matching.
// @Description Results carry a context window around each hit and are ranked by score (exact hits score 1).
// @Tags        Search
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.SearchRequest  true  "Search payload"
//
// @Success     200  {object}  search.Envelope              "Ranked results, or an empty list with an error note when the document has no text"
// @Failure     400  {object}  handlers.SearchErrorResponse "Missing document id or search text"
// @Failure     404  {object}  handlers.SearchErrorResponse "Document not found"
// @Failure     422  {object}  handlers.SearchErrorResponse "Query or page exceeds the configured ceiling"
// @Failure     500  {object}  handlers.SearchErrorResponse "Internal error"
// @Router      /search [post]
func (h *Handlers) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failSearch(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	env, err := h.searchSvc.Search(c.Request.Context(), userID(c), services.SearchRequest{
		DocumentID: req.DocumentID,
		Query:      req.SearchText,
		Options:    req.Options.apply(h.defaults),
		RequestID:  middleware.RequestIDFrom(c),
	})
	if err != nil {
		h.searchError(c, err)
		return
	}
	ok(c, http.StatusOK, env)
}

// searchError maps a search failure onto the search error envelope.
func (h *Handlers) searchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoText):
		ok(c, http.StatusOK, SearchEmptyResponse{Error: noTextMessage, Results: []search.Result{}})
	case errors.Is(err, services.ErrDocumentIDRequired):
		failSearch(c, http.StatusBadRequest, ErrCodeDocumentRequired, err.Error())
	case errors.Is(err, services.ErrEmptyQuery):
		failSearch(c, http.StatusBadRequest, ErrCodeQueryRequired, services.ErrEmptyQuery.Error())
	case errors.Is(err, services.ErrDocumentNotFound):
		failSearch(c, http.StatusNotFound, ErrCodeNotFound, services.ErrDocumentNotFound.Error())
	case errors.Is(err, services.ErrQueryTooLong):
		failSearch(c, http.StatusUnprocessableEntity, ErrCodeQueryTooLong, services.ErrQueryTooLong.Error())
	case errors.Is(err, services.ErrPageTooLong):
		failSearch(c, http.StatusUnprocessableEntity, ErrCodePageTooLong, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		failSearch(c, http.StatusInternalServerError, ErrCodeSearchFailed, "search cancelled")
	default:
		failSearch(c, http.StatusInternalServerError, ErrCodeSearchFailed, "search failed")
	}
}
