// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by all endpoints. Every
// failure goes through fail (or failSearch on the search route) so that the
// body shape, the request id echo and 5xx logging stay uniform.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "document not found"
//	}
//
// The search route answers failures with the same request id and code, an
// "error" message and an empty "results" array, so search clients can read
// one shape for every outcome.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-docsearch-backend/internal/http/middleware"
	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"document not found"`
}

// SearchErrorResponse is the error envelope of the search route.
type SearchErrorResponse struct {
	RequestID string          `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string          `json:"code,omitempty" example:"search_text_required"`
	Error     string          `json:"error" example:"search text required"`
	Results   []search.Result `json:"results"`
}

// fail aborts with an ErrorResponse. 5xx responses are logged through the
// request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	logServerError(c, status, code, msg)
	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail is the exported variant of fail for router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failSearch aborts with a SearchErrorResponse.
func failSearch(c *gin.Context, status int, code, msg string) {
	logServerError(c, status, code, msg)
	c.AbortWithStatusJSON(status, SearchErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Error:     msg,
		Results:   []search.Result{},
	})
}

func logServerError(c *gin.Context, status int, code, msg string) {
	if status < http.StatusInternalServerError {
		return
	}
	middleware.LoggerFrom(c).Error().
		Int("status", status).
		Str("code", code).
		Str("message", msg).
		Msg("api error")
}

// ok writes body as JSON with status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes 204 with no body.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
