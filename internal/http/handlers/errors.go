// Package handlers defines the HTTP error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable: clients branch on them, while
// the accompanying message is for humans. Generic codes mirror HTTP status
// semantics; the search and highlight codes name conditions that a status
// alone cannot convey.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "not_found",
//	  "message": "document not found"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodePayloadTooLarge  = "payload_too_large"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Search:
	ErrCodeDocumentRequired = "document_id_required"
	ErrCodeQueryRequired    = "search_text_required"
	ErrCodeQueryTooLong     = "search_text_too_long"
	ErrCodePageTooLong      = "page_too_long"
	ErrCodeSearchFailed     = "search_failed"

	// Registry:
	ErrCodeCreateFailed = "create_failed"
	ErrCodeListFailed   = "list_failed"
	ErrCodeDeleteFailed = "delete_failed"
	ErrCodeValidation   = "validation_failed"
)
