// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the caller identity. Authentication is out of scope for
// the service; the user is taken from the X-User-ID header (set by a trusted
// gateway or by tests) and stored in the Gin context so every later stage
// (idempotency, rate limiting, handlers, logs) sees the same value.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderUserID carries the caller identity.
	HeaderUserID = "X-User-ID"

	// ctxKeyUserID is the Gin context key that holds the resolved user.
	ctxKeyUserID = "userID"

	// DefaultUserID is used when no identity was supplied.
	DefaultUserID = "demo-user"

	maxUserIDLen = 64
)

// Identity copies X-User-ID into the Gin context. Values longer than the
// stored column width are rejected with 400.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if len(uid) > maxUserIDLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_request",
				"message":    "X-User-ID too long",
			})
			return
		}
		if uid != "" {
			c.Set(ctxKeyUserID, uid)
		}
		c.Next()
	}
}

// UserID returns the resolved caller. It prefers the context value set by
// Identity (or an upstream auth layer), then the raw header, and finally
// DefaultUserID.
func UserID(c *gin.Context) string {
	if c == nil {
		return DefaultUserID
	}
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader(HeaderUserID)); h != "" {
			return h
		}
	}
	return DefaultUserID
}
