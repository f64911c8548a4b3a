// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides the correlation id, panic recovery and access to the
// request-scoped logger:
//
//   - RequestID() reuses or mints X-Request-ID and stores it on the context.
//   - Recovery() turns a panic into the standard JSON 500 envelope.
//   - LoggerFrom() returns the logger attached by RedactingLogger, or the
//     global logger when none was attached.
//
// Order: RequestID, RedactingLogger, Recovery, so that panics carry the
// correlation id and the request fields.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"

	maxRequestIDLen = 128
)

// RequestID attaches a correlation id to every request. An incoming
// X-Request-ID is reused when it is short enough to log safely; otherwise a
// new UUIDv4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// RequestIDFrom returns the correlation id of the current request.
func RequestIDFrom(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return c.Writer.Header().Get(requestIDHeader)
}

// Recovery logs a panic with its stack and answers 500 in the standard
// error envelope. Search routes also get an empty results array so clients
// can keep reading the same shape.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid := RequestIDFrom(c)
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", rid).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			body := gin.H{
				"request_id": rid,
				"code":       "internal_error",
				"message":    "internal server error",
			}
			if c.GetBool(ctxKeySearchRoute) {
				body["error"] = "internal server error"
				body["results"] = []any{}
			}
			c.Header(requestIDHeader, rid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}

// ctxKeySearchRoute marks requests whose error bodies carry a results array.
const ctxKeySearchRoute = "route.search"

// MarkSearchRoute flags the request as a search so Recovery answers in the
// search error shape.
func MarkSearchRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeySearchRoute, true)
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, falling back to the global
// logger. The result is never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if c != nil {
		if v, ok := c.Get(loggerKey); ok {
			if lg, ok := v.(*zerolog.Logger); ok {
				return lg
			}
		}
	}
	l := log.With().Logger()
	return &l
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// truncate caps s at limit bytes and marks the cut. A limit <= 0 disables it.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
