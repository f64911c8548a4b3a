package middleware

import (
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serveWith(mw gin.HandlerFunc, pre func(*gin.Context), req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	if pre != nil {
		r.Use(func(c *gin.Context) { pre(c); c.Next() })
	}
	r.Use(mw)
	r.Any("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := serveWith(SecurityHeaders(SecurityOptions{}), func(c *gin.Context) {
		c.Header(requestIDHeader, "rid-1")
	}, httptest.NewRequest(http.MethodGet, "/ok", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" || h.Get("X-Frame-Options") != "DENY" || h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline headers missing: %v", h)
	}
	for _, k := range []string{"Permissions-Policy", "Cache-Control", "Strict-Transport-Security"} {
		if h.Get(k) != "" {
			t.Fatalf("unexpected %s", k)
		}
	}
	if h.Get("Access-Control-Expose-Headers") != requestIDHeader {
		t.Fatalf("expose = %q", h.Get("Access-Control-Expose-Headers"))
	}
}

func TestSecurityHeaders_ExposeAppends(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := serveWith(SecurityHeaders(SecurityOptions{}), func(c *gin.Context) {
		c.Header(requestIDHeader, "rid-1")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
	}, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != "Content-Length, X-Request-ID" {
		t.Fatalf("expose = %q", got)
	}
}

func TestSecurityHeaders_OptionalAndHSTS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	opts := SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour, NoStore: true, EnablePolicy: true}

	w := serveWith(SecurityHeaders(opts), nil, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatal("HSTS must not be sent over plain HTTP")
	}
	if w.Header().Get("Cache-Control") != "no-store" || w.Header().Get("Permissions-Policy") == "" {
		t.Fatalf("optional headers missing: %v", w.Header())
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Forwarded-Proto", "HTTPS")
	w = serveWith(SecurityHeaders(opts), nil, req)
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=3600; includeSubDomains; preload" {
		t.Fatalf("hsts = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.TLS = &tls.ConnectionState{}
	w = serveWith(SecurityHeaders(SecurityOptions{EnableHSTS: true}), nil, req)
	if got := w.Header().Get("Strict-Transport-Security"); !strings.HasPrefix(got, "max-age=15552000;") {
		t.Fatalf("default hsts = %q", got)
	}
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := serveWith(BodyLimit(4), nil, httptest.NewRequest(http.MethodPost, "/ok", strings.NewReader("too long")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("declared length: status = %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != "payload_too_large" {
		t.Fatalf("body = %v", body)
	}

	// Unknown length: the reader enforces the cap.
	r := gin.New()
	r.Use(BodyLimit(4))
	r.POST("/read", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err == nil {
			t.Error("expected read error past the limit")
		}
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/read", io.NopCloser(strings.NewReader("too long")))
	req.ContentLength = -1
	r.ServeHTTP(httptest.NewRecorder(), req)

	if w := serveWith(BodyLimit(0), nil, httptest.NewRequest(http.MethodPost, "/ok", strings.NewReader("anything"))); w.Code != http.StatusOK {
		t.Fatalf("disabled limit: status = %d", w.Code)
	}
}
