package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newSecuredRouter(opt SecurityOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("missing nosniff")
	}
	if h.Get("X-Frame-Options") != "DENY" {
		t.Errorf("missing frame deny")
	}
	if h.Get("Referrer-Policy") != "no-referrer" {
		t.Errorf("missing referrer policy")
	}
	if h.Get("Strict-Transport-Security") != "" {
		t.Errorf("HSTS must be off by default")
	}
	if h.Get("Cache-Control") != "" {
		t.Errorf("no-store must be opt-in")
	}
}

func TestSecurityHeaders_NoStore(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{NoStore: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q", w.Header().Get("Cache-Control"))
	}
	if w.Header().Get("Pragma") != "no-cache" || w.Header().Get("Expires") != "0" {
		t.Errorf("legacy cache headers missing")
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	r := newSecuredRouter(SecurityOptions{EnableHSTS: true, HSTSMaxAge: 180 * 24 * time.Hour})

	// Plain HTTP: no HSTS even when enabled.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must not be sent over plain HTTP")
	}

	// Behind a TLS-terminating proxy.
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	sts := w.Header().Get("Strict-Transport-Security")
	if !strings.HasPrefix(sts, "max-age=15552000") {
		t.Fatalf("unexpected HSTS header: %q", sts)
	}
}
