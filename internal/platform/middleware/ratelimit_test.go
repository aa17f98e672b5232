package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestTokenBucket_AllowsBurst(t *testing.T) {
	bucket := newTokenBucket(1, 5)

	for i := 0; i < 5; i++ {
		if !bucket.allow() {
			t.Errorf("request %d within burst should be allowed", i+1)
		}
	}

	if bucket.allow() {
		t.Error("request beyond burst should be denied")
	}
}

func TestTokenBucket_RetryAfter(t *testing.T) {
	bucket := newTokenBucket(2, 1)
	bucket.allow()

	ra := bucket.retryAfter()
	if ra < 1 {
		t.Errorf("expected retry-after of at least 1 second, got %d", ra)
	}
}

func TestRateLimit_UnderLimit(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	h := mw(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("expected X-RateLimit-Limit header")
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	h := mw(handler)

	var lastErr error
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		lastErr = h(c)
	}

	if lastErr == nil {
		t.Fatal("expected rate limit error on third request")
	}
	httpErr, ok := lastErr.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", lastErr)
	}
	if httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", httpErr.Code)
	}
}

func TestRateLimit_SeparateKeysPerIP(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	h := mw(handler)

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	c1 := e.NewContext(req1, httptest.NewRecorder())
	if err := h(c1); err != nil {
		t.Fatalf("first IP should be allowed: %v", err)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	c2 := e.NewContext(req2, httptest.NewRecorder())
	if err := h(c2); err != nil {
		t.Fatalf("second IP should have its own bucket: %v", err)
	}
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond != 100 {
		t.Errorf("expected 100 rps, got %f", cfg.RequestsPerSecond)
	}
	if cfg.BurstSize != 200 {
		t.Errorf("expected burst 200, got %d", cfg.BurstSize)
	}
}
