package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

func limitContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/auth/login")
	return c, rec
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	e := echo.New()
	limiter := &stubLimiter{allowed: true}
	mw := RateLimit(limiter, zerolog.Nop())

	c, rec := limitContext(e)
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 {
		t.Fatalf("expected one limiter call, got %d", len(limiter.keys))
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	e := echo.New()
	mw := RateLimit(&stubLimiter{allowed: false}, zerolog.Nop())

	c, _ := limitContext(e)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next; limiter must run before any credential work")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpenOnLimiterError(t *testing.T) {
	e := echo.New()
	mw := RateLimit(&stubLimiter{err: errors.New("redis down")}, zerolog.Nop())

	c, rec := limitContext(e)
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("limiter outage must not reject requests: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
