package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/messages/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_EnvelopeShape(t *testing.T) {
	code, body := renderError(t, domain.ErrForbidden)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	for _, field := range []string{"statusCode", "timestamp", "path", "message", "error"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("envelope missing %q: %v", field, body)
		}
	}
	if body["statusCode"] != float64(http.StatusForbidden) {
		t.Fatalf("statusCode mismatch: %v", body["statusCode"])
	}
	if body["path"] != "/messages/1" {
		t.Fatalf("unexpected path: %v", body["path"])
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("unexpected error name: %v", body["error"])
	}
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrMessageNotFound, http.StatusNotFound},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrBidNotFound, http.StatusNotFound},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{domain.ErrUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		code, _ := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("update message"), domain.ErrForbidden)
	code, _ := renderError(t, wrapped)
	if code != http.StatusForbidden {
		t.Fatalf("wrapped domain error should map, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["message"] != "No token provided" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
}
