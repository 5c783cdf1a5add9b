package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-system/internal/api/middleware"
	"github.com/freelancehub/marketplace-system/internal/core/auth"
	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

type stubMessageService struct {
	createFn func(ctx context.Context, claims *auth.Claims, input ports.CreateMessageInput) (*domain.Message, error)
	deleteFn func(ctx context.Context, claims *auth.Claims, id string) error
	updateFn func(ctx context.Context, claims *auth.Claims, id, content string) (*domain.Message, error)
}

func (s *stubMessageService) Create(ctx context.Context, claims *auth.Claims, input ports.CreateMessageInput) (*domain.Message, error) {
	return s.createFn(ctx, claims, input)
}

func (s *stubMessageService) ListByProject(_ context.Context, _ string) ([]*domain.Message, error) {
	return nil, nil
}

func (s *stubMessageService) Get(_ context.Context, _ string) (*domain.Message, error) {
	return nil, domain.ErrMessageNotFound
}

func (s *stubMessageService) UpdateContent(ctx context.Context, claims *auth.Claims, id, content string) (*domain.Message, error) {
	return s.updateFn(ctx, claims, id, content)
}

func (s *stubMessageService) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	return s.deleteFn(ctx, claims, id)
}

func authedContext(t *testing.T, method, target, body, accountID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if accountID != "" {
		c.Set(middleware.ContextKeyClaims, &auth.Claims{
			UserType:         domain.RoleClient,
			RegisteredClaims: jwt.RegisteredClaims{Subject: accountID},
		})
	}
	return c, rec
}

func TestMessageHandler_Create_Success(t *testing.T) {
	stub := &stubMessageService{
		createFn: func(_ context.Context, claims *auth.Claims, input ports.CreateMessageInput) (*domain.Message, error) {
			if claims.Subject != "acc_1" {
				t.Fatalf("claims not forwarded: %+v", claims)
			}
			if input.ProjectID != "prj_1" || input.Content != "hello" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Message{ID: "msg_1", ProjectID: input.ProjectID, SenderID: claims.Subject, Content: input.Content}, nil
		},
	}
	h := NewMessageHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/messages", `{"project_id":"prj_1","receiver_id":"acc_2","content":"hello"}`, "acc_1")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["sender_id"] != "acc_1" {
		t.Fatalf("sender should be the authenticated account: %v", resp["sender_id"])
	}
}

func TestMessageHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubMessageService{
		createFn: func(_ context.Context, _ *auth.Claims, _ ports.CreateMessageInput) (*domain.Message, error) {
			t.Fatalf("service should not be called without claims")
			return nil, nil
		},
	}
	h := NewMessageHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/messages", `{"project_id":"p","receiver_id":"r","content":"x"}`, "")
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestMessageHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubMessageService{
		createFn: func(_ context.Context, _ *auth.Claims, _ ports.CreateMessageInput) (*domain.Message, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewMessageHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/messages", `{"project_id":"p"}`, "acc_1")
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMessageHandler_Delete_ForbiddenPropagates(t *testing.T) {
	stub := &stubMessageService{
		deleteFn: func(_ context.Context, _ *auth.Claims, _ string) error {
			return domain.ErrForbidden
		},
	}
	h := NewMessageHandler(stub)

	c, _ := authedContext(t, http.MethodDelete, "/messages/msg_1", "", "acc_2")
	c.SetParamNames("id")
	c.SetParamValues("msg_1")

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestMessageHandler_Delete_Success(t *testing.T) {
	stub := &stubMessageService{
		deleteFn: func(_ context.Context, claims *auth.Claims, id string) error {
			if claims.Subject != "acc_1" || id != "msg_1" {
				t.Fatalf("unexpected args: %s %s", claims.Subject, id)
			}
			return nil
		},
	}
	h := NewMessageHandler(stub)

	c, rec := authedContext(t, http.MethodDelete, "/messages/msg_1", "", "acc_1")
	c.SetParamNames("id")
	c.SetParamValues("msg_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
