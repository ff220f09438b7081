package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

type stubAuthService struct {
	loginErr     error
	loggedOutID  string
	loggedOutExp time.Time
}

func (s *stubAuthService) Register(_ context.Context, name, email, _, role string) (*domain.User, error) {
	if email == "taken@skyparcel.io" {
		return nil, domain.ErrUserExists
	}
	return &domain.User{ID: "u1", Name: name, Email: email, Role: role}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleOps}, nil
}

func (s *stubAuthService) Logout(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.loggedOutID = tokenID
	s.loggedOutExp = expiresAt
	return nil
}

func TestRegisterHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/auth/register",
		`{"name":"Ada Ops","email":"ada@skyparcel.io","password":"s3cret-pass","role":"ops"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.User == nil || body.User.Email != "ada@skyparcel.io" {
		t.Errorf("body = %+v", body)
	}
	if body.Token != "" {
		t.Error("register must not return a token")
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"Ada","email":"ada@skyparcel.io","password":"short","role":"ops"}`},
		{"bad email", `{"name":"Ada","email":"not-an-email","password":"s3cret-pass","role":"ops"}`},
		{"bad role", `{"name":"Ada","email":"ada@skyparcel.io","password":"s3cret-pass","role":"superuser"}`},
		{"missing name", `{"email":"ada@skyparcel.io","password":"s3cret-pass","role":"ops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(newTestEcho(), http.MethodPost, "/auth/register", tt.body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/auth/register",
		`{"name":"Ada","email":"taken@skyparcel.io","password":"s3cret-pass","role":"ops"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/auth/login",
		`{"email":"ada@skyparcel.io","password":"s3cret-pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Token != "signed-token" {
		t.Errorf("token = %q", body.Token)
	}
	if body.User == nil || body.User.Role != domain.RoleOps {
		t.Errorf("user = %+v", body.User)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newTestContext(newTestEcho(), http.MethodPost, "/auth/login",
		`{"email":"ada@skyparcel.io","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutHandler(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)
	c, rec := newTestContext(newTestEcho(), http.MethodPost, "/auth/logout", "")
	exp := time.Now().Add(time.Hour).UTC()
	c.Set("token_id", "tok-1")
	c.Set("token_exp", exp)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.loggedOutID != "tok-1" || !svc.loggedOutExp.Equal(exp) {
		t.Errorf("revoked %q until %v", svc.loggedOutID, svc.loggedOutExp)
	}
}

func TestMeHandler(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(newTestEcho(), http.MethodGet, "/auth/me", "")
	c.Set("user_id", "u1")
	c.Set("name", "Ada Ops")
	c.Set("email", "ada@skyparcel.io")
	c.Set("role", domain.RoleOps)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	var body meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.ID != "u1" || body.Name != "Ada Ops" || body.Role != domain.RoleOps {
		t.Errorf("body = %+v", body)
	}
}

func TestMeHandlerNoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
