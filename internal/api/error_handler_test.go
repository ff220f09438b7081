package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"shipment not found", domain.ErrShipmentNotFound, http.StatusNotFound, "shipment not found"},
		{"wrapped not found", fmt.Errorf("get shipment s1: %w", domain.ErrShipmentNotFound), http.StatusNotFound, "shipment not found"},
		{"invalid transition", fmt.Errorf("update status: %w (from quote_ready to in_transit)", domain.ErrInvalidTransition), http.StatusUnprocessableEntity, ""},
		{"unknown status", fmt.Errorf("update status: %w: %q", domain.ErrUnknownStatus, "lost"), http.StatusUnprocessableEntity, ""},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"echo error passes through", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unexpected error is masked", errors.New("connection reset by peer"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad error body: %v", err)
			}
			if tt.wantMsg != "" && body.Error != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Error, tt.wantMsg)
			}
			if body.Error == "" {
				t.Error("error message must not be empty")
			}
		})
	}
}

func TestHTTPErrorHandlerCommittedResponse(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("NoContent failed: %v", err)
	}
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Errorf("committed response was overwritten: %d", rec.Code)
	}
}
