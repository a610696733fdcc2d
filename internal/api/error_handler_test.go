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

	"github.com/ndzibs/freight-site/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		fields  int
	}{
		{
			name:    "validation",
			err:     domain.NewValidationError(domain.FieldError{Field: "name", Message: "is required"}, domain.FieldError{Field: "rate", Message: "is required"}),
			code:    http.StatusBadRequest,
			message: "Validation error",
			fields:  2,
		},
		{"wrapped not found", fmt.Errorf("update: %w", domain.ErrPricingNotFound), http.StatusNotFound, "Pricing not found", 0},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, "Not found", 0},
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"), http.StatusTooManyRequests, "rate limit exceeded", 0},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials", 0},
		{"duplicate submission", domain.ErrDuplicateSubmission, http.StatusConflict, "This enquiry was already received", 0},
		{"generic", errors.New("connection refused"), http.StatusInternalServerError, "connection refused", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body struct {
				Message string              `json:"message"`
				Errors  []domain.FieldError `json:"errors"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, body.Message)
			}
			if len(body.Errors) != tt.fields {
				t.Fatalf("expected %d field errors, got %+v", tt.fields, body.Errors)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response must not be rewritten, got %d %q", rec.Code, rec.Body.String())
	}
}
