package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/api/handler"
	"github.com/ndzibs/freight-site/internal/core/domain"
)

var notFoundMessages = []struct {
	err error
	msg string
}{
	{domain.ErrServiceNotFound, "Service not found"},
	{domain.ErrPricingNotFound, "Pricing not found"},
	{domain.ErrTestimonialNotFound, "Testimonial not found"},
	{domain.ErrContactNotFound, "Contact not found"},
	{domain.ErrContentNotFound, "Content not found"},
	{domain.ErrUserNotFound, "User not found"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as {"message", "errors": [{field, message}]}.
//   - Renders everything else as {"message"}, exposing the error text.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, handler.ErrorResponse{Message: "Validation error", Errors: ve.Fields}
	}

	// Echo's own errors (bind failures, 404 from router, rate limiting, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	if errors.Is(err, domain.ErrNotFound) {
		for _, nf := range notFoundMessages {
			if errors.Is(err, nf.err) {
				return http.StatusNotFound, handler.ErrorResponse{Message: nf.msg}
			}
		}
		return http.StatusNotFound, handler.ErrorResponse{Message: "Not found"}
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, handler.ErrorResponse{Message: "invalid credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, handler.ErrorResponse{Message: "access forbidden"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, handler.ErrorResponse{Message: "user already exists"}
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return http.StatusConflict, handler.ErrorResponse{Message: "This enquiry was already received"}
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, handler.ErrorResponse{Message: err.Error()}
	}

	// Unexpected error: log the real cause and pass its message through.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Message: err.Error()}
}
