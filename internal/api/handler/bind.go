package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

// messageResponse is the body of delete confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every 4xx/5xx response. Errors is only
// present for validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "invalid payload")

// bindAndValidate decodes the request body into req and validates it.
// A JSON value of the wrong type is reported as a field-level validation
// error alongside every other failing field of the partly decoded body.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return typeMismatch(c, req, ute)
		}
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code != http.StatusBadRequest {
			return err
		}
		return errInvalidPayload
	}
	return c.Validate(req)
}

// typeMismatch merges the decode error for the first mistyped field with the
// validation errors of the remaining fields. encoding/json keeps decoding
// past a type mismatch, so req holds every other supplied value.
func typeMismatch(c echo.Context, req any, ute *json.UnmarshalTypeError) error {
	fields := []domain.FieldError{{
		Field:   ute.Field,
		Message: "must be of type " + jsonKind(ute.Type.Kind().String()),
	}}

	var ve *domain.ValidationError
	if err := c.Validate(req); errors.As(err, &ve) {
		for _, f := range ve.Fields {
			if f.Field != ute.Field {
				fields = append(fields, f)
			}
		}
	}
	return domain.NewValidationError(fields...)
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "bool":
		return "boolean"
	case "slice", "array":
		return "array"
	case "struct", "map":
		return "object"
	default:
		return goKind
	}
}
