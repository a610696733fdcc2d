package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the root of every "record does not exist" error. Entity
// specific sentinels wrap it so callers can match either one.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrContentNotFound     = fmt.Errorf("content %w", ErrNotFound)
	ErrServiceNotFound     = fmt.Errorf("service %w", ErrNotFound)
	ErrPricingNotFound     = fmt.Errorf("pricing %w", ErrNotFound)
	ErrTestimonialNotFound = fmt.Errorf("testimonial %w", ErrNotFound)
	ErrContactNotFound     = fmt.Errorf("contact %w", ErrNotFound)
)

var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ErrDuplicateKey is returned when a concurrent writer inserted the same
// unique key first. The operation can be retried.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrDuplicateSubmission is returned when the same contact form was already
// received within the dedup window.
var ErrDuplicateSubmission = errors.New("duplicate submission")

// FieldError describes one failing field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of a payload that is missing, mistyped
// or fails a constraint.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError from the given field errors.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(msgs, "; ")
}
