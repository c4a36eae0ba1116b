package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
	ErrDataAccess  = errors.New("data access error")
)

// ValidationError carries the user-facing message for each rejected field.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to read verr.Fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Message joins the field messages in field-name order, suitable for display.
func (e *ValidationError) Message() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		msgs = append(msgs, e.Fields[field])
	}
	return strings.Join(msgs, " ")
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}

// Entities named in not-found errors.
const (
	EntityList = "list"
	EntityTodo = "todo"
)

// MissingError names the record that was not found. It unwraps to
// ErrNotFound.
type MissingError struct {
	Entity string
	ID     int64
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, ErrNotFound.Error())
}

func (e *MissingError) Unwrap() error {
	return ErrNotFound
}

// NotFoundError wraps ErrNotFound with the missing entity and its id.
func NotFoundError(entity string, id int64) error {
	return &MissingError{Entity: entity, ID: id}
}

// MissingEntity reports which entity err says is missing, or "" when err is
// not a not-found error.
func MissingEntity(err error) string {
	var merr *MissingError
	if errors.As(err, &merr) {
		return merr.Entity
	}
	if errors.Is(err, ErrNotFound) {
		return EntityList
	}
	return ""
}
