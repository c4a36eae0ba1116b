package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "The list name must be unique.")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	var verr *ValidationError
	if !errors.As(error(err), &verr) {
		t.Fatal("errors.As(err, *ValidationError) = false, want true")
	}
	if verr.Fields["name"] != "The list name must be unique." {
		t.Errorf("Fields[name] = %q", verr.Fields["name"])
	}
}

func TestValidationError_MessageIsOrdered(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"todo": "second.",
		"list": "first.",
	}}

	if got, want := err.Message(), "first. second."; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	if got, want := err.Error(), "validation error: list: first.; todo: second."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := NotFoundError("list", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false, want true")
	}
	if got, want := err.Error(), "list 42: not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMissingEntity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "list", err: NotFoundError(EntityList, 1), want: EntityList},
		{name: "wrapped todo", err: fmt.Errorf("list 1: %w", NotFoundError(EntityTodo, 2)), want: EntityTodo},
		{name: "bare sentinel", err: ErrNotFound, want: EntityList},
		{name: "other error", err: ErrDataAccess, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MissingEntity(tt.err); got != tt.want {
				t.Errorf("MissingEntity() = %q, want %q", got, tt.want)
			}
		})
	}
}
