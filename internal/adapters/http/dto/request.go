package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fugu-chop/todo-db/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return name
		})
	})
	return validate
}

// CreateListRequest is the body of POST /api/v1/lists.
type CreateListRequest struct {
	Name *string `json:"name" validate:"required"`
}

func (r *CreateListRequest) Validate() error { return validateStruct(r) }

// RenameListRequest is the body of PATCH /api/v1/lists/{id}.
type RenameListRequest struct {
	Name *string `json:"name" validate:"required"`
}

func (r *RenameListRequest) Validate() error { return validateStruct(r) }

// CreateTodoRequest is the body of POST /api/v1/lists/{id}/todos.
type CreateTodoRequest struct {
	Name *string `json:"name" validate:"required"`
}

func (r *CreateTodoRequest) Validate() error { return validateStruct(r) }

// UpdateTodoRequest is the body of PATCH /api/v1/lists/{id}/todos/{todoId}.
// Omitting completed toggles the todo.
type UpdateTodoRequest struct {
	Completed *bool `json:"completed"`
}

func (r *UpdateTodoRequest) Validate() error { return nil }

// validateStruct runs the struct tags and converts failures into a
// *domain.ValidationError keyed by JSON field name. Name length and
// uniqueness are checked by the service, not here.
func validateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return &domain.ValidationError{Fields: fields}
}
