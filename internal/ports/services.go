package ports

import (
	"context"

	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
)

// ListService defines the service port for list and todo workflows.
// Implemented by the application layer; called by inbound adapters (handlers).
// Names are trimmed and validated here; a rejected name returns a
// *domain.ValidationError whose message is fit for display.
type ListService interface {
	// ListLists returns list summaries in display order: lists with
	// outstanding todos first.
	ListLists(ctx context.Context) ([]list.Summary, error)

	// GetList returns a list with its todos in display order.
	// Returns domain.ErrNotFound if the list does not exist.
	GetList(ctx context.Context, id int64) (*list.List, error)

	// CreateList validates the name and creates a list.
	CreateList(ctx context.Context, name string) (*list.List, error)

	// RenameList validates the new name and renames the list. Keeping the
	// current name is allowed.
	RenameList(ctx context.Context, id int64, name string) (*list.List, error)

	// DeleteList removes a list and its todos, returning what was deleted.
	DeleteList(ctx context.Context, id int64) (*list.List, error)

	// AddTodo validates the name and adds an incomplete todo to the list.
	// On a validation error the loaded list is still returned so the caller
	// can redisplay it.
	AddTodo(ctx context.Context, listID int64, name string) (*list.List, *todo.Todo, error)

	// RemoveTodo deletes a todo, returning the parent list and the removed todo.
	RemoveTodo(ctx context.Context, listID, todoID int64) (*list.List, *todo.Todo, error)

	// SetTodoStatus sets a todo's completed flag and returns the updated todo.
	SetTodoStatus(ctx context.Context, listID, todoID int64, completed bool) (*todo.Todo, error)

	// ToggleTodo flips a todo's completed flag and returns the updated todo.
	ToggleTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error)

	// CompleteAll completes every todo of the list, or unchecks them all when
	// the list is already complete.
	CompleteAll(ctx context.Context, listID int64) (*CompleteAllResult, error)
}

// CompleteAllResult reports which direction CompleteAll applied.
type CompleteAllResult struct {
	List      *list.List
	Completed bool
}
