package ports

import (
	"context"

	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
)

// ListRepository is the persistence port for lists and their todos.
// Implemented by the postgres and memory store adapters.
//
// Implementations return domain.ErrNotFound when the addressed list or todo
// does not exist, domain.ErrConflict when a uniqueness constraint rejects a
// write, and wrap any other storage failure in domain.ErrDataAccess.
// Names are stored exactly as given; validation happens in the service.
type ListRepository interface {
	// FindList returns the list with its todos ordered by id.
	FindList(ctx context.Context, id int64) (*list.List, error)

	// AllLists returns every list ordered by id, with todo counts.
	AllLists(ctx context.Context) ([]list.Summary, error)

	// CreateList stores a new list and returns it with its assigned id.
	CreateList(ctx context.Context, name string) (*list.List, error)

	// DeleteList removes a list and all of its todos atomically.
	DeleteList(ctx context.Context, id int64) error

	// RenameList changes a list's name.
	RenameList(ctx context.Context, id int64, name string) error

	// CreateTodo stores a new, incomplete todo under listID.
	CreateTodo(ctx context.Context, listID int64, name string) (*todo.Todo, error)

	// DeleteTodo removes a single todo from a list.
	DeleteTodo(ctx context.Context, listID, todoID int64) error

	// SetTodoStatus sets the completed flag of one todo.
	SetTodoStatus(ctx context.Context, listID, todoID int64, completed bool) error

	// MarkAllTodosCompleted completes every todo of a list.
	MarkAllTodosCompleted(ctx context.Context, listID int64) error

	// MarkAllTodosIncomplete unchecks every todo of a list.
	MarkAllTodosIncomplete(ctx context.Context, listID int64) error
}
