// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// Validation error field names.
const (
	fieldListName = "list_name"
	fieldTodoName = "todo"
)

// ListService implements ports.ListService on top of a ListRepository. It
// owns name validation and uniqueness; the repository only stores.
type ListService struct {
	repo   ports.ListRepository
	logger *slog.Logger
}

// NewListService creates a ListService. A nil logger discards output.
func NewListService(repo ports.ListRepository, logger *slog.Logger) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ListService{
		repo:   repo,
		logger: logger,
	}
}

// ListLists returns every list, those with outstanding todos first.
func (s *ListService) ListLists(ctx context.Context) ([]list.Summary, error) {
	summaries, err := s.repo.AllLists(ctx)
	if err != nil {
		s.logFailure(ctx, "ListLists", err)
		return nil, err
	}
	return list.SortSummaries(summaries), nil
}

// GetList returns the list with its todos in display order.
func (s *ListService) GetList(ctx context.Context, id int64) (*list.List, error) {
	l, err := s.load(ctx, "GetList", id)
	if err != nil {
		return nil, err
	}
	l.Todos = todo.Sort(l.Todos)
	return l, nil
}

// CreateList trims and validates name, then creates the list.
func (s *ListService) CreateList(ctx context.Context, name string) (*list.List, error) {
	name = domain.NormalizeName(name)
	s.logger.InfoContext(ctx, "creating list", slog.String("name", name))

	if !domain.ValidNameLength(name) {
		return nil, domain.NewValidationError(fieldListName, MsgListNameLength)
	}

	summaries, err := s.repo.AllLists(ctx)
	if err != nil {
		s.logFailure(ctx, "CreateList", err)
		return nil, err
	}
	if list.NameTaken(summaries, name) {
		return nil, domain.NewValidationError(fieldListName, MsgListNameUnique)
	}

	created, err := s.repo.CreateList(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewValidationError(fieldListName, MsgListNameUnique)
		}
		s.logFailure(ctx, "CreateList", err)
		return nil, err
	}
	return created, nil
}

// RenameList renames an existing list. Keeping the current name succeeds.
func (s *ListService) RenameList(ctx context.Context, id int64, name string) (*list.List, error) {
	l, err := s.load(ctx, "RenameList", id)
	if err != nil {
		return nil, err
	}

	name = domain.NormalizeName(name)
	s.logger.InfoContext(ctx, "renaming list", slog.Int64("id", id), slog.String("name", name))

	if !domain.ValidNameLength(name) {
		return nil, domain.NewValidationError(fieldListName, MsgListNameLength)
	}

	summaries, err := s.repo.AllLists(ctx)
	if err != nil {
		s.logFailure(ctx, "RenameList", err, slog.Int64("id", id))
		return nil, err
	}
	if list.NameTakenByOther(summaries, name, id) {
		return nil, domain.NewValidationError(fieldListName, MsgListNameUnique)
	}

	if err := s.repo.RenameList(ctx, id, name); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewValidationError(fieldListName, MsgListNameUnique)
		}
		s.logFailure(ctx, "RenameList", err, slog.Int64("id", id))
		return nil, err
	}

	l.Name = name
	l.Todos = todo.Sort(l.Todos)
	return l, nil
}

// DeleteList removes the list and its todos and returns the removed list.
func (s *ListService) DeleteList(ctx context.Context, id int64) (*list.List, error) {
	l, err := s.load(ctx, "DeleteList", id)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "deleting list", slog.Int64("id", id))
	if err := s.repo.DeleteList(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteList", err, slog.Int64("id", id))
		return nil, err
	}
	return l, nil
}

// AddTodo adds an incomplete todo to the list. The length check runs before
// the uniqueness check.
func (s *ListService) AddTodo(ctx context.Context, listID int64, name string) (*list.List, *todo.Todo, error) {
	l, err := s.load(ctx, "AddTodo", listID)
	if err != nil {
		return nil, nil, err
	}
	l.Todos = todo.Sort(l.Todos)

	name = domain.NormalizeName(name)
	s.logger.InfoContext(ctx, "adding todo", slog.Int64("list_id", listID), slog.String("name", name))

	if !domain.ValidNameLength(name) {
		return l, nil, domain.NewValidationError(fieldTodoName, MsgTodoNameLength)
	}
	if todo.NameTaken(l.Todos, name) {
		return l, nil, domain.NewValidationError(fieldTodoName, MsgTodoNameUnique)
	}

	created, err := s.repo.CreateTodo(ctx, listID, name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return l, nil, domain.NewValidationError(fieldTodoName, MsgTodoNameUnique)
		}
		s.logFailure(ctx, "AddTodo", err, slog.Int64("list_id", listID))
		return nil, nil, err
	}
	return l, created, nil
}

// RemoveTodo deletes one todo and returns its parent list and the removed todo.
func (s *ListService) RemoveTodo(ctx context.Context, listID, todoID int64) (*list.List, *todo.Todo, error) {
	l, t, err := s.loadTodo(ctx, "RemoveTodo", listID, todoID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "removing todo", slog.Int64("list_id", listID), slog.Int64("todo_id", todoID))
	if err := s.repo.DeleteTodo(ctx, listID, todoID); err != nil {
		s.logFailure(ctx, "RemoveTodo", err, slog.Int64("list_id", listID), slog.Int64("todo_id", todoID))
		return nil, nil, err
	}
	return l, t, nil
}

// SetTodoStatus sets the completed flag and returns the updated todo.
func (s *ListService) SetTodoStatus(ctx context.Context, listID, todoID int64, completed bool) (*todo.Todo, error) {
	_, t, err := s.loadTodo(ctx, "SetTodoStatus", listID, todoID)
	if err != nil {
		return nil, err
	}
	return s.setStatus(ctx, t, completed)
}

// ToggleTodo flips the completed flag and returns the updated todo.
func (s *ListService) ToggleTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	_, t, err := s.loadTodo(ctx, "ToggleTodo", listID, todoID)
	if err != nil {
		return nil, err
	}
	return s.setStatus(ctx, t, !t.Completed)
}

func (s *ListService) setStatus(ctx context.Context, t *todo.Todo, completed bool) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo status",
		slog.Int64("list_id", t.ListID),
		slog.Int64("todo_id", t.ID),
		slog.Bool("completed", completed),
	)

	if err := s.repo.SetTodoStatus(ctx, t.ListID, t.ID, completed); err != nil {
		s.logFailure(ctx, "SetTodoStatus", err, slog.Int64("list_id", t.ListID), slog.Int64("todo_id", t.ID))
		return nil, err
	}
	t.Completed = completed
	return t, nil
}

// CompleteAll completes every todo of the list, or unchecks them all when
// the list is already complete.
func (s *ListService) CompleteAll(ctx context.Context, listID int64) (*ports.CompleteAllResult, error) {
	l, err := s.load(ctx, "CompleteAll", listID)
	if err != nil {
		return nil, err
	}

	completed := !l.AllComplete()
	s.logger.InfoContext(ctx, "setting all todos", slog.Int64("list_id", listID), slog.Bool("completed", completed))

	if completed {
		err = s.repo.MarkAllTodosCompleted(ctx, listID)
	} else {
		err = s.repo.MarkAllTodosIncomplete(ctx, listID)
	}
	if err != nil {
		s.logFailure(ctx, "CompleteAll", err, slog.Int64("list_id", listID))
		return nil, err
	}

	for i := range l.Todos {
		l.Todos[i].Completed = completed
	}
	return &ports.CompleteAllResult{List: l, Completed: completed}, nil
}

func (s *ListService) load(ctx context.Context, op string, id int64) (*list.List, error) {
	l, err := s.repo.FindList(ctx, id)
	if err != nil {
		s.logFailure(ctx, op, err, slog.Int64("list_id", id))
		return nil, err
	}
	return l, nil
}

func (s *ListService) loadTodo(ctx context.Context, op string, listID, todoID int64) (*list.List, *todo.Todo, error) {
	l, err := s.load(ctx, op, listID)
	if err != nil {
		return nil, nil, err
	}
	t, ok := l.FindTodo(todoID)
	if !ok {
		return nil, nil, fmt.Errorf("list %d: %w", listID, domain.NotFoundError(domain.EntityTodo, todoID))
	}
	return l, &t, nil
}

// logFailure logs store errors. Missing records are routine and logged at
// info; anything else is an error.
func (s *ListService) logFailure(ctx context.Context, op string, err error, attrs ...any) {
	args := append([]any{slog.String("operation", op), slog.Any("error", err)}, attrs...)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "record not found", args...)
		return
	}
	s.logger.ErrorContext(ctx, "store operation failed", args...)
}
