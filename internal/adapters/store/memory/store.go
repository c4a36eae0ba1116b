// Package memory implements ports.ListRepository in process memory. It is
// selected with database.driver=memory for running without PostgreSQL and
// loses everything on restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/ports"
)

var (
	_ ports.ListRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store keeps lists in insertion order. List ids and todo ids within a list
// are assigned as one more than the current maximum, so the id of the most
// recently deleted entry can be handed out again.
type Store struct {
	mu    sync.RWMutex
	lists []*list.List
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

func (s *Store) FindList(_ context.Context, id int64) (*list.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return clone(l), nil
}

func (s *Store) AllLists(_ context.Context) ([]list.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]list.Summary, 0, len(s.lists))
	for _, l := range s.lists {
		summaries = append(summaries, list.Summarize(l))
	}
	return summaries, nil
}

func (s *Store) CreateList(_ context.Context, name string) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lists {
		if l.Name == name {
			return nil, domain.ErrConflict
		}
	}

	l := &list.List{ID: domain.NextID(listIDs(s.lists)), Name: name, Todos: []todo.Todo{}}
	s.lists = append(s.lists, l)
	return clone(l), nil
}

// DeleteList removes the list together with its todos.
func (s *Store) DeleteList(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return domain.NotFoundError(domain.EntityList, id)
	}
	s.lists = slices.Delete(s.lists, i, i+1)
	return nil
}

func (s *Store) RenameList(_ context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.find(id)
	if err != nil {
		return err
	}
	for _, other := range s.lists {
		if other.ID != id && other.Name == name {
			return domain.ErrConflict
		}
	}
	l.Name = name
	return nil
}

func (s *Store) CreateTodo(_ context.Context, listID int64, name string) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.find(listID)
	if err != nil {
		return nil, err
	}
	if todo.NameTaken(l.Todos, name) {
		return nil, domain.ErrConflict
	}

	t := todo.Todo{ID: domain.NextID(todoIDs(l.Todos)), ListID: listID, Name: name}
	l.Todos = append(l.Todos, t)
	return &t, nil
}

func (s *Store) DeleteTodo(_ context.Context, listID, todoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.find(listID)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(l.Todos, func(t todo.Todo) bool { return t.ID == todoID })
	if i < 0 {
		return domain.NotFoundError(domain.EntityTodo, todoID)
	}
	l.Todos = slices.Delete(l.Todos, i, i+1)
	return nil
}

func (s *Store) SetTodoStatus(_ context.Context, listID, todoID int64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.find(listID)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(l.Todos, func(t todo.Todo) bool { return t.ID == todoID })
	if i < 0 {
		return domain.NotFoundError(domain.EntityTodo, todoID)
	}
	l.Todos[i].Completed = completed
	return nil
}

func (s *Store) MarkAllTodosCompleted(_ context.Context, listID int64) error {
	return s.setAll(listID, true)
}

func (s *Store) MarkAllTodosIncomplete(_ context.Context, listID int64) error {
	return s.setAll(listID, false)
}

func (s *Store) setAll(listID int64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.find(listID)
	if err != nil {
		return err
	}
	for i := range l.Todos {
		l.Todos[i].Completed = completed
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "memory"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// find must be called with s.mu held.
func (s *Store) find(id int64) (*list.List, error) {
	i := s.index(id)
	if i < 0 {
		return nil, domain.NotFoundError(domain.EntityList, id)
	}
	return s.lists[i], nil
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.lists, func(l *list.List) bool { return l.ID == id })
}

func clone(l *list.List) *list.List {
	return &list.List{ID: l.ID, Name: l.Name, Todos: slices.Clone(l.Todos)}
}

func listIDs(lists []*list.List) []int64 {
	ids := make([]int64, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
	}
	return ids
}

func todoIDs(todos []todo.Todo) []int64 {
	ids := make([]int64, 0, len(todos))
	for _, t := range todos {
		ids = append(ids, t.ID)
	}
	return ids
}
