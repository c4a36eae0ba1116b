// Package postgres implements ports.ListRepository on PostgreSQL through
// pgx. Every statement is parameterized and runs behind a circuit breaker.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/platform/breaker"
	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/ports"
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

const (
	sqlFindList = `SELECT id, name FROM lists WHERE id = $1`

	sqlFindTodos = `SELECT id, list_id, name, completed FROM todos WHERE list_id = $1 ORDER BY id`

	sqlAllLists = `SELECT l.id, l.name,
       count(t.id) AS todos_count,
       count(t.id) FILTER (WHERE NOT t.completed) AS todos_remaining_count
  FROM lists l
  LEFT JOIN todos t ON t.list_id = l.id
 GROUP BY l.id, l.name
 ORDER BY l.id`

	sqlCreateList = `INSERT INTO lists (name) VALUES ($1) RETURNING id`

	sqlDeleteListTodos = `DELETE FROM todos WHERE list_id = $1`

	sqlDeleteList = `DELETE FROM lists WHERE id = $1`

	sqlRenameList = `UPDATE lists SET name = $2 WHERE id = $1`

	sqlCreateTodo = `INSERT INTO todos (list_id, name) VALUES ($1, $2) RETURNING id`

	sqlDeleteTodo = `DELETE FROM todos WHERE list_id = $1 AND id = $2`

	sqlSetTodoStatus = `UPDATE todos SET completed = $3 WHERE list_id = $1 AND id = $2`

	sqlSetAllTodosStatus = `UPDATE todos SET completed = $2 WHERE list_id = $1`
)

// Compile-time interface checks.
var (
	_ ports.ListRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// Store is the PostgreSQL list repository.
type Store struct {
	db      DB
	breaker *breaker.Breaker
	logger  *slog.Logger
}

// New creates a Store over db. Consecutive data access failures open the
// breaker configured by cfg; not-found and constraint outcomes do not count.
func New(db DB, cfg config.CircuitBreakerConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		db:      db,
		breaker: breaker.New("postgres", cfg, countsAsSuccess, logger),
		logger:  logger,
	}
}

// FindList returns the list with its todos ordered by id.
func (s *Store) FindList(ctx context.Context, id int64) (*list.List, error) {
	var l list.List
	err := s.do(func() error {
		if err := s.db.QueryRow(ctx, sqlFindList, id).Scan(&l.ID, &l.Name); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NotFoundError(domain.EntityList, id)
			}
			return err
		}

		rows, err := s.db.Query(ctx, sqlFindTodos, id)
		if err != nil {
			return err
		}
		l.Todos, err = pgx.CollectRows(rows, scanTodo)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("finding list %d: %w", id, err)
	}
	return &l, nil
}

// AllLists returns every list ordered by id with its todo counts.
func (s *Store) AllLists(ctx context.Context) ([]list.Summary, error) {
	var summaries []list.Summary
	err := s.do(func() error {
		rows, err := s.db.Query(ctx, sqlAllLists)
		if err != nil {
			return err
		}
		summaries, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (list.Summary, error) {
			var sum list.Summary
			err := row.Scan(&sum.ID, &sum.Name, &sum.TodosCount, &sum.TodosRemainingCount)
			return sum, err
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	return summaries, nil
}

func (s *Store) CreateList(ctx context.Context, name string) (*list.List, error) {
	l := &list.List{Name: name, Todos: []todo.Todo{}}
	err := s.do(func() error {
		return s.db.QueryRow(ctx, sqlCreateList, name).Scan(&l.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}
	return l, nil
}

// DeleteList removes the list's todos and then the list in one transaction.
func (s *Store) DeleteList(ctx context.Context, id int64) error {
	err := s.do(func() error {
		return s.inTx(ctx, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, sqlDeleteListTodos, id); err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, sqlDeleteList, id)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domain.NotFoundError(domain.EntityList, id)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("deleting list %d: %w", id, err)
	}
	return nil
}

func (s *Store) RenameList(ctx context.Context, id int64, name string) error {
	err := s.do(func() error {
		return s.execOne(ctx, domain.NotFoundError(domain.EntityList, id), sqlRenameList, id, name)
	})
	if err != nil {
		return fmt.Errorf("renaming list %d: %w", id, err)
	}
	return nil
}

func (s *Store) CreateTodo(ctx context.Context, listID int64, name string) (*todo.Todo, error) {
	t := &todo.Todo{ListID: listID, Name: name}
	err := s.do(func() error {
		err := s.db.QueryRow(ctx, sqlCreateTodo, listID, name).Scan(&t.ID)
		if isForeignKeyViolation(err) {
			return domain.NotFoundError(domain.EntityList, listID)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating todo in list %d: %w", listID, err)
	}
	return t, nil
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	err := s.do(func() error {
		return s.execOne(ctx, domain.NotFoundError(domain.EntityTodo, todoID), sqlDeleteTodo, listID, todoID)
	})
	if err != nil {
		return fmt.Errorf("deleting todo %d from list %d: %w", todoID, listID, err)
	}
	return nil
}

func (s *Store) SetTodoStatus(ctx context.Context, listID, todoID int64, completed bool) error {
	err := s.do(func() error {
		return s.execOne(ctx, domain.NotFoundError(domain.EntityTodo, todoID), sqlSetTodoStatus, listID, todoID, completed)
	})
	if err != nil {
		return fmt.Errorf("updating todo %d in list %d: %w", todoID, listID, err)
	}
	return nil
}

// MarkAllTodosCompleted completes every todo of the list. A list without
// todos is left unchanged.
func (s *Store) MarkAllTodosCompleted(ctx context.Context, listID int64) error {
	return s.setAll(ctx, listID, true)
}

// MarkAllTodosIncomplete unchecks every todo of the list.
func (s *Store) MarkAllTodosIncomplete(ctx context.Context, listID int64) error {
	return s.setAll(ctx, listID, false)
}

func (s *Store) setAll(ctx context.Context, listID int64, completed bool) error {
	err := s.do(func() error {
		_, err := s.db.Exec(ctx, sqlSetAllTodosStatus, listID, completed)
		return err
	})
	if err != nil {
		return fmt.Errorf("updating todos of list %d: %w", listID, err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck fails while the breaker is not closed, otherwise pings the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.breaker.HealthCheck(ctx); err != nil {
		return err
	}
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}

// do runs fn behind the breaker and translates the result into the domain
// error set.
func (s *Store) do(fn func() error) error {
	return translate(s.breaker.Do(fn))
}

// execOne runs a statement expected to touch exactly one row and returns
// notFound when it touched none.
func (s *Store) execOne(ctx context.Context, notFound error, sql string, args ...any) error {
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// inTx commits when fn succeeds and rolls back otherwise.
func (s *Store) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.WarnContext(ctx, "rollback failed", slog.Any("error", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func scanTodo(row pgx.CollectableRow) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.ListID, &t.Name, &t.Completed)
	return t, err
}
