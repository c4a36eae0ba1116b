package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/platform/breaker"
)

// SQLSTATE codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate maps an error returned through the breaker onto the domain
// error set. Errors that already carry a domain sentinel pass through.
func translate(err error) error {
	var pgErr *pgconn.PgError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return err
	case breaker.IsOpen(err):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	case errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%w: %w", domain.ErrDataAccess, err)
	}
}

// countsAsSuccess keeps caller-caused outcomes from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil ||
		errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		(pgErr.Code == codeUniqueViolation || pgErr.Code == codeForeignKeyViolation)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
