package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"

	"github.com/fugu-chop/todo-db/internal/platform/config"
)

// versionTable records the applied migration version.
const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema to the latest embedded version over a dedicated
// connection.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) error {
	connCfg, err := pgx.ParseConfig(DSN(cfg))
	if err != nil {
		return fmt.Errorf("parsing connection config: %w", err)
	}
	connCfg.ConnectTimeout = cfg.ConnectTimeout
	connCfg.Tracer = NewQueryLogger(logger)

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	to := int32(len(m.Migrations))
	if from == to {
		logger.Info("database schema up to date", slog.Int("version", int(to)))
	} else {
		logger.Info("migrated database schema", slog.Int("from", int(from)), slog.Int("to", int(to)))
	}
	return nil
}

// MigrationNames lists the embedded migration files in apply order.
func MigrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("reading embedded migrations: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
