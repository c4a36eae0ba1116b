// Package database owns the PostgreSQL connection pool: building the DSN
// from config, wiring statement logging and tracing into pgx, and applying
// the embedded schema migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/platform/telemetry"
)

// Database wraps the process-wide connection pool.
type Database struct {
	Pool   *pgxpool.Pool
	logger *slog.Logger
}

// DSN builds a postgres:// connection URL. User and password are escaped;
// IPv6 hosts are bracketed.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// PoolConfig parses cfg into a pgxpool configuration with the statement
// logger and tracer attached. metrics may be nil.
func PoolConfig(cfg config.DatabaseConfig, logger *slog.Logger, metrics *telemetry.Metrics) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parsing pool config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	poolCfg.ConnConfig.Tracer = &multiTracer{tracers: []pgx.QueryTracer{
		NewQueryLogger(logger),
		NewQueryTracer(metrics),
	}}

	return poolCfg, nil
}

// New creates the pool and pings it so startup fails fast when PostgreSQL is
// unreachable.
func New(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, metrics *telemetry.Metrics) (*Database, error) {
	poolCfg, err := PoolConfig(cfg, logger, metrics)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("connected to database",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Name),
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	return &Database{Pool: pool, logger: logger}, nil
}

// Close releases every pooled connection.
func (db *Database) Close() {
	db.logger.Info("closing database connection pool")
	db.Pool.Close()
}
