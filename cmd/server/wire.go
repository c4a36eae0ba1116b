package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/fugu-chop/todo-db/internal/adapters/http"
	"github.com/fugu-chop/todo-db/internal/adapters/http/flash"
	"github.com/fugu-chop/todo-db/internal/adapters/http/handlers"
	"github.com/fugu-chop/todo-db/internal/adapters/http/middleware"
	"github.com/fugu-chop/todo-db/internal/adapters/http/views"
	"github.com/fugu-chop/todo-db/internal/adapters/store/memory"
	"github.com/fugu-chop/todo-db/internal/adapters/store/postgres"
	"github.com/fugu-chop/todo-db/internal/app"
	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/platform/database"
	"github.com/fugu-chop/todo-db/internal/platform/health"
	"github.com/fugu-chop/todo-db/internal/platform/telemetry"
	"github.com/fugu-chop/todo-db/internal/ports"
)

// store is what every list store adapter provides: the repository itself and
// a readiness check.
type store interface {
	ports.ListRepository
	ports.HealthChecker
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		do.Provide(injector, func(_ do.Injector) (store, error) {
			logger.Warn("using the in-memory list store; data is lost on restart")
			return memory.New(), nil
		})
	default:
		do.Provide(injector, func(i do.Injector) (*database.Database, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return database.New(ctx, cfg.Database, logger, metrics)
		})
		do.Provide(injector, func(i do.Injector) (store, error) {
			db, err := do.Invoke[*database.Database](i)
			if err != nil {
				return nil, err
			}
			return postgres.New(db.Pool, cfg.Database.CircuitBreaker, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		s, err := do.Invoke[store](i)
		if err != nil {
			return nil, err
		}
		registry.Register(s)
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		s, err := do.Invoke[store](i)
		if err != nil {
			return nil, err
		}
		return app.NewListService(s, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		renderer, err := views.New()
		if err != nil {
			return nil, err
		}
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc, renderer, flash.New(cfg.Session)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.APIHandler, error) {
		return handlers.NewAPIHandler(do.MustInvoke[ports.ListService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		lists, err := do.Invoke[*handlers.ListHandler](i)
		if err != nil {
			return nil, err
		}
		healthH, err := do.Invoke[*handlers.HealthHandler](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Lists:  lists,
			API:    do.MustInvoke[*handlers.APIHandler](i),
			Health: healthH,
			Static: views.Static(),
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.Server.RateLimit),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
