// Package breaker wraps sony/gobreaker for calls to backing services. A
// tripped breaker fails calls fast instead of queuing them behind a dead
// dependency; it never retries.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/fugu-chop/todo-db/internal/platform/config"
)

// Breaker guards calls to one named dependency.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// New creates a breaker that opens after cfg.MaxFailures consecutive
// failures and probes again after cfg.Timeout. isSuccessful decides which
// errors count against the dependency; nil treats every error as a failure.
func New(name string, cfg config.CircuitBreakerConfig, isSuccessful func(error) bool, logger *slog.Logger) *Breaker {
	if isSuccessful == nil {
		isSuccessful = func(err error) bool { return err == nil }
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:         name,
		MaxRequests:  toUint32(cfg.HalfOpenLimit),
		Timeout:      cfg.Timeout,
		IsSuccessful: isSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{name: name, cb: cb}
}

// Do runs fn through the breaker. When the breaker rejects the call the
// returned error satisfies IsOpen.
func (b *Breaker) Do(fn func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// IsOpen reports whether err is a breaker rejection rather than an error
// from the guarded call.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// State returns the current breaker state name: closed, half-open or open.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// HealthCheck reports the breaker state without calling the dependency.
func (b *Breaker) HealthCheck(_ context.Context) error {
	switch state := b.cb.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", b.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", b.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", b.name, state)
	}
}

func toUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
