// Package health keeps the set of components consulted by the readiness
// probe and runs their checks.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fugu-chop/todo-db/internal/ports"
)

// DefaultCheckTimeout bounds a single component check.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe ports.HealthRegistry. Checks run in
// parallel, each under its own timeout.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry using DefaultCheckTimeout.
func New() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// WithTimeout overrides the per-check timeout.
func (r *Registry) WithTimeout(d time.Duration) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeout = d
	return r
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns results keyed by checker name.
// A check that outlives the timeout reports context.DeadlineExceeded.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	timeout := r.timeout
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)

	for _, c := range checkers {
		wg.Go(func() {
			err := runCheck(ctx, c, timeout)
			mu.Lock()
			results[c.Name()] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}

func runCheck(ctx context.Context, c ports.HealthChecker, timeout time.Duration) (err error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check panicked: %v", v)
		}
	}()

	return c.HealthCheck(ctx)
}
