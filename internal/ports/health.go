package ports

import "context"

// HealthChecker is implemented by components whose availability gates
// readiness, such as the list store.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "postgres").
	Name() string

	// HealthCheck returns nil when the component can serve requests.
	// Implementations must respect context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns results keyed by
	// checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
