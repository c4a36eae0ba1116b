package config

const (
	defaultServerPort   = 4567
	defaultDatabasePort = 5432

	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100

	defaultMaxConns = 10
	defaultMinConns = 1

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the values every layer starts from. Keys listed here are
// also what APP_* env vars are matched against.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                            "0.0.0.0",
		"server.port":                            defaultServerPort,
		"server.read_timeout":                    "5s",
		"server.write_timeout":                   "10s",
		"server.idle_timeout":                    "120s",
		"server.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"server.rate_limit.burst":                defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverPostgres,
		"database.host":                            "localhost",
		"database.port":                            defaultDatabasePort,
		"database.user":                            "postgres",
		"database.password":                        "",
		"database.name":                            "todos",
		"database.ssl_mode":                        "disable",
		"database.max_conns":                       defaultMaxConns,
		"database.min_conns":                       defaultMinConns,
		"database.connect_timeout":                 "5s",
		"database.migrate_on_start":                true,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"session.secret":      "",
		"session.cookie_name": "todos_session",
		"session.secure":      false,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-db",
	}
}
