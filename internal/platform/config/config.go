// Package config loads and validates service configuration. Values are
// layered: defaults -> base.yaml -> {profile}.yaml -> APP_* env vars.
package config

import "time"

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Session   SessionConfig   `koanf:"session"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string          `koanf:"host"`
	Port         int             `koanf:"port"`
	ReadTimeout  time.Duration   `koanf:"read_timeout"`
	WriteTimeout time.Duration   `koanf:"write_timeout"`
	IdleTimeout  time.Duration   `koanf:"idle_timeout"`
	RateLimit    RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig bounds inbound request throughput. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig selects and configures the list store.
type DatabaseConfig struct {
	Driver         string               `koanf:"driver"`
	Host           string               `koanf:"host"`
	Port           int                  `koanf:"port"`
	User           string               `koanf:"user"`
	Password       string               `koanf:"password"`
	Name           string               `koanf:"name"`
	SSLMode        string               `koanf:"ssl_mode"`
	MaxConns       int32                `koanf:"max_conns"`
	MinConns       int32                `koanf:"min_conns"`
	ConnectTimeout time.Duration        `koanf:"connect_timeout"`
	MigrateOnStart bool                 `koanf:"migrate_on_start"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings for store calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// SessionConfig configures the signed cookie that carries flash messages.
type SessionConfig struct {
	Secret     string `koanf:"secret"`
	CookieName string `koanf:"cookie_name"`
	Secure     bool   `koanf:"secure"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
