// Package middleware provides the inbound HTTP request pipeline. The router
// installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware
