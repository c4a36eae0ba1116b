package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/fugu-chop/todo-db/internal/adapters/http/dto"
	"github.com/fugu-chop/todo-db/internal/platform/config"
)

var errRateLimited = errors.New("too many requests")

// RateLimit rejects requests beyond a process-wide token bucket with 429 and
// a Retry-After hint. A non-positive rate disables limiting.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / cfg.RequestsPerSecond)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				dto.WriteErrorResponseStatus(w, r, http.StatusTooManyRequests, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
