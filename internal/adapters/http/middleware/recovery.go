package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/fugu-chop/todo-db/internal/adapters/http/dto"
	"github.com/fugu-chop/todo-db/internal/platform/logging"
)

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. Nothing is written when the handler already sent headers.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(v)
				}

				l := logging.FromContext(r.Context())
				if l == slog.Default() {
					l = logger
				}
				l.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, dto.ErrInternal)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
