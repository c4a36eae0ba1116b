package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fugu-chop/todo-db/internal/adapters/http/middleware"
	"github.com/fugu-chop/todo-db/internal/platform/logging"
)

func TestLogging_LevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "level=INFO"},
		{http.StatusSeeOther, "level=INFO"},
		{http.StatusNotFound, "level=WARN"},
		{http.StatusUnprocessableEntity, "level=WARN"},
		{http.StatusServiceUnavailable, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/lists", http.NoBody))

			out := buf.String()
			if !strings.Contains(out, "request completed") {
				t.Fatalf("output missing completion line: %s", out)
			}
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("output = %s, want %s", out, tt.wantLevel)
			}
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/lists/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/lists/5", http.NoBody))

	out := buf.String()
	if !strings.Contains(out, "route=/lists/{id}") {
		t.Errorf("output = %s, want route pattern", out)
	}
	if !strings.Contains(out, "path=/lists/5") {
		t.Errorf("output = %s, want raw path", out)
	}
	if !strings.Contains(out, "bytes=2") {
		t.Errorf("output = %s, want bytes=2", out)
	}
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("handler log")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "msg=\"handler log\"") && !strings.Contains(line, "msg=\"request completed\"") {
			continue
		}
		if !strings.Contains(line, "request_id=req-log-test") || !strings.Contains(line, "correlation_id=corr-log-test") {
			t.Errorf("line missing ids: %s", line)
		}
	}
}

func TestLogging_RedactsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
	req.Header.Set("Cookie", "todos_session=abc123")
	req.Header.Set("Accept", "text/html")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if strings.Contains(out, "abc123") {
		t.Errorf("cookie value leaked: %s", out)
	}
	if !strings.Contains(out, "Accept=text/html") {
		t.Errorf("output = %s, want non-sensitive header logged", out)
	}
}
