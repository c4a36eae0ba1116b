package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fugu-chop/todo-db/internal/adapters/http/flash"
	"github.com/fugu-chop/todo-db/internal/adapters/http/handlers"
	"github.com/fugu-chop/todo-db/internal/adapters/http/views"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/ports"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func groceries() *list.List {
	return &list.List{
		ID:   1,
		Name: "Groceries",
		Todos: []todo.Todo{
			{ID: 1, ListID: 1, Name: "Milk", Completed: true},
			{ID: 2, ListID: 1, Name: "Eggs"},
		},
	}
}

func newListHandler(t *testing.T, svc ports.ListService) *handlers.ListHandler {
	t.Helper()
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error = %v", err)
	}
	flashes := flash.New(config.SessionConfig{
		Secret:     strings.Repeat("k", 32),
		CookieName: "todos_session",
	})
	return handlers.NewListHandler(svc, renderer, flashes)
}

// formRequest builds a url-encoded POST with the given chi params.
func formRequest(target string, form url.Values, params map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withChiParams(req, params)
}

func asAsync(r *http.Request) *http.Request {
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	return r
}

// followFlash renders the overview with the cookies set by rec and returns
// the page body, which carries any flash message. The caller expects the
// ListLists call.
func followFlash(t *testing.T, h *handlers.ListHandler, rec *httptest.ResponseRecorder) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	next := httptest.NewRecorder()
	h.Index(next, req)
	requireStatus(t, next, http.StatusOK)
	return next.Body.String()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	requireStatus(t, rec, http.StatusSeeOther)
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}
