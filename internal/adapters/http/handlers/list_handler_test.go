package handlers_test

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fugu-chop/todo-db/internal/app"
	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/ports"
	"github.com/fugu-chop/todo-db/mocks"
)

var errStore = fmt.Errorf("%w: connection reset", domain.ErrDataAccess)

func TestListHandler_Home(t *testing.T) {
	t.Parallel()

	h := newListHandler(t, mocks.NewMockListService(t))
	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusFound)
	if got := rec.Header().Get("Location"); got != "/lists" {
		t.Errorf("Location = %q, want /lists", got)
	}
}

func TestListHandler_Index(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().ListLists(mock.Anything).Return([]list.Summary{
		{ID: 2, Name: "Chores", TodosCount: 2, TodosRemainingCount: 1},
		{ID: 1, Name: "Groceries", TodosCount: 2, TodosRemainingCount: 0},
	}, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/lists", nil))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	for _, want := range []string{`href="/lists/2"`, "Chores", "1 / 2", "Groceries", "0 / 2", `class="complete"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Index(body, "Chores") > strings.Index(body, "Groceries") {
		t.Error("lists rendered out of service order")
	}
}

func TestListHandler_Index_StoreFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().ListLists(mock.Anything).Return(nil, errStore)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/lists", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
	if !strings.Contains(rec.Body.String(), app.MsgFailure) {
		t.Errorf("body missing failure message")
	}
}

func TestListHandler_New(t *testing.T) {
	t.Parallel()

	h := newListHandler(t, mocks.NewMockListService(t))
	rec := httptest.NewRecorder()
	h.New(rec, httptest.NewRequest(http.MethodGet, "/lists/new", nil))

	requireStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `name="list_name"`) {
		t.Error("new list form missing list_name input")
	}
}

func TestListHandler_Create(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().CreateList(mock.Anything, "Groceries").Return(&list.List{ID: 1, Name: "Groceries"}, nil)
	svc.EXPECT().ListLists(mock.Anything).Return(nil, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Create(rec, formRequest("/lists", url.Values{"list_name": {"Groceries"}}, nil))

	requireRedirect(t, rec, "/lists")
	body := followFlash(t, h, rec)
	if want := html.EscapeString(app.ListCreatedMessage("Groceries")); !strings.Contains(body, want) {
		t.Errorf("overview missing flash %q", want)
	}
}

func TestListHandler_Create_Invalid(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("x", 101)
	svc := mocks.NewMockListService(t)
	svc.EXPECT().CreateList(mock.Anything, name).
		Return(nil, domain.NewValidationError("list_name", app.MsgListNameLength))

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Create(rec, formRequest("/lists", url.Values{"list_name": {name}}, nil))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	body := rec.Body.String()
	if !strings.Contains(body, app.MsgListNameLength) {
		t.Error("form missing validation message")
	}
	if !strings.Contains(body, `value="`+name+`"`) {
		t.Error("form did not keep the submitted name")
	}
}

func TestListHandler_Show(t *testing.T) {
	t.Parallel()

	l := groceries()
	l.Todos = todo.Sort(l.Todos)
	svc := mocks.NewMockListService(t)
	svc.EXPECT().GetList(mock.Anything, int64(1)).Return(l, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Show(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/1", nil), map[string]string{"list_id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	if !strings.Contains(body, "Complete All") {
		t.Error("incomplete list should offer Complete All")
	}
	if strings.Index(body, "Eggs") > strings.Index(body, "Milk") {
		t.Error("completed todo rendered before incomplete one")
	}
	if !strings.Contains(body, `action="/lists/1/todos/2/delete"`) {
		t.Error("todo delete form missing")
	}
}

func TestListHandler_Show_AllCompleteLabel(t *testing.T) {
	t.Parallel()

	l := groceries()
	l.Todos[1].Completed = true
	svc := mocks.NewMockListService(t)
	svc.EXPECT().GetList(mock.Anything, int64(1)).Return(l, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Show(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/1", nil), map[string]string{"list_id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Uncheck All") {
		t.Error("complete list should offer Uncheck All")
	}
}

func TestListHandler_Show_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    string
		setup func(*mocks.MockListService)
	}{
		{
			name: "missing list",
			id:   "99",
			setup: func(svc *mocks.MockListService) {
				svc.EXPECT().GetList(mock.Anything, int64(99)).Return(nil, domain.NotFoundError(domain.EntityList, 99))
			},
		},
		{
			name:  "non-integer id",
			id:    "abc",
			setup: func(*mocks.MockListService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListService(t)
			tt.setup(svc)
			svc.EXPECT().ListLists(mock.Anything).Return(nil, nil)

			h := newListHandler(t, svc)
			rec := httptest.NewRecorder()
			h.Show(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/"+tt.id, nil), map[string]string{"list_id": tt.id}))

			requireRedirect(t, rec, "/lists")
			if body := followFlash(t, h, rec); !strings.Contains(body, app.MsgListNotFound) {
				t.Errorf("overview missing %q", app.MsgListNotFound)
			}
		})
	}
}

func TestListHandler_Edit(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().GetList(mock.Anything, int64(1)).Return(groceries(), nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Edit(rec, withChiParams(httptest.NewRequest(http.MethodGet, "/lists/1/edit", nil), map[string]string{"list_id": "1"}))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	for _, want := range []string{`value="Groceries"`, `action="/lists/1/delete"`} {
		if !strings.Contains(body, want) {
			t.Errorf("edit page missing %q", want)
		}
	}
}

func TestListHandler_Update(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().RenameList(mock.Anything, int64(1), "Shopping").Return(&list.List{ID: 1, Name: "Shopping"}, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Update(rec, formRequest("/lists/1", url.Values{"list_name": {"Shopping"}}, map[string]string{"list_id": "1"}))

	requireRedirect(t, rec, "/lists/1")
}

func TestListHandler_Update_Invalid(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().RenameList(mock.Anything, int64(1), "Chores").
		Return(nil, domain.NewValidationError("list_name", app.MsgListNameUnique))
	svc.EXPECT().GetList(mock.Anything, int64(1)).Return(groceries(), nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.Update(rec, formRequest("/lists/1", url.Values{"list_name": {"Chores"}}, map[string]string{"list_id": "1"}))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	body := rec.Body.String()
	if !strings.Contains(body, app.MsgListNameUnique) {
		t.Error("edit page missing validation message")
	}
	if !strings.Contains(body, `value="Chores"`) {
		t.Error("edit page did not keep the submitted name")
	}
}

func TestListHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		async    bool
		wantCode int
		wantBody string
	}{
		{name: "form submission", wantCode: http.StatusSeeOther},
		{name: "page script", async: true, wantCode: http.StatusOK, wantBody: "/lists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListService(t)
			svc.EXPECT().DeleteList(mock.Anything, int64(1)).Return(groceries(), nil)

			h := newListHandler(t, svc)
			req := formRequest("/lists/1/delete", nil, map[string]string{"list_id": "1"})
			if tt.async {
				req = asAsync(req)
			}
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			requireStatus(t, rec, tt.wantCode)
			if tt.async {
				if got := rec.Body.String(); got != tt.wantBody {
					t.Errorf("body = %q, want %q", got, tt.wantBody)
				}
				if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
					t.Errorf("Content-Type = %q, want text/plain", ct)
				}
				if c := rec.Header().Get("Set-Cookie"); c != "" {
					t.Errorf("Set-Cookie = %q, want no flash for the page script", c)
				}
				return
			}
			if got := rec.Header().Get("Location"); got != "/lists" {
				t.Errorf("Location = %q, want /lists", got)
			}
		})
	}
}

func TestListHandler_AddTodo(t *testing.T) {
	t.Parallel()

	l := groceries()
	svc := mocks.NewMockListService(t)
	svc.EXPECT().AddTodo(mock.Anything, int64(1), "Bread").
		Return(l, &todo.Todo{ID: 3, ListID: 1, Name: "Bread"}, nil)
	svc.EXPECT().ListLists(mock.Anything).Return(nil, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.AddTodo(rec, formRequest("/lists/1/todos", url.Values{"todo": {"Bread"}}, map[string]string{"list_id": "1"}))

	requireRedirect(t, rec, "/lists/1")
	if body := followFlash(t, h, rec); !strings.Contains(body, html.EscapeString(app.TodoAddedMessage("Bread", "Groceries"))) {
		t.Error("overview missing todo added flash")
	}
}

func TestListHandler_AddTodo_Invalid(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().AddTodo(mock.Anything, int64(1), "Milk").
		Return(groceries(), nil, domain.NewValidationError("todo", app.MsgTodoNameUnique))

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.AddTodo(rec, formRequest("/lists/1/todos", url.Values{"todo": {"Milk"}}, map[string]string{"list_id": "1"}))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	body := rec.Body.String()
	if !strings.Contains(body, app.MsgTodoNameUnique) {
		t.Error("list page missing validation message")
	}
	if !strings.Contains(body, "<h2>Groceries</h2>") {
		t.Error("list page not re-rendered")
	}
}

func TestListHandler_DeleteTodo(t *testing.T) {
	t.Parallel()

	t.Run("page script gets an empty 204", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockListService(t)
		svc.EXPECT().RemoveTodo(mock.Anything, int64(1), int64(2)).
			Return(groceries(), &todo.Todo{ID: 2, ListID: 1, Name: "Eggs"}, nil)

		h := newListHandler(t, svc)
		rec := httptest.NewRecorder()
		h.DeleteTodo(rec, asAsync(formRequest("/lists/1/todos/2/delete", nil, map[string]string{"list_id": "1", "todo_id": "2"})))

		requireStatus(t, rec, http.StatusNoContent)
		if rec.Body.Len() != 0 {
			t.Errorf("body = %q, want empty", rec.Body.String())
		}
		if c := rec.Header().Get("Set-Cookie"); c != "" {
			t.Errorf("Set-Cookie = %q, want no flash for the page script", c)
		}
	})

	t.Run("form submission redirects to the list", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockListService(t)
		svc.EXPECT().RemoveTodo(mock.Anything, int64(1), int64(2)).
			Return(groceries(), &todo.Todo{ID: 2, ListID: 1, Name: "Eggs"}, nil)

		h := newListHandler(t, svc)
		rec := httptest.NewRecorder()
		h.DeleteTodo(rec, formRequest("/lists/1/todos/2/delete", nil, map[string]string{"list_id": "1", "todo_id": "2"}))

		requireRedirect(t, rec, "/lists/1")
	})

	t.Run("page script gets a problem for a missing todo", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockListService(t)
		svc.EXPECT().RemoveTodo(mock.Anything, int64(1), int64(9)).
			Return(nil, nil, domain.NotFoundError(domain.EntityTodo, 9))

		h := newListHandler(t, svc)
		rec := httptest.NewRecorder()
		h.DeleteTodo(rec, asAsync(formRequest("/lists/1/todos/9/delete", nil, map[string]string{"list_id": "1", "todo_id": "9"})))

		requireStatus(t, rec, http.StatusNotFound)
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("Content-Type = %q, want application/problem+json", ct)
		}
	})
}

func TestListHandler_UpdateTodo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		form  url.Values
		setup func(*mocks.MockListService)
	}{
		{
			name: "explicit status",
			form: url.Values{"completed": {"true"}},
			setup: func(svc *mocks.MockListService) {
				svc.EXPECT().SetTodoStatus(mock.Anything, int64(1), int64(2), true).
					Return(&todo.Todo{ID: 2, ListID: 1, Name: "Eggs", Completed: true}, nil)
			},
		},
		{
			name: "missing status toggles",
			form: url.Values{},
			setup: func(svc *mocks.MockListService) {
				svc.EXPECT().ToggleTodo(mock.Anything, int64(1), int64(2)).
					Return(&todo.Todo{ID: 2, ListID: 1, Name: "Eggs", Completed: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListService(t)
			tt.setup(svc)

			h := newListHandler(t, svc)
			rec := httptest.NewRecorder()
			h.UpdateTodo(rec, formRequest("/lists/1/todos/2", tt.form, map[string]string{"list_id": "1", "todo_id": "2"}))

			requireRedirect(t, rec, "/lists/1")
		})
	}
}

func TestListHandler_UpdateTodo_BadStatus(t *testing.T) {
	t.Parallel()

	h := newListHandler(t, mocks.NewMockListService(t))
	rec := httptest.NewRecorder()
	h.UpdateTodo(rec, formRequest("/lists/1/todos/2", url.Values{"completed": {"maybe"}}, map[string]string{"list_id": "1", "todo_id": "2"}))

	requireRedirect(t, rec, "/lists")
}

func TestListHandler_CompleteAll(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockListService(t)
	svc.EXPECT().CompleteAll(mock.Anything, int64(1)).
		Return(&ports.CompleteAllResult{List: groceries(), Completed: true}, nil)
	svc.EXPECT().ListLists(mock.Anything).Return(nil, nil)

	h := newListHandler(t, svc)
	rec := httptest.NewRecorder()
	h.CompleteAll(rec, formRequest("/lists/1/complete_all", nil, map[string]string{"list_id": "1"}))

	requireRedirect(t, rec, "/lists/1")
	if body := followFlash(t, h, rec); !strings.Contains(body, html.EscapeString(app.CompleteAllMessage("Groceries", true))) {
		t.Error("overview missing complete-all flash")
	}
}

func TestListHandler_StoreFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		async    bool
		wantCode int
	}{
		{name: "form submission", err: errStore, wantCode: http.StatusSeeOther},
		{name: "page script", err: errStore, async: true, wantCode: http.StatusInternalServerError},
		{
			name:     "page script with breaker open",
			err:      fmt.Errorf("%w: %w", domain.ErrUnavailable, errors.New("circuit breaker is open")),
			async:    true,
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockListService(t)
			svc.EXPECT().DeleteList(mock.Anything, int64(1)).Return(nil, tt.err)
			if !tt.async {
				svc.EXPECT().ListLists(mock.Anything).Return(nil, nil)
			}

			h := newListHandler(t, svc)
			req := formRequest("/lists/1/delete", nil, map[string]string{"list_id": "1"})
			if tt.async {
				req = asAsync(req)
			}
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			requireStatus(t, rec, tt.wantCode)
			if tt.async {
				if strings.Contains(rec.Body.String(), "connection reset") {
					t.Error("problem response leaked the store error")
				}
				return
			}
			if body := followFlash(t, h, rec); !strings.Contains(body, app.MsgFailure) {
				t.Error("overview missing failure flash")
			}
		})
	}
}
