package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fugu-chop/todo-db/internal/adapters/http/dto"
	"github.com/fugu-chop/todo-db/internal/adapters/http/flash"
	"github.com/fugu-chop/todo-db/internal/adapters/http/views"
	"github.com/fugu-chop/todo-db/internal/app"
	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/list"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/platform/logging"
	"github.com/fugu-chop/todo-db/internal/ports"
)

const listsPath = "/lists"

// ListHandler serves the HTML pages. Every state change answers with a
// redirect and a flash message, except rejected form input, which re-renders
// the form with 422.
type ListHandler struct {
	svc     ports.ListService
	views   *views.Renderer
	flashes *flash.Store
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc ports.ListService, renderer *views.Renderer, flashes *flash.Store) *ListHandler {
	return &ListHandler{
		svc:     svc,
		views:   renderer,
		flashes: flashes,
	}
}

// Home handles GET /.
func (h *ListHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, listsPath, http.StatusFound)
}

// Index handles GET /lists.
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		// Redirecting to /lists would loop; show the failure in place.
		h.render(w, r, dto.StatusFor(err), views.PageLists, views.Page{Error: app.MsgFailure})
		return
	}
	h.render(w, r, http.StatusOK, views.PageLists, views.Page{Lists: lists})
}

// New handles GET /lists/new.
func (h *ListHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageNewList, views.Page{})
}

// Create handles POST /lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := formValue(w, r, "list_name")

	l, err := h.svc.CreateList(r.Context(), name)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			h.render(w, r, http.StatusUnprocessableEntity, views.PageNewList, views.Page{Error: msg, ListName: name})
			return
		}
		h.fail(w, r, err)
		return
	}

	h.success(w, r, app.ListCreatedMessage(l.Name))
	h.redirect(w, r, listsPath)
}

// Show handles GET /lists/{list_id}.
func (h *ListHandler) Show(w http.ResponseWriter, r *http.Request) {
	l, ok := h.loadList(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, views.PageList, views.Page{List: l})
}

// Edit handles GET /lists/{list_id}/edit.
func (h *ListHandler) Edit(w http.ResponseWriter, r *http.Request) {
	l, ok := h.loadList(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, views.PageEditList, views.Page{List: l})
}

// Update handles POST /lists/{list_id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	name := formValue(w, r, "list_name")

	l, err := h.svc.RenameList(r.Context(), id, name)
	if err != nil {
		msg, ok := validationMessage(err)
		if !ok {
			h.fail(w, r, err)
			return
		}
		current, err := h.svc.GetList(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, views.PageEditList, views.Page{Error: msg, List: current, ListName: name})
		return
	}

	h.success(w, r, app.ListUpdatedMessage(l.Name))
	h.redirect(w, r, listPath(id))
}

// Delete handles POST /lists/{list_id}/delete. The page script gets the path
// to navigate to instead of a redirect.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	l, err := h.svc.DeleteList(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if isAsync(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(listsPath))
		return
	}
	h.success(w, r, app.ListDeletedMessage(l.Name))
	h.redirect(w, r, listsPath)
}

// AddTodo handles POST /lists/{list_id}/todos.
func (h *ListHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	name := formValue(w, r, "todo")

	l, t, err := h.svc.AddTodo(r.Context(), id, name)
	if err != nil {
		if msg, ok := validationMessage(err); ok && l != nil {
			h.render(w, r, http.StatusUnprocessableEntity, views.PageList, views.Page{Error: msg, List: l, TodoName: name})
			return
		}
		h.fail(w, r, err)
		return
	}

	h.success(w, r, app.TodoAddedMessage(t.Name, l.Name))
	h.redirect(w, r, listPath(id))
}

// DeleteTodo handles POST /lists/{list_id}/todos/{todo_id}/delete. The page
// script gets 204 and removes the item itself.
func (h *ListHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := h.todoIDs(w, r)
	if !ok {
		return
	}

	l, t, err := h.svc.RemoveTodo(r.Context(), listID, todoID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if isAsync(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.success(w, r, app.TodoDeletedMessage(t.Name, l.Name))
	h.redirect(w, r, listPath(listID))
}

// UpdateTodo handles POST /lists/{list_id}/todos/{todo_id}. The completed
// field sets the status; without it the todo is toggled.
func (h *ListHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := h.todoIDs(w, r)
	if !ok {
		return
	}

	var (
		t   *todo.Todo
		err error
	)
	if raw := formValue(w, r, "completed"); raw == "" {
		t, err = h.svc.ToggleTodo(r.Context(), listID, todoID)
	} else {
		completed, perr := strconv.ParseBool(raw)
		if perr != nil {
			h.fail(w, r, domain.NewValidationError("completed", "The todo status must be true or false."))
			return
		}
		t, err = h.svc.SetTodoStatus(r.Context(), listID, todoID, completed)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.success(w, r, app.TodoStatusMessage(t.Name, t.Completed))
	h.redirect(w, r, listPath(listID))
}

// CompleteAll handles POST /lists/{list_id}/complete_all.
func (h *ListHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.CompleteAll(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.success(w, r, app.CompleteAllMessage(res.List.Name, res.Completed))
	h.redirect(w, r, listPath(id))
}

func (h *ListHandler) loadList(w http.ResponseWriter, r *http.Request) (*list.List, bool) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	l, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return l, true
}

func (h *ListHandler) todoIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	listID, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		h.fail(w, r, err)
		return 0, 0, false
	}
	todoID, err := parseID(r, paramTodoID, domain.EntityTodo)
	if err != nil {
		h.fail(w, r, err)
		return 0, 0, false
	}
	return listID, todoID, true
}

// fail answers a request that could not be served. The page script gets a
// problem response; a browser gets a flash message and is sent back to the
// overview. Store failures were already logged by the service.
func (h *ListHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isAsync(r) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	msg := app.MsgFailure
	switch domain.MissingEntity(err) {
	case domain.EntityList:
		msg = app.MsgListNotFound
	case domain.EntityTodo:
		msg = app.MsgTodoNotFound
	default:
		if vmsg, ok := validationMessage(err); ok {
			msg = vmsg
		}
	}

	if ferr := h.flashes.Error(w, r, msg); ferr != nil {
		logging.FromContext(r.Context()).Error("failed to save flash message", slog.Any("error", ferr))
	}
	h.redirect(w, r, listsPath)
}

func (h *ListHandler) success(w http.ResponseWriter, r *http.Request, msg string) {
	if err := h.flashes.Success(w, r, msg); err != nil {
		logging.FromContext(r.Context()).Error("failed to save flash message", slog.Any("error", err))
	}
}

// redirect uses 303 so the browser follows a form POST with a GET.
func (h *ListHandler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// render shows page with any pending flash messages, consuming them.
func (h *ListHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data views.Page) {
	logger := logging.FromContext(r.Context())

	msgs, err := h.flashes.Pop(w, r)
	if err != nil {
		logger.Error("failed to read flash messages", slog.Any("error", err))
	}
	data.Flash = msgs

	if err := h.views.Render(w, status, page, data); err != nil {
		logger.Error("failed to render page", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func validationMessage(err error) (string, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message(), true
	}
	return "", false
}

func listPath(id int64) string {
	return fmt.Sprintf("%s/%d", listsPath, id)
}
