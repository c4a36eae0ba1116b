package handlers

import (
	"net/http"

	"github.com/fugu-chop/todo-db/internal/adapters/http/dto"
	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/domain/todo"
	"github.com/fugu-chop/todo-db/internal/ports"
)

// APIHandler handles the JSON API under /api/v1.
type APIHandler struct {
	svc ports.ListService
}

// NewAPIHandler creates a new APIHandler with the given service port.
func NewAPIHandler(svc ports.ListService) *APIHandler {
	return &APIHandler{svc: svc}
}

// ListLists handles GET /api/v1/lists.
func (h *APIHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListSummaryResponses(lists))
}

// CreateList handles POST /api/v1/lists.
func (h *APIHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), *req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToListResponse(created))
}

// GetList handles GET /api/v1/lists/{list_id}.
func (h *APIHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// RenameList handles PATCH /api/v1/lists/{list_id}.
func (h *APIHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RenameListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.RenameList(r.Context(), id, *req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToListResponse(l))
}

// DeleteList handles DELETE /api/v1/lists/{list_id}.
func (h *APIHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.svc.DeleteList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddTodo handles POST /api/v1/lists/{list_id}/todos.
func (h *APIHandler) AddTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, created, err := h.svc.AddTodo(r.Context(), id, *req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// UpdateTodo handles PATCH /api/v1/lists/{list_id}/todos/{todo_id}.
func (h *APIHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := apiTodoIDs(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var (
		t   *todo.Todo
		err error
	)
	if req.Completed == nil {
		t, err = h.svc.ToggleTodo(r.Context(), listID, todoID)
	} else {
		t, err = h.svc.SetTodoStatus(r.Context(), listID, todoID, *req.Completed)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// RemoveTodo handles DELETE /api/v1/lists/{list_id}/todos/{todo_id}.
func (h *APIHandler) RemoveTodo(w http.ResponseWriter, r *http.Request) {
	listID, todoID, ok := apiTodoIDs(w, r)
	if !ok {
		return
	}

	if _, _, err := h.svc.RemoveTodo(r.Context(), listID, todoID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteAll handles POST /api/v1/lists/{list_id}/complete_all.
func (h *APIHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.CompleteAll(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCompleteAllResponse(res))
}

func apiTodoIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	listID, err := parseID(r, paramListID, domain.EntityList)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	todoID, err := parseID(r, paramTodoID, domain.EntityTodo)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return listID, todoID, true
}
