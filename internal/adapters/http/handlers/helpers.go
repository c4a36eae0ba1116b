package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fugu-chop/todo-db/internal/adapters/http/dto"
	"github.com/fugu-chop/todo-db/internal/domain"
	"github.com/fugu-chop/todo-db/internal/platform/logging"
)

// Route parameter names shared by the HTML and API routes.
const (
	paramListID = "list_id"
	paramTodoID = "todo_id"
)

// parseID extracts an int64 path parameter from the chi URL params. Anything
// that is not a base-10 integer cannot name a stored record, so it is
// reported as not found.
func parseID(r *http.Request, param, entity string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, domain.NotFoundError(entity, id)
	}
	return id, nil
}

// isAsync reports whether the request was made by the page script rather than
// a form submission.
func isAsync(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}

// maxBodyBytes is the maximum allowed size for a request body (1 MB).
const maxBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// formValue reads a single url-encoded form field with the body capped at
// maxBodyBytes.
func formValue(w http.ResponseWriter, r *http.Request, key string) string {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return r.PostFormValue(key)
}
