// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fugu-chop/todo-db/internal/adapters/http/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Lists  *handlers.ListHandler
	API    *handlers.APIHandler
	Health *handlers.HealthHandler
	// Static serves the stylesheet and page script under /static/.
	Static http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if h.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.Static))
	}

	// HTML pages. Browsers only submit GET and POST, so deletes and updates
	// are POSTs to dedicated paths.
	r.Get("/", h.Lists.Home)
	r.Route("/lists", func(r chi.Router) {
		r.Get("/", h.Lists.Index)
		r.Post("/", h.Lists.Create)
		r.Get("/new", h.Lists.New)

		r.Route("/{list_id}", func(r chi.Router) {
			r.Get("/", h.Lists.Show)
			r.Post("/", h.Lists.Update)
			r.Get("/edit", h.Lists.Edit)
			r.Post("/delete", h.Lists.Delete)
			r.Post("/complete_all", h.Lists.CompleteAll)

			r.Post("/todos", h.Lists.AddTodo)
			r.Post("/todos/{todo_id}", h.Lists.UpdateTodo)
			r.Post("/todos/{todo_id}/delete", h.Lists.DeleteTodo)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lists", h.API.ListLists)
		r.Post("/lists", h.API.CreateList)
		r.Get("/lists/{list_id}", h.API.GetList)
		r.Patch("/lists/{list_id}", h.API.RenameList)
		r.Delete("/lists/{list_id}", h.API.DeleteList)
		r.Post("/lists/{list_id}/complete_all", h.API.CompleteAll)

		r.Post("/lists/{list_id}/todos", h.API.AddTodo)
		r.Patch("/lists/{list_id}/todos/{todo_id}", h.API.UpdateTodo)
		r.Delete("/lists/{list_id}/todos/{todo_id}", h.API.RemoveTodo)
	})

	return r
}
