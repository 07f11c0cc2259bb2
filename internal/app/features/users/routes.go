// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes mounts the user routes under the base path ("/user" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
