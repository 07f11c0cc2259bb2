// internal/app/features/weather/routes.go
package weather

import "github.com/go-chi/chi/v5"

// Routes mounts the weather routes under "/api/weather".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Route("/logs", func(lr chi.Router) {
		lr.Post("/", h.HandleCreate)
		lr.Get("/", h.ServeList)
		lr.Get("/{id}", h.ServeView)
		lr.Put("/{id}", h.HandleUpdate)
		lr.Delete("/{id}", h.HandleDelete)
	})

	r.Get("/weather.csv", h.ServeCSV)
	r.Get("/weather.xlsx", h.ServeXLSX)

	return r
}
