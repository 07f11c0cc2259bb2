// internal/app/features/weather/view.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /api/weather/logs/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get weather log")
	defer cancel()

	l, err := h.Logs.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, h.Log, "get weather log", err)
		return
	}
	if l == nil {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	respond.JSON(w, http.StatusOK, l.DTO())
}
