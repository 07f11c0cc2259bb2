// internal/app/features/weather/delete.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete handles DELETE /api/weather/logs/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.NoContent(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete weather log")
	defer cancel()

	if err := h.Logs.Delete(ctx, id); err != nil {
		respond.Error(w, h.Log, "delete weather log", err)
		return
	}
	respond.NoContent(w)
}
