// internal/app/features/weather/edit.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/features/shared/jsonreq"
	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate handles PUT /api/weather/logs/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := jsonreq.Read(r, updateRules, &req, plainTextFields...); err != nil {
		respond.Error(w, h.Log, "update weather log", err)
		return
	}

	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update weather log")
	defer cancel()

	l, err := h.Logs.Update(ctx, id, req.input())
	if err != nil {
		respond.Error(w, h.Log, "update weather log", err)
		return
	}
	if l == nil {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	respond.JSON(w, http.StatusOK, l.DTO())
}
