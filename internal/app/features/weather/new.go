// internal/app/features/weather/new.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/features/shared/jsonreq"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
)

// HandleCreate handles POST /api/weather/logs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonreq.Read(r, createRules, &req, plainTextFields...); err != nil {
		respond.Error(w, h.Log, "create weather log", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create weather log")
	defer cancel()

	l, err := h.Logs.Create(ctx, req.input())
	if err != nil {
		respond.Error(w, h.Log, "create weather log", err)
		return
	}

	respond.JSON(w, http.StatusCreated, l.DTO())
}
