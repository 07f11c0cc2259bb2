// internal/app/features/users/view.go
package users

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /user/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get user")
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		respond.Error(w, h.Log, "get user", err)
		return
	}
	if u == nil {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	respond.JSON(w, http.StatusOK, u.DTO())
}
