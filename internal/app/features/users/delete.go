// internal/app/features/users/delete.go
package users

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /user/{id}. Always 204 unless the store fails.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.NoContent(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete user")
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		respond.Error(w, h.Log, "delete user", err)
		return
	}

	h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	respond.NoContent(w)
}
