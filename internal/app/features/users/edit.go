// internal/app/features/users/edit.go
package users

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/features/shared/jsonreq"
	usersvc "github.com/dalemusser/weatherhub/internal/app/services/users"
	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate handles PUT /user/{id}. A missing user answers 200 with a
// not-found message rather than 404.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := jsonreq.Read(r, updateRules, &req); err != nil {
		respond.Error(w, h.Log, "update user", err)
		return
	}

	id, ok := docstore.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update user")
	defer cancel()

	u, err := h.Users.Update(ctx, id, usersvc.UpdateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, h.Log, "update user", err)
		return
	}
	if u == nil {
		respond.Message(w, http.StatusOK, notFoundMessage)
		return
	}

	respond.JSON(w, http.StatusOK, u.DTO())
}
