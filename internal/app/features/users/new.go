// internal/app/features/users/new.go
package users

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/features/shared/jsonreq"
	usersvc "github.com/dalemusser/weatherhub/internal/app/services/users"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
)

// HandleCreate handles POST /user.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonreq.Read(r, createRules, &req, "username"); err != nil {
		respond.Error(w, h.Log, "create user", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create user")
	defer cancel()

	u, err := h.Users.Create(ctx, usersvc.CreateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, h.Log, "create user", err)
		return
	}

	respond.JSON(w, http.StatusCreated, u.DTO())
}
