// internal/app/features/users/list.go
package users

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/features/shared/jsonreq"
	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/dalemusser/weatherhub/internal/domain/models"
)

// ServeList handles GET /user.
//
// page and limit come from the query string. Older clients send them as a
// JSON body instead, so the body is consulted when the query has neither.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	p, err := h.listParams(r)
	if err != nil {
		respond.Error(w, h.Log, "list users", err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	page, err := h.Users.GetAll(ctx, p)
	if err != nil {
		respond.Error(w, h.Log, "list users", err)
		return
	}

	respond.JSON(w, http.StatusOK, paging.Map(page, models.User.DTO))
}

func (h *Handler) listParams(r *http.Request) (paging.Params, error) {
	if paging.HasParams(r) || r.Body == nil || r.ContentLength == 0 {
		return paging.Parse(r, paging.DefaultLimit, h.MaxLimit), nil
	}

	var req listRequest
	if err := jsonreq.Read(r, listRules, &req); err != nil {
		return paging.Params{}, err
	}
	return paging.Normalize(req.Page, req.Limit, paging.DefaultLimit, h.MaxLimit), nil
}
