// internal/app/features/weather/list.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/dalemusser/weatherhub/internal/domain/models"
)

// ServeList handles GET /api/weather/logs?page=&limit=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r, paging.DefaultLimit, h.MaxLimit)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list weather logs")
	defer cancel()

	page, err := h.Logs.GetAll(ctx, p)
	if err != nil {
		respond.Error(w, h.Log, "list weather logs", err)
		return
	}

	respond.JSON(w, http.StatusOK, paging.Map(page, models.WeatherLog.DTO))
}
