// internal/app/features/weather/export.go
package weather

import (
	"net/http"

	"github.com/dalemusser/weatherhub/internal/app/system/export"
	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/app/system/respond"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeCSV handles GET /api/weather/weather.csv?page=&limit=.
// Exports default to 100 rows per page.
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r, paging.DefaultExportLimit, h.MaxLimit)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "weather csv export")
	defer cancel()

	body, err := h.Logs.ExportCSV(ctx, p)
	if err != nil {
		respond.Error(w, h.Log, "weather csv export", err)
		return
	}

	h.Log.Info("weather csv export",
		zap.Int("page", p.Page),
		zap.Int("limit", p.Limit),
		zap.Int("bytes", len(body)))
	respond.File(w, export.CSVContentType, csvFilename, body)
}

// ServeXLSX handles GET /api/weather/weather.xlsx?page=&limit=.
func (h *Handler) ServeXLSX(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r, paging.DefaultExportLimit, h.MaxLimit)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "weather xlsx export")
	defer cancel()

	body, err := h.Logs.ExportXLSX(ctx, p)
	if err != nil {
		respond.Error(w, h.Log, "weather xlsx export", err)
		return
	}

	h.Log.Info("weather xlsx export",
		zap.Int("page", p.Page),
		zap.Int("limit", p.Limit),
		zap.Int("bytes", len(body)))
	respond.File(w, export.XLSXContentType, xlsxFilename, body)
}
