// internal/app/system/paging/paging.go
package paging

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dalemusser/weatherhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size for list endpoints when none is given.
const DefaultLimit = 10

// DefaultExportLimit is the page size for export endpoints when none is given.
const DefaultExportLimit = 100

// DefaultMaxLimit caps the page size unless configured otherwise.
const DefaultMaxLimit = 1000

// Params is a requested page. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Skip is the number of matching records before this page. It saturates
// at math.MaxInt64 so a huge page number yields an empty page.
func (p Params) Skip() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	page, limit := int64(p.Page-1), int64(p.Limit)
	if page > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return page * limit
}

// Normalize applies defaults to missing or out-of-range values and clamps
// limit to maxLimit (when maxLimit > 0).
func Normalize(page, limit, defaultLimit, maxLimit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse reads "page" and "limit" from the query string. Absent or
// non-numeric values fall back to 1 and defaultLimit.
func Parse(r *http.Request, defaultLimit, maxLimit int) Params {
	return Normalize(atoi(query.Get(r, "page")), atoi(query.Get(r, "limit")), defaultLimit, maxLimit)
}

// HasParams reports whether the query string carries page or limit.
func HasParams(r *http.Request) bool {
	return query.Get(r, "page") != "" || query.Get(r, "limit") != ""
}

func atoi(s string) int {
	s = normalize.QueryParam(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// TotalPages is ceil(total/limit). A non-positive limit yields 0.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

// Page is one window of a paginated list.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NewPage assembles a Page from the fetched rows and the total match count.
func NewPage[T any](rows []T, total int64, p Params) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Data:       rows,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}

// Map converts every row of a page, keeping the counters.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Data))
	for _, row := range p.Data {
		out = append(out, fn(row))
	}
	return Page[U]{
		Data:       out,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
