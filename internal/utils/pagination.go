package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/creatorhub/dashboard-api/internal/constants"
)

// PaginationParams holds the windowing parameters for a list query.
// PerPage is a per-section configuration value (articles, follow lists and
// subscription rosters all page at different sizes), never a global.
type PaginationParams struct {
	Page    int
	PerPage int
	Offset  int
}

// NewPaginationParams builds validated parameters for a section page size.
func NewPaginationParams(page, perPage int) PaginationParams {
	if page < constants.MinPage {
		page = constants.MinPage
	}
	return PaginationParams{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}

// PageFromQuery extracts the requested page index, defaulting to the
// first page. The window is stateless: the caller supplies the index on
// every request.
func PageFromQuery(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	return page
}

// Page is one bounded window over an ordered collection.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Number  int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// NewPage assembles a page from an already-windowed item slice and the
// collection's total size.
func NewPage[T any](items []T, params PaginationParams, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Number:  params.Page,
		PerPage: params.PerPage,
		Total:   total,
	}
}

// HasNextPage reports whether records exist beyond this window.
func (p Page[T]) HasNextPage() bool {
	return int64(p.Number)*int64(p.PerPage) < p.Total
}

// Paginated reports whether the collection spills past a single page, i.e.
// whether a pagination control should appear at all. Exactly one full page
// does not paginate; one past it does.
func (p Page[T]) Paginated() bool {
	return p.Total > int64(p.PerPage)
}
