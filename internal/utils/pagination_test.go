package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pageOf(total int64, page, perPage int) Page[int] {
	return NewPage([]int{}, NewPaginationParams(page, perPage), total)
}

func TestNewPaginationParams(t *testing.T) {
	params := NewPaginationParams(3, 50)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.PerPage)
	assert.Equal(t, 100, params.Offset)

	// Page indexes below the minimum clamp to the first page
	params = NewPaginationParams(0, 50)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Offset)

	params = NewPaginationParams(-2, 100)
	assert.Equal(t, 1, params.Page)
}

func TestPaginated_ExactPageBoundary(t *testing.T) {
	// Exactly one full page must not show a pagination control
	assert.False(t, pageOf(50, 1, 50).Paginated())
	// One past a full page must
	assert.True(t, pageOf(51, 1, 50).Paginated())

	// Same boundary at the subscriptions page size
	assert.False(t, pageOf(100, 1, 100).Paginated())
	assert.True(t, pageOf(101, 1, 100).Paginated())
}

func TestHasNextPage(t *testing.T) {
	assert.False(t, pageOf(50, 1, 50).HasNextPage())
	assert.True(t, pageOf(51, 1, 50).HasNextPage())

	// Middle and final windows
	assert.True(t, pageOf(120, 1, 50).HasNextPage())
	assert.True(t, pageOf(120, 2, 50).HasNextPage())
	assert.False(t, pageOf(120, 3, 50).HasNextPage())
}

func TestNewPage_NilItems(t *testing.T) {
	// An empty collection is a valid page, not an error state
	page := NewPage[string](nil, NewPaginationParams(1, 100), 0)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.False(t, page.Paginated())
	assert.False(t, page.HasNextPage())
}
