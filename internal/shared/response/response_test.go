package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(45, 2, 20)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	last := NewPaginationMeta(45, 3, 20)
	assert.False(t, last.HasNext)

	empty := NewPaginationMeta(0, 1, 20)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrev)
}

func TestPaginate(t *testing.T) {
	start, end := Paginate(5, 1, 2)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	start, end = Paginate(5, 3, 2)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)

	start, end = Paginate(5, 9, 2)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}
