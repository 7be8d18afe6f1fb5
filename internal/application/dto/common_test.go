package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	p := dto.PageRequest{}
	p.Normalize()
	assert.Equal(t, dto.PageRequest{Page: 1, PageSize: 10}, p)
	assert.Equal(t, 0, p.Offset())

	p = dto.PageRequest{Page: 3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPageResult(t *testing.T) {
	r := dto.NewPageResult([]int{1, 2}, 21, dto.PageRequest{Page: 2, PageSize: 10})
	assert.Equal(t, 3, r.TotalPages)
	assert.Equal(t, 2, r.CurrentPage)

	empty := dto.NewPageResult[int](nil, 0, dto.PageRequest{Page: 1, PageSize: 10})
	assert.NotNil(t, empty.Data)
	assert.Equal(t, 0, empty.TotalPages)
}
