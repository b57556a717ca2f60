package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first of several pages", page: 1, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, limit: 10, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "exact fit", page: 2, limit: 5, total: 10, totalPages: 2, hasNext: false, hasPrev: true},
		{name: "empty listing", page: 1, limit: 10, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.limit, p.ItemsPerPage)
			assert.Equal(t, tt.hasNext, p.HasNextPage)
			assert.Equal(t, tt.hasPrev, p.HasPrevPage)
		})
	}
}
