package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{"last partial page", 25, 3, 10, 3, false, true},
		{"first of many", 25, 1, 10, 3, true, false},
		{"middle page", 25, 2, 10, 3, true, true},
		{"exact division", 20, 2, 10, 2, false, true},
		{"empty listing", 0, 1, 10, 0, false, false},
		{"single page", 5, 1, 10, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.total, tc.page, tc.limit)
			require.Equal(t, tc.total, p.Total)
			require.Equal(t, tc.page, p.Page)
			require.Equal(t, tc.limit, p.Limit)
			require.Equal(t, tc.totalPages, p.TotalPages)
			require.Equal(t, tc.hasNext, p.HasNextPage)
			require.Equal(t, tc.hasPrev, p.HasPrevPage)
		})
	}
}
