package request_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name       string
		totalCount int
		pageSize   int
		expected   int
	}{
		{name: "empty", totalCount: 0, pageSize: 10, expected: 0},
		{name: "exact fit", totalCount: 100, pageSize: 10, expected: 10},
		{name: "remainder adds a page", totalCount: 101, pageSize: 10, expected: 11},
		{name: "single partial page", totalCount: 3, pageSize: 10, expected: 1},
		{name: "page size one", totalCount: 7, pageSize: 1, expected: 7},
		{name: "zero page size", totalCount: 50, pageSize: 0, expected: 0},
		{name: "negative count", totalCount: -5, pageSize: 10, expected: 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, request.TotalPages(tc.totalCount, tc.pageSize))
		})
	}
}

func TestPageState(t *testing.T) {
	t.Parallel()

	t.Run("clamps page to one", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 1, request.NewPageState(0, 10).Page)
		require.Equal(t, 1, request.NewPageState(-3, 10).Page)
		require.Equal(t, 4, request.NewPageState(4, 10).Page)
	})

	t.Run("with backend totals", func(t *testing.T) {
		t.Parallel()

		state := request.NewPageState(2, 10).WithTotals(35, 4)
		require.Equal(t, 35, state.TotalCount)
		require.Equal(t, 4, state.TotalPages)
	})

	t.Run("computes total pages when backend omits them", func(t *testing.T) {
		t.Parallel()

		state := request.NewPageState(1, 10).WithTotals(35, 0)
		require.Equal(t, 4, state.TotalPages)
	})

	t.Run("navigation bounds", func(t *testing.T) {
		t.Parallel()

		first := request.NewPageState(1, 10).WithTotals(35, 0)
		require.True(t, first.HasNext())
		require.False(t, first.HasPrev())

		last := request.NewPageState(4, 10).WithTotals(35, 0)
		require.False(t, last.HasNext())
		require.True(t, last.HasPrev())

		empty := request.NewPageState(1, 10).WithTotals(0, 0)
		require.False(t, empty.HasNext())
		require.False(t, empty.HasPrev())
	})

	t.Run("row window", func(t *testing.T) {
		t.Parallel()

		state := request.NewPageState(4, 10).WithTotals(35, 0)
		require.Equal(t, 31, state.First())
		require.Equal(t, 35, state.Last())

		full := request.NewPageState(2, 10).WithTotals(35, 0)
		require.Equal(t, 11, full.First())
		require.Equal(t, 20, full.Last())

		empty := request.NewPageState(1, 10).WithTotals(0, 0)
		require.Equal(t, 0, empty.First())
	})
}
