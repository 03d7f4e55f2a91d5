package request_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

func TestSortToggle(t *testing.T) {
	t.Parallel()

	t.Run("full cycle on one column", func(t *testing.T) {
		t.Parallel()

		var s request.SortState

		s = s.Toggle("createdDate")
		active, exists := s.Active()
		require.True(t, exists)
		require.Equal(t, request.SortKey{Key: "createdDate", Order: request.OrderAsc}, active)

		s = s.Toggle("createdDate")
		active, _ = s.Active()
		require.Equal(t, request.OrderDesc, active.Order)

		s = s.Toggle("createdDate")
		_, exists = s.Active()
		require.False(t, exists)
		require.Empty(t, s)
	})

	t.Run("switching columns replaces the state", func(t *testing.T) {
		t.Parallel()

		s := request.SortState{{Key: "createdDate", Order: request.OrderDesc}}
		s = s.Toggle("requestNumber")

		require.Len(t, s, 1)
		active, _ := s.Active()
		require.Equal(t, request.SortKey{Key: "requestNumber", Order: request.OrderAsc}, active)
	})
}

func TestOrderParam(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ASC", request.OrderAsc.Param())
	require.Equal(t, "DESC", request.OrderDesc.Param())
}

func TestListParamsQuery(t *testing.T) {
	t.Parallel()

	t.Run("minimal", func(t *testing.T) {
		t.Parallel()

		query := request.ListParams{Page: 1, PageSize: 10}.Query()
		require.Equal(t, map[string]string{
			"pageNumber": "1",
			"pageSize":   "10",
		}, query)
	})

	t.Run("all parameters", func(t *testing.T) {
		t.Parallel()

		status := request.StatusPending
		params := request.ListParams{
			Page:     3,
			PageSize: 20,
			Sort:     request.SortState{{Key: "createdDate", Order: request.OrderDesc}},
			Search:   "clinic",
			Status:   &status,
			Language: "AR",
		}

		require.Equal(t, map[string]string{
			"pageNumber":     "3",
			"pageSize":       "20",
			"orderByColumn":  "createdDate",
			"orderDirection": "DESC",
			"searchText":     "clinic",
			"statusId":       "99",
			"Language":       "AR",
		}, params.Query())
	})
}
