package request_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshilsakhiya/Salwa-Admin-sub001/internal/request"
)

func TestEntityByName(t *testing.T) {
	t.Parallel()

	t.Run("known entity", func(t *testing.T) {
		t.Parallel()

		entity, err := request.EntityByName("clinics")
		require.NoError(t, err)
		require.Equal(t, "Clinic Services", entity.Title)
		require.True(t, entity.RejectableAfterApprove)
		require.Equal(t, 3, entity.MinReasonLen)
	})

	t.Run("unknown entity", func(t *testing.T) {
		t.Parallel()

		_, err := request.EntityByName("bogus")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown entity: bogus")
	})
}

func TestEntityPathTemplates(t *testing.T) {
	t.Parallel()

	entity, err := request.EntityByName("orders")
	require.NoError(t, err)

	require.Equal(t, "Order/GetOrderById/42", entity.DetailByIDPath(42))
	require.Equal(t, "Order/GetOrderByRequestNumber/ORD-2024-0001", entity.DetailByNumberPath("ORD-2024-0001"))
}

func TestEntityRegistryInvariants(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, entity := range request.Entities() {
		require.False(t, names[entity.Name], "duplicate entity name: %s", entity.Name)
		names[entity.Name] = true

		require.NotEmpty(t, entity.ListEndpoint, entity.Name)
		require.NotEmpty(t, entity.UpdateEndpoint, entity.Name)
		require.Contains(t, entity.DetailByID, "{id}", entity.Name)
		require.Contains(t, entity.DetailByNumber, "{requestNumber}", entity.Name)
		require.GreaterOrEqual(t, entity.MinReasonLen, 1, entity.Name)
	}

	require.Equal(t, len(names), len(request.EntityNames()))
}
