package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery(t *testing.T) {
	t.Run("should create query with positive order number", func(t *testing.T) {
		query, err := queries.NewGetOrderStatusQuery(42)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(42), query.OrderNumber())
	})

	t.Run("should reject non-positive order numbers", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusQuery(0)
		require.ErrorIs(t, err, queries.ErrOrderNumberIsInvalid)

		_, err = queries.NewGetOrderStatusQuery(-1)
		require.ErrorIs(t, err, queries.ErrOrderNumberIsInvalid)
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		var query queries.GetOrderStatusQuery

		err := query.Validate()
		require.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
	})
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetActiveOrdersQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		var query queries.GetActiveOrdersQuery

		err := query.Validate()
		require.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
	})
}

func TestNewGetStatusHistoryQuery(t *testing.T) {
	t.Run("should create query with positive order number", func(t *testing.T) {
		query, err := queries.NewGetStatusHistoryQuery(42)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(42), query.OrderNumber())
	})

	t.Run("should reject non-positive order numbers", func(t *testing.T) {
		_, err := queries.NewGetStatusHistoryQuery(0)
		require.ErrorIs(t, err, queries.ErrOrderNumberIsInvalid)
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		var query queries.GetStatusHistoryQuery

		err := query.Validate()
		require.ErrorIs(t, err, queries.ErrGetStatusHistoryQueryIsNotConstructed)
	})
}
