package queries_test

import (
	"testing"
	"time"

	"settlement/internal/core/application/usecases/queries"
	"settlement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := queries.NewGetOrderQuery(invalidID)

	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetPendingPayoutsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingPayoutsQuery()

	require.NoError(t, query.Validate())
}

func TestGetPendingPayoutsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingPayoutsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingPayoutsQueryIsNotConstructed)
}

func TestNewGetStaleTransitOrdersQuery_Valid(t *testing.T) {
	cutoff := time.Now().UTC().Add(-30 * time.Minute)

	query, err := queries.NewGetStaleTransitOrdersQuery(cutoff)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, cutoff, query.Cutoff())
}

func TestNewGetStaleTransitOrdersQuery_ZeroCutoff(t *testing.T) {
	_, err := queries.NewGetStaleTransitOrdersQuery(time.Time{})

	require.Error(t, err)
}

func TestGetStaleTransitOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStaleTransitOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStaleTransitOrdersQueryIsNotConstructed)
}
