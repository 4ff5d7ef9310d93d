package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candydelivery/internal/core/application/usecases/queries"
	"candydelivery/internal/pkg/errs"
)

func TestNewGetCourierQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCourierQuery(2)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(2), query.CourierID())
}

func TestNewGetCourierQuery_NonPositiveID(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := queries.NewGetCourierQuery(id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestGetCourierQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCourierQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierQueryIsNotConstructed)
}

func TestNewGetCouriersWithPendingOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetCouriersWithPendingOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetCouriersWithPendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCouriersWithPendingOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCouriersWithPendingOrdersQueryIsNotConstructed)
}
