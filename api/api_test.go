package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candydelivery/api"
)

func TestLoad_DocumentIsValid(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	for _, name := range []string{"CourierItem", "CourierUpdateRequest", "OrderItem",
		"CouriersImportRequest", "OrdersImportRequest", "OrdersAssignPostRequest", "OrdersCompletePostRequest"} {
		assert.Contains(t, doc.Components.Schemas, name)
	}
	assert.NotNil(t, doc.Paths.Find("/couriers/{courier_id}"))
}
