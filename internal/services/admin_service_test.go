// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronet/electronet-backend/internal/models"
)

func TestNullifyDebt(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	admin := NewAdminService(db)

	var ids []uuid.UUID
	for _, debt := range []float64{50.00, 10.00, 99.99} {
		node, err := networks.CreateNode(nodeRequest("factory", "factory", nil))
		require.NoError(t, err)
		require.NoError(t, db.Model(&models.NetworkNode{}).
			Where("id = ?", node.ID).
			Update("debt", decimal.NewFromFloat(debt)).Error)
		ids = append(ids, node.ID)
	}

	updated, err := admin.NullifyDebt(ids[:2])
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	for _, id := range ids[:2] {
		node, err := networks.GetNode(id)
		require.NoError(t, err)
		assert.True(t, node.Debt.IsZero(), "debt should be 0.00, got %s", node.Debt)
	}

	// Unselected node keeps its debt.
	node, err := networks.GetNode(ids[2])
	require.NoError(t, err)
	assert.True(t, node.Debt.Equal(decimal.NewFromFloat(99.99)))
}

func TestNullifyDebtEmptySelection(t *testing.T) {
	db := setupTestDB(t)
	admin := NewAdminService(db)

	updated, err := admin.NullifyDebt(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)
}

func TestNullifyDebtMessage(t *testing.T) {
	assert.Equal(t, "1 debt was successfully nullified.", NullifyDebtMessage(1))
	assert.Equal(t, "2 debts were successfully nullified.", NullifyDebtMessage(2))
	assert.Equal(t, "0 debts were successfully nullified.", NullifyDebtMessage(0))
}

func TestNullifyDebtDoesNotTouchLevels(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	admin := NewAdminService(db)

	factory, err := networks.CreateNode(nodeRequest("factory", "factory", nil))
	require.NoError(t, err)
	ie, err := networks.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)

	_, err = admin.NullifyDebt([]uuid.UUID{factory.ID, ie.ID})
	require.NoError(t, err)

	reloaded, err := networks.GetNode(ie.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.HierarchyLevel)
}
