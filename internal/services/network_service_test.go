// internal/services/network_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronet/electronet-backend/internal/models"
	"github.com/electronet/electronet-backend/internal/utils"
)

func TestCreateAssignsIdentifier(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	a, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)

	b, err := svc.CreateNode(nodeRequest("factory-b", "factory", nil))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFactoryLevelIsZero(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	assert.Equal(t, 0, factory.HierarchyLevel)
	assert.True(t, factory.Debt.IsZero())
}

func TestFactoryIgnoresSupplierForLevel(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	a, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)

	b, err := svc.CreateNode(nodeRequest("factory-b", "factory", &a.ID))
	require.NoError(t, err)
	assert.Equal(t, 0, b.HierarchyLevel)
}

func TestLevelOneBelowFactory(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)

	ie, err := svc.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)
	assert.Equal(t, 1, ie.HierarchyLevel)
}

func TestLevelTwoBelowNonFactory(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	ie, err := svc.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)

	retail, err := svc.CreateNode(nodeRequest("retail", "retail_network", &ie.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, retail.HierarchyLevel)

	// The hierarchy is flattened at three tiers: a node below a level-2
	// supplier still lands on level 2.
	deep, err := svc.CreateNode(nodeRequest("deep", "retail_network", &retail.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, deep.HierarchyLevel)
}

func TestNonFactoryRequiresSupplier(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	_, err := svc.CreateNode(nodeRequest("reseller", "ie", nil))
	assert.ErrorIs(t, err, ErrSupplierRequired)
}

func TestUnknownSupplierRejected(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	missing := uuid.New()
	_, err := svc.CreateNode(nodeRequest("reseller", "ie", &missing))
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestSupplierCycleRejected(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	ie, err := svc.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)
	retail, err := svc.CreateNode(nodeRequest("retail", "retail_network", &ie.ID))
	require.NoError(t, err)

	// Direct self-reference.
	_, err = svc.UpdateNode(ie.ID, nodeRequest("reseller", "ie", &ie.ID))
	assert.ErrorIs(t, err, ErrSupplierCycle)

	// Transitive: ie -> retail -> ie.
	_, err = svc.UpdateNode(ie.ID, nodeRequest("reseller", "ie", &retail.ID))
	assert.ErrorIs(t, err, ErrSupplierCycle)
}

func TestUpdateRecomputesLevel(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	ie, err := svc.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)
	retail, err := svc.CreateNode(nodeRequest("retail", "retail_network", &factory.ID))
	require.NoError(t, err)
	require.Equal(t, 1, retail.HierarchyLevel)

	// Re-parenting under a level-1 supplier moves the node to level 2.
	updated, err := svc.UpdateNode(retail.ID, nodeRequest("retail", "retail_network", &ie.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.HierarchyLevel)
}

func TestUpdatePreservesDebt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNetworkService(db)

	factory, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)

	debt := decimal.NewFromFloat(150.75)
	require.NoError(t, db.Model(&models.NetworkNode{}).
		Where("id = ?", factory.ID).
		Update("debt", debt).Error)

	updated, err := svc.UpdateNode(factory.ID, nodeRequest("factory-renamed", "factory", nil))
	require.NoError(t, err)
	assert.Equal(t, "factory-renamed", updated.Name)
	assert.True(t, updated.Debt.Equal(debt), "full-replace update must not touch debt, got %s", updated.Debt)
}

func TestDeleteCascadesTransitively(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	products := NewProductService(db)

	factory, err := networks.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	ie, err := networks.CreateNode(nodeRequest("reseller", "ie", &factory.ID))
	require.NoError(t, err)
	retail, err := networks.CreateNode(nodeRequest("retail", "retail_network", &ie.ID))
	require.NoError(t, err)

	other, err := networks.CreateNode(nodeRequest("factory-b", "factory", nil))
	require.NoError(t, err)

	owned, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
		SupplierID:  &retail.ID,
	})
	require.NoError(t, err)

	kept, err := products.CreateProduct(&ProductRequest{
		Name:        "tablet",
		Model:       "t9",
		ReleaseDate: "2024-06-01",
		SupplierID:  &other.ID,
	})
	require.NoError(t, err)

	require.NoError(t, networks.DeleteNode(factory.ID))

	for _, id := range []uuid.UUID{factory.ID, ie.ID, retail.ID} {
		_, err := networks.GetNode(id)
		assert.ErrorIs(t, err, ErrNodeNotFound)
	}

	_, err = products.GetProduct(owned.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Unrelated branch survives.
	_, err = networks.GetNode(other.ID)
	assert.NoError(t, err)
	_, err = products.GetProduct(kept.ID)
	assert.NoError(t, err)
}

func TestDeleteMissingNode(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))
	assert.ErrorIs(t, svc.DeleteNode(uuid.New()), ErrNodeNotFound)
}

func TestNodeProductsSetSemantics(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	products := NewProductService(db)

	factory, err := networks.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)

	p, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
	})
	require.NoError(t, err)

	req := nodeRequest("factory-a", "factory", nil)
	req.ProductIDs = []uuid.UUID{p.ID, p.ID} // duplicates collapse
	node, err := networks.UpdateNode(factory.ID, req)
	require.NoError(t, err)
	require.Len(t, node.Products, 1)
	assert.Equal(t, p.ID, node.Products[0].ID)

	// Unknown id in the set fails the whole write.
	req.ProductIDs = []uuid.UUID{p.ID, uuid.New()}
	_, err = networks.UpdateNode(factory.ID, req)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestListNodesCountryFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNetworkService(db)

	for i := 0; i < 3; i++ {
		req := nodeRequest("factory", "factory", nil)
		if i == 1 {
			req.Country = "Estonia"
		}
		_, err := svc.CreateNode(req)
		require.NoError(t, err)
	}

	all, total, err := svc.ListNodes(NodeListParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	filtered, total, err := svc.ListNodes(NodeListParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
		Country:          "Estonia",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Estonia", filtered[0].Country)

	// Page size bounds the result slice, count stays the total.
	page, total, err := svc.ListNodes(NodeListParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 2)
}

func TestCreationTimeSetOnce(t *testing.T) {
	svc := NewNetworkService(setupTestDB(t))

	node, err := svc.CreateNode(nodeRequest("factory-a", "factory", nil))
	require.NoError(t, err)
	created := node.CreatedAt
	require.False(t, created.IsZero())

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.UpdateNode(node.ID, nodeRequest("factory-b", "factory", nil))
	require.NoError(t, err)
	assert.True(t, updated.CreatedAt.Equal(created))
}
