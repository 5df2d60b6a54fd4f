// internal/services/product_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electronet/electronet-backend/internal/utils"
)

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	products := NewProductService(db)

	factory, err := networks.CreateNode(nodeRequest("factory", "factory", nil))
	require.NoError(t, err)

	p, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
		SupplierID:  &factory.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "phone", p.Name)
	require.NotNil(t, p.Supplier)
	assert.Equal(t, factory.ID, p.Supplier.ID)
	assert.Equal(t, "2024-01-15", p.ReleaseDate.Format("2006-01-02"))
}

func TestCreateProductUnknownSupplier(t *testing.T) {
	products := NewProductService(setupTestDB(t))

	missing := uuid.New()
	_, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
		SupplierID:  &missing,
	})
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestCreateProductBadDate(t *testing.T) {
	products := NewProductService(setupTestDB(t))

	_, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "15.01.2024",
	})
	assert.Error(t, err)

	// The parse guard classifies as a request fault as well.
	assert.True(t, IsValidation(ErrBadReleaseDate))
}

func TestUpdateProductFullReplace(t *testing.T) {
	db := setupTestDB(t)
	networks := NewNetworkService(db)
	products := NewProductService(db)

	factory, err := networks.CreateNode(nodeRequest("factory", "factory", nil))
	require.NoError(t, err)

	p, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
		SupplierID:  &factory.ID,
	})
	require.NoError(t, err)

	// Omitting supplier in the replacement clears the link.
	updated, err := products.UpdateProduct(p.ID, &ProductRequest{
		Name:        "phone-pro",
		Model:       "x2",
		ReleaseDate: "2025-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "phone-pro", updated.Name)
	assert.Equal(t, "x2", updated.Model)
	assert.Nil(t, updated.SupplierID)
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductService(db)

	p, err := products.CreateProduct(&ProductRequest{
		Name:        "phone",
		Model:       "x1",
		ReleaseDate: "2024-01-15",
	})
	require.NoError(t, err)

	require.NoError(t, products.DeleteProduct(p.ID))
	_, err = products.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, products.DeleteProduct(p.ID), ErrProductNotFound)
}

func TestListProductsPaginated(t *testing.T) {
	db := setupTestDB(t)
	products := NewProductService(db)

	for i := 0; i < 5; i++ {
		_, err := products.CreateProduct(&ProductRequest{
			Name:        "phone",
			Model:       "x1",
			ReleaseDate: "2024-01-15",
		})
		require.NoError(t, err)
	}

	page, total, err := products.ListProducts(utils.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)
}
