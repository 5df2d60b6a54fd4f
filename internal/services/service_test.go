// internal/services/service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/electronet/electronet-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see a different in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NetworkNode{},
		&models.Product{},
	))

	return db
}

func intPtr(i int) *int {
	return &i
}

func nodeRequest(name, nodeType string, supplierID *uuid.UUID) *NodeRequest {
	return &NodeRequest{
		Name:        name,
		Email:       name + "@example.com",
		Country:     "Latvia",
		City:        "Riga",
		Street:      "Brivibas",
		HouseNumber: intPtr(1),
		NodeType:    nodeType,
		SupplierID:  supplierID,
	}
}
