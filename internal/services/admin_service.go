// internal/services/admin_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/electronet/electronet-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// NullifyDebt zeroes the debt of the selected nodes in a single batched
// UPDATE. It runs below the node save path, so no hierarchy recomputation is
// triggered, and it reports the number of rows affected.
func (s *AdminService) NullifyDebt(nodeIDs []uuid.UUID) (int64, error) {
	if len(nodeIDs) == 0 {
		return 0, nil
	}

	result := s.db.Model(&models.NetworkNode{}).
		Where("id IN ?", nodeIDs).
		Update("debt", decimal.New(0, -2))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to nullify debt: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// NullifyDebtMessage is the operator confirmation, singular or plural
// depending on the affected count.
func NullifyDebtMessage(updated int64) string {
	if updated == 1 {
		return "1 debt was successfully nullified."
	}
	return fmt.Sprintf("%d debts were successfully nullified.", updated)
}
