// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/electronet/electronet-backend/internal/models"
	"github.com/electronet/electronet-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductRequest is the write shape for both create and update (full replace).
type ProductRequest struct {
	Name        string     `json:"name" validate:"required,max=50"`
	Model       string     `json:"model" validate:"required,max=50"`
	ReleaseDate string     `json:"release_date" validate:"required,datetime=2006-01-02"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
}

func (s *ProductService) CreateProduct(req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReleaseDate, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Model:       req.Model,
		ReleaseDate: releaseDate,
		SupplierID:  req.SupplierID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := verifySupplierExists(tx, req.SupplierID); err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(product.ID)
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Supplier").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := s.db.Preload("Supplier").
		Order("id").
		Offset(params.Offset()).Limit(params.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReleaseDate, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := verifySupplierExists(tx, req.SupplierID); err != nil {
			return err
		}

		product.Name = req.Name
		product.Model = req.Model
		product.ReleaseDate = releaseDate
		product.SupplierID = req.SupplierID

		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(id)
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Exec("DELETE FROM network_node_products WHERE product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach product: %w", err)
		}

		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

func verifySupplierExists(tx *gorm.DB, supplierID *uuid.UUID) error {
	if supplierID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&models.NetworkNode{}).Where("id = ?", *supplierID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
