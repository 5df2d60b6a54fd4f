// internal/services/network_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/electronet/electronet-backend/internal/models"
	"github.com/electronet/electronet-backend/internal/utils"
)

type NetworkService struct {
	db *gorm.DB
}

func NewNetworkService(db *gorm.DB) *NetworkService {
	return &NetworkService{db: db}
}

// NodeRequest is the write shape for both create and update (full replace).
// Debt and hierarchy level are deliberately absent: the server computes the
// level and retains the stored debt, whatever the client sends.
type NodeRequest struct {
	Name        string      `json:"name" validate:"required,max=50"`
	Email       string      `json:"email" validate:"required,email"`
	Country     string      `json:"country" validate:"required,max=50"`
	City        string      `json:"city" validate:"required,max=50"`
	Street      string      `json:"street" validate:"required,max=50"`
	HouseNumber *int        `json:"house_number" validate:"required,gte=0"`
	NodeType    string      `json:"node_type" validate:"required,oneof=factory ie retail_network"`
	SupplierID  *uuid.UUID  `json:"supplier_id"`
	ProductIDs  []uuid.UUID `json:"products"`
}

type NodeListParams struct {
	utils.PaginationParams
	Country string
}

func (s *NetworkService) CreateNode(req *NodeRequest) (*models.NetworkNode, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	node := &models.NetworkNode{
		Name:        req.Name,
		Email:       req.Email,
		Country:     req.Country,
		City:        req.City,
		Street:      req.Street,
		HouseNumber: *req.HouseNumber,
		NodeType:    models.NodeType(req.NodeType),
		SupplierID:  req.SupplierID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		level, err := resolveHierarchyLevel(tx, uuid.Nil, node.NodeType, node.SupplierID)
		if err != nil {
			return err
		}
		node.HierarchyLevel = level

		if err := tx.Create(node).Error; err != nil {
			return fmt.Errorf("failed to create node: %w", err)
		}

		if req.ProductIDs != nil {
			return replaceNodeProducts(tx, node, req.ProductIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetNode(node.ID)
}

func (s *NetworkService) GetNode(id uuid.UUID) (*models.NetworkNode, error) {
	var node models.NetworkNode
	err := s.db.Preload("Supplier").Preload("Products").First(&node, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &node, nil
}

func (s *NetworkService) ListNodes(params NodeListParams) ([]models.NetworkNode, int64, error) {
	query := s.db.Model(&models.NetworkNode{})

	if params.Country != "" {
		query = query.Where("country = ?", params.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count nodes: %w", err)
	}

	var nodes []models.NetworkNode
	err := query.Preload("Supplier").Preload("Products").
		Order("id").
		Offset(params.Offset()).Limit(params.Limit).
		Find(&nodes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch nodes: %w", err)
	}

	return nodes, total, nil
}

// UpdateNode replaces every writable field. The stored debt and the derived
// hierarchy level survive the replace; the level is recomputed from the new
// type/supplier pair inside the same transaction as the persist.
func (s *NetworkService) UpdateNode(id uuid.UUID, req *NodeRequest) (*models.NetworkNode, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var node models.NetworkNode
		if err := tx.First(&node, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNodeNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		level, err := resolveHierarchyLevel(tx, node.ID, models.NodeType(req.NodeType), req.SupplierID)
		if err != nil {
			return err
		}

		node.Name = req.Name
		node.Email = req.Email
		node.Country = req.Country
		node.City = req.City
		node.Street = req.Street
		node.HouseNumber = *req.HouseNumber
		node.NodeType = models.NodeType(req.NodeType)
		node.SupplierID = req.SupplierID
		node.HierarchyLevel = level

		if err := tx.Save(&node).Error; err != nil {
			return fmt.Errorf("failed to update node: %w", err)
		}

		if req.ProductIDs != nil {
			return replaceNodeProducts(tx, &node, req.ProductIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetNode(id)
}

// DeleteNode removes the node together with every node that references it as
// supplier, directly or transitively, and all products supplied by any of
// them. The whole cascade commits or rolls back as one unit.
func (s *NetworkService) DeleteNode(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var node models.NetworkNode
		if err := tx.First(&node, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNodeNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		ids, err := collectDependentIDs(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM network_node_products WHERE network_node_id IN ? OR product_id IN (SELECT id FROM products WHERE supplier_id IN ?)",
			ids, ids,
		).Error; err != nil {
			return fmt.Errorf("failed to detach products: %w", err)
		}

		if err := tx.Where("supplier_id IN ?", ids).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to cascade products: %w", err)
		}

		if err := tx.Where("id IN ?", ids).Delete(&models.NetworkNode{}).Error; err != nil {
			return fmt.Errorf("failed to delete nodes: %w", err)
		}

		return nil
	})
}

// resolveHierarchyLevel derives the level stored on every node save:
// factories sit at 0, nodes supplied by a factory at 1, everything else at 2.
// The supplier chain is capped at these three tiers on purpose. Only the
// supplier's already-persisted level is consulted.
func resolveHierarchyLevel(tx *gorm.DB, nodeID uuid.UUID, nodeType models.NodeType, supplierID *uuid.UUID) (int, error) {
	if nodeType == models.NodeTypeFactory {
		// Level is fixed at 0 whatever the supplier, but a dangling link is
		// still a request fault.
		if supplierID != nil {
			if err := verifySupplierExists(tx, supplierID); err != nil {
				return 0, err
			}
			if err := checkSupplierCycle(tx, nodeID, *supplierID); err != nil {
				return 0, err
			}
		}
		return 0, nil
	}

	if supplierID == nil {
		return 0, ErrSupplierRequired
	}

	if err := checkSupplierCycle(tx, nodeID, *supplierID); err != nil {
		return 0, err
	}

	var supplier models.NetworkNode
	if err := tx.First(&supplier, "id = ?", *supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSupplierNotFound
		}
		return 0, fmt.Errorf("database error: %w", err)
	}

	if supplier.HierarchyLevel == 0 {
		return 1, nil
	}
	return 2, nil
}

// checkSupplierCycle walks the persisted supplier chain upward from the
// proposed supplier; reaching the node being saved means the link would close
// a cycle.
func checkSupplierCycle(tx *gorm.DB, nodeID uuid.UUID, supplierID uuid.UUID) error {
	if nodeID == uuid.Nil {
		// A node that is not persisted yet cannot appear in any chain.
		return nil
	}

	seen := map[uuid.UUID]bool{}
	current := &supplierID

	for current != nil {
		if *current == nodeID {
			return ErrSupplierCycle
		}
		if seen[*current] {
			return nil
		}
		seen[*current] = true

		var ancestor models.NetworkNode
		if err := tx.Select("id", "supplier_id").First(&ancestor, "id = ?", *current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // dangling link is reported as ErrSupplierNotFound later
			}
			return fmt.Errorf("database error: %w", err)
		}
		current = ancestor.SupplierID
	}

	return nil
}

func collectDependentIDs(tx *gorm.DB, rootID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{rootID}
	frontier := []uuid.UUID{rootID}
	seen := map[uuid.UUID]bool{rootID: true}

	for len(frontier) > 0 {
		var children []uuid.UUID
		if err := tx.Model(&models.NetworkNode{}).
			Where("supplier_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return nil, fmt.Errorf("failed to collect dependents: %w", err)
		}

		frontier = frontier[:0]
		for _, child := range children {
			if !seen[child] {
				seen[child] = true
				ids = append(ids, child)
				frontier = append(frontier, child)
			}
		}
	}

	return ids, nil
}

func replaceNodeProducts(tx *gorm.DB, node *models.NetworkNode, productIDs []uuid.UUID) error {
	products := []models.Product{}
	if len(productIDs) > 0 {
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return fmt.Errorf("failed to fetch products: %w", err)
		}
		if len(products) != len(uniqueIDs(productIDs)) {
			return ErrUnknownProduct
		}
	}

	if err := tx.Model(node).Association("Products").Replace(&products); err != nil {
		return fmt.Errorf("failed to replace products: %w", err)
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
