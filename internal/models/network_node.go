// internal/models/network_node.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetworkNode is a single participant of the supplier network: a factory, an
// individual entrepreneur or a retail network. Its HierarchyLevel is derived
// on every save from the node type and the supplier's persisted level; Debt is
// read-only on the API write path and only mutated by the admin bulk reset.
type NetworkNode struct {
	BaseModel
	Name           string          `json:"name" gorm:"size:50;not null"`
	Email          string          `json:"email" gorm:"size:255;not null"`
	Country        string          `json:"country" gorm:"size:50;not null;index"`
	City           string          `json:"city" gorm:"size:50;not null"`
	Street         string          `json:"street" gorm:"size:50;not null"`
	HouseNumber    int             `json:"house_number" gorm:"not null"`
	NodeType       NodeType        `json:"node_type" gorm:"type:varchar(20);not null"`
	Debt           decimal.Decimal `json:"debt" gorm:"type:decimal(12,2);not null;default:0"`
	HierarchyLevel int             `json:"hierarchy_level" gorm:"not null;default:0"`
	SupplierID     *uuid.UUID      `json:"supplier_id" gorm:"type:uuid;index"`

	// Relationships
	Supplier *NetworkNode `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
	Products []Product    `json:"products" gorm:"many2many:network_node_products"`
}
