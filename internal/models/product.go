// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:50;not null"`
	Model       string     `json:"model" gorm:"size:50;not null"`
	ReleaseDate time.Time  `json:"release_date" gorm:"type:date;not null"`
	SupplierID  *uuid.UUID `json:"supplier_id" gorm:"type:uuid;index"`

	// Relationships
	Supplier *NetworkNode `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}
