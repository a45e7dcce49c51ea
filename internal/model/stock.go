package model

import "time"

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// ReferenceSale marks movements produced by invoice creation.
const ReferenceSale = "SALE"

// StockMovement is the append-only audit trail for stock changes. Rows are
// never updated or deleted.
type StockMovement struct {
	ID            uint         `json:"id" gorm:"primarykey"`
	ProductID     uint         `json:"product_id" gorm:"index;not null"`
	MovementType  MovementType `json:"movement_type" gorm:"type:varchar(10);not null"`
	Quantity      int          `json:"quantity" gorm:"not null;check:quantity > 0"`
	ReferenceType string       `json:"reference_type,omitempty" gorm:"type:varchar(20)"`
	ReferenceID   *uint        `json:"reference_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
