package model

import "time"

// SaleInvoice is the header of a sale. TotalAmount is finalized after all
// line items are computed and always equals the sum of its items' totals.
type SaleInvoice struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	CustomerName    string    `json:"customer_name" gorm:"type:varchar(150)"`
	CustomerPhone   string    `json:"customer_phone" gorm:"type:varchar(20)"`
	TotalAmount     float64   `json:"total_amount" gorm:"default:0"`
	PaymentMode     string    `json:"payment_mode" gorm:"type:varchar(20)"` // Cash / UPI / Card / Other
	CreatedByUserID uint      `json:"created_by_user_id" gorm:"index"`
	Status          Status    `json:"status" gorm:"type:varchar(10);index;not null;default:'active'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []SaleItem `json:"items,omitempty" gorm:"foreignKey:InvoiceID"`
}

// SaleItem is one product line of an invoice. UnitPrice is a snapshot of the
// product's selling price at sale time.
type SaleItem struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	InvoiceID   uint    `json:"invoice_id" gorm:"index;not null"`
	ProductID   uint    `json:"product_id" gorm:"index;not null"`
	Quantity    int     `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null"`
	TotalAmount float64 `json:"total_amount" gorm:"not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
