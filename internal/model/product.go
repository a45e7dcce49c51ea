package model

import "time"

// Product represents the product master data. CurrentStock is only ever
// mutated through the stock engine so every change has a matching movement.
type Product struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Name           string    `json:"name" gorm:"type:varchar(150);not null"`
	SKU            string    `json:"sku" gorm:"type:varchar(100);unique;not null"`
	CategoryID     *uint     `json:"category_id" gorm:"index"`
	Brand          string    `json:"brand" gorm:"type:varchar(100)"`
	Model          string    `json:"model" gorm:"type:varchar(100)"`
	PurchasePrice  float64   `json:"purchase_price" gorm:"default:0"`
	SellingPrice   float64   `json:"selling_price" gorm:"default:0"`
	TaxPercent     float64   `json:"tax_percent" gorm:"default:0"`
	WarrantyMonths int       `json:"warranty_months" gorm:"default:0"`
	MinStock       int       `json:"min_stock" gorm:"default:0"`
	CurrentStock   int       `json:"current_stock" gorm:"default:0;check:current_stock >= 0"`
	Status         Status    `json:"status" gorm:"type:varchar(10);index;not null;default:'active'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
