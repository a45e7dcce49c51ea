package model

import "time"

// Category represents a product category
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(120);unique;not null"`
	Description string    `json:"description" gorm:"type:varchar(255)"`
	Status      Status    `json:"status" gorm:"type:varchar(10);index;not null;default:'active'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Supplier represents a goods supplier
type Supplier struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(150);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)"`
	Email     string    `json:"email" gorm:"type:varchar(120)"`
	GSTIN     string    `json:"gstin" gorm:"type:varchar(30)"`
	Address   string    `json:"address" gorm:"type:varchar(255)"`
	Status    Status    `json:"status" gorm:"type:varchar(10);index;not null;default:'active'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
