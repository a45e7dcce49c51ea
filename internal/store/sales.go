package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
)

// InvoiceLine is one line of an invoice joined with its product's catalog
// identity, as exposed on the invoice detail view.
type InvoiceLine struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalAmount float64 `json:"total"`
}

// ListInvoices returns active invoice headers, newest first.
func (s *Store) ListInvoices() ([]model.SaleInvoice, error) {
	var invoices []model.SaleInvoice
	err := s.db.Where("status = ?", model.StatusActive).
		Order("created_at desc").
		Find(&invoices).Error
	return invoices, err
}

// GetInvoice returns an active invoice header with its joined lines.
func (s *Store) GetInvoice(id uint) (*model.SaleInvoice, []InvoiceLine, error) {
	var invoice model.SaleInvoice
	result := s.db.Where("id = ? AND status = ?", id, model.StatusActive).First(&invoice)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, result.Error
	}

	var lines []InvoiceLine
	err := s.db.Table("sale_items").
		Select("sale_items.product_id, products.name as product_name, products.sku as product_sku, sale_items.quantity, sale_items.unit_price, sale_items.total_amount").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sale_items.invoice_id = ?", id).
		Order("sale_items.id asc").
		Scan(&lines).Error
	if err != nil {
		return nil, nil, err
	}
	return &invoice, lines, nil
}

// ArchiveInvoice soft-deletes an invoice. Stock consumed by its lines is not
// restored; corrections go through explicit IN adjustments.
func (s *Store) ArchiveInvoice(id uint) error {
	return s.archive(&model.SaleInvoice{}, id)
}

// InvoicesSince returns active invoices created at or after the cutoff,
// oldest first, as input for report bucketing. A zero cutoff returns the
// full history.
func (s *Store) InvoicesSince(cutoff time.Time) ([]model.SaleInvoice, error) {
	query := s.db.Where("status = ?", model.StatusActive)
	if !cutoff.IsZero() {
		query = query.Where("created_at >= ?", cutoff)
	}
	var invoices []model.SaleInvoice
	err := query.Order("created_at asc").Find(&invoices).Error
	return invoices, err
}
