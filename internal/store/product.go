package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
)

// CreateProduct inserts a new product. Stock starts at zero and only the
// stock engine changes it afterwards.
func (s *Store) CreateProduct(product *model.Product) error {
	return s.db.Create(product).Error
}

// ProductSKUExists reports whether any product already uses the SKU.
// Archived products keep their SKU reserved.
func (s *Store) ProductSKUExists(sku string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Product{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

// ListProducts returns all active products with their category loaded.
func (s *Store) ListProducts() ([]model.Product, error) {
	var products []model.Product
	err := s.db.Preload("Category").
		Where("status = ?", model.StatusActive).
		Find(&products).Error
	return products, err
}

// GetProduct returns an active product by id.
func (s *Store) GetProduct(id uint) (*model.Product, error) {
	var product model.Product
	result := s.db.Preload("Category").
		Where("id = ? AND status = ?", id, model.StatusActive).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &product, nil
}

// ArchiveProduct soft-deletes a product.
func (s *Store) ArchiveProduct(id uint) error {
	return s.archive(&model.Product{}, id)
}

// LowStockProducts returns active products at or below their minimum stock.
func (s *Store) LowStockProducts() ([]model.Product, error) {
	var products []model.Product
	err := s.db.Preload("Category").
		Where("status = ? AND current_stock <= min_stock", model.StatusActive).
		Find(&products).Error
	return products, err
}

// MovementsForProduct returns the full movement history of a product,
// oldest first.
func (s *Store) MovementsForProduct(productID uint) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := s.db.Where("product_id = ?", productID).
		Order("id asc").
		Find(&movements).Error
	return movements, err
}
