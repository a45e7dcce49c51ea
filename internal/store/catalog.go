package store

import "github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"

// CreateCategory inserts a new category.
func (s *Store) CreateCategory(category *model.Category) error {
	return s.db.Create(category).Error
}

// CategoryNameExists reports whether an active category already uses the name.
func (s *Store) CategoryNameExists(name string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Category{}).
		Where("name = ? AND status = ?", name, model.StatusActive).
		Count(&count).Error
	return count > 0, err
}

// ListCategories returns all active categories.
func (s *Store) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	err := s.db.Where("status = ?", model.StatusActive).Find(&categories).Error
	return categories, err
}

// ArchiveCategory soft-deletes a category.
func (s *Store) ArchiveCategory(id uint) error {
	return s.archive(&model.Category{}, id)
}

// CreateSupplier inserts a new supplier.
func (s *Store) CreateSupplier(supplier *model.Supplier) error {
	return s.db.Create(supplier).Error
}

// ListSuppliers returns all active suppliers.
func (s *Store) ListSuppliers() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := s.db.Where("status = ?", model.StatusActive).Find(&suppliers).Error
	return suppliers, err
}

// ArchiveSupplier soft-deletes a supplier.
func (s *Store) ArchiveSupplier(id uint) error {
	return s.archive(&model.Supplier{}, id)
}
