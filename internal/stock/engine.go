// Package stock is the single choke point for stock mutation. Every change
// to a product's current stock goes through the engine, which appends the
// matching movement row in the same transaction.
package stock

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
)

var (
	// ErrProductNotFound reports a missing or archived product.
	ErrProductNotFound = errors.New("product not found or inactive")
	// ErrInsufficientStock reports an OUT adjustment larger than the
	// available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity reports a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Adjustment describes one stock change request.
type Adjustment struct {
	ProductID     uint
	Quantity      int
	Direction     model.MovementType
	ReferenceType string
	ReferenceID   *uint
}

// Engine applies stock adjustments atomically.
type Engine struct {
	store *store.Store
}

// NewEngine creates an Engine over the ledger store.
func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st}
}

// Adjust applies a single adjustment in its own transaction and returns the
// product with its updated stock. The stock change and the movement row
// commit together or not at all.
func (e *Engine) Adjust(adj Adjustment) (*model.Product, error) {
	var product *model.Product
	err := e.store.Transaction(func(tx *gorm.DB) error {
		p, err := e.ApplyTx(tx, adj)
		product = p
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ApplyTx applies an adjustment inside a transaction owned by the caller.
// The decrement is guarded by the stock level in the UPDATE itself, so two
// concurrent OUT adjustments can never overdraw a product regardless of
// what either transaction read beforehand.
func (e *Engine) ApplyTx(tx *gorm.DB, adj Adjustment) (*model.Product, error) {
	if adj.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if adj.Direction != model.MovementIn && adj.Direction != model.MovementOut {
		return nil, fmt.Errorf("unknown movement type %q", adj.Direction)
	}

	var product model.Product
	result := tx.Where("id = ? AND status = ?", adj.ProductID, model.StatusActive).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}

	switch adj.Direction {
	case model.MovementIn:
		result = tx.Model(&model.Product{}).
			Where("id = ?", adj.ProductID).
			UpdateColumn("current_stock", gorm.Expr("current_stock + ?", adj.Quantity))
		if result.Error != nil {
			return nil, result.Error
		}
		product.CurrentStock += adj.Quantity
	case model.MovementOut:
		result = tx.Model(&model.Product{}).
			Where("id = ? AND current_stock >= ?", adj.ProductID, adj.Quantity).
			UpdateColumn("current_stock", gorm.Expr("current_stock - ?", adj.Quantity))
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrInsufficientStock
		}
		product.CurrentStock -= adj.Quantity
	}

	movement := model.StockMovement{
		ProductID:     adj.ProductID,
		MovementType:  adj.Direction,
		Quantity:      adj.Quantity,
		ReferenceType: adj.ReferenceType,
		ReferenceID:   adj.ReferenceID,
	}
	if err := tx.Create(&movement).Error; err != nil {
		return nil, fmt.Errorf("failed to record stock movement: %w", err)
	}

	return &product, nil
}
