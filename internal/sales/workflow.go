// Package sales orchestrates multi-line invoices against the stock engine.
package sales

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
)

// ErrEmptyInvoice reports an invoice with no line items.
var ErrEmptyInvoice = errors.New("invoice has no line items")

// Line is one requested product line of a sale.
type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateInput carries everything needed to create an invoice.
type CreateInput struct {
	CustomerName    string
	CustomerPhone   string
	PaymentMode     string
	CreatedByUserID uint
	Lines           []Line
}

// Workflow creates and reads sale invoices.
type Workflow struct {
	store  *store.Store
	engine *stock.Engine
}

// NewWorkflow creates a Workflow over the store and stock engine.
func NewWorkflow(st *store.Store, engine *stock.Engine) *Workflow {
	return &Workflow{store: st, engine: engine}
}

// Create builds an invoice inside one transaction: the header, every line
// item and every stock movement commit together or the whole sale is rolled
// back. Each line's unit price is a snapshot of the product's selling price
// at sale time.
func (w *Workflow) Create(input CreateInput) (*model.SaleInvoice, error) {
	if len(input.Lines) == 0 {
		return nil, ErrEmptyInvoice
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, stock.ErrInvalidQuantity
		}
	}

	var invoice model.SaleInvoice
	err := w.store.Transaction(func(tx *gorm.DB) error {
		// Validate every line before mutating any stock. The engine's
		// guarded decrement still protects against concurrent sales that
		// pass this check at the same time.
		products := make([]model.Product, 0, len(input.Lines))
		for _, line := range input.Lines {
			var product model.Product
			result := tx.Where("id = ? AND status = ?", line.ProductID, model.StatusActive).First(&product)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", line.ProductID, stock.ErrProductNotFound)
				}
				return result.Error
			}
			if product.CurrentStock < line.Quantity {
				return fmt.Errorf("%w for %s", stock.ErrInsufficientStock, product.Name)
			}
			products = append(products, product)
		}

		invoice = model.SaleInvoice{
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			PaymentMode:     input.PaymentMode,
			CreatedByUserID: input.CreatedByUserID,
			Status:          model.StatusActive,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		total := 0.0
		for i, line := range input.Lines {
			product := products[i]
			refID := invoice.ID
			_, err := w.engine.ApplyTx(tx, stock.Adjustment{
				ProductID:     line.ProductID,
				Quantity:      line.Quantity,
				Direction:     model.MovementOut,
				ReferenceType: model.ReferenceSale,
				ReferenceID:   &refID,
			})
			if err != nil {
				if errors.Is(err, stock.ErrInsufficientStock) {
					return fmt.Errorf("%w for %s", stock.ErrInsufficientStock, product.Name)
				}
				return err
			}

			lineTotal := product.SellingPrice * float64(line.Quantity)
			item := model.SaleItem{
				InvoiceID:   invoice.ID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
				UnitPrice:   product.SellingPrice,
				TotalAmount: lineTotal,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create sale item: %w", err)
			}
			total += lineTotal
		}

		invoice.TotalAmount = total
		return tx.Model(&model.SaleInvoice{}).
			Where("id = ?", invoice.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Get returns an active invoice with its joined lines; store.ErrNotFound for
// unknown or archived invoices.
func (w *Workflow) Get(id uint) (*model.SaleInvoice, []store.InvoiceLine, error) {
	return w.store.GetInvoice(id)
}

// List returns active invoice headers, newest first.
func (w *Workflow) List() ([]model.SaleInvoice, error) {
	return w.store.ListInvoices()
}

// Archive retracts an invoice from listings and reports. Stock consumed by
// the sale is not restored.
func (w *Workflow) Archive(id uint) error {
	return w.store.ArchiveInvoice(id)
}
