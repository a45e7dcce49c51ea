package sales

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/database"
)

var testDBSeq int64

func newTestWorkflow(t *testing.T) (*Workflow, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:sales_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, database.Migrate(db))

	st := store.New(db)
	return NewWorkflow(st, stock.NewEngine(st)), st
}

func seedProduct(t *testing.T, st *store.Store, sku string, price float64, stockLevel int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:         "Product " + sku,
		SKU:          sku,
		SellingPrice: price,
		CurrentStock: stockLevel,
		Status:       model.StatusActive,
	}
	require.NoError(t, st.DB().Create(product).Error)
	return product
}

func TestCreateRejectsEmptyInvoice(t *testing.T) {
	w, _ := newTestWorkflow(t)

	_, err := w.Create(CreateInput{CustomerName: "Asha"})
	assert.ErrorIs(t, err, ErrEmptyInvoice)
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	w, st := newTestWorkflow(t)
	p1 := seedProduct(t, st, "SKU-A", 150, 10)
	p2 := seedProduct(t, st, "SKU-B", 40, 10)

	invoice, err := w.Create(CreateInput{
		CustomerName:    "Asha",
		PaymentMode:     "Cash",
		CreatedByUserID: 1,
		Lines: []Line{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0*2+40.0*3, invoice.TotalAmount)

	// Header total equals the sum of its items.
	var items []model.SaleItem
	require.NoError(t, st.DB().Where("invoice_id = ?", invoice.ID).Find(&items).Error)
	require.Len(t, items, 2)
	sum := 0.0
	for _, it := range items {
		sum += it.TotalAmount
	}
	assert.Equal(t, invoice.TotalAmount, sum)

	// Stock was drawn down through the engine, with SALE-referenced movements.
	for _, expect := range []struct {
		id    uint
		stock int
	}{{p1.ID, 8}, {p2.ID, 7}} {
		p, err := st.GetProduct(expect.id)
		require.NoError(t, err)
		assert.Equal(t, expect.stock, p.CurrentStock)

		movements, err := st.MovementsForProduct(expect.id)
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, model.MovementOut, movements[0].MovementType)
		assert.Equal(t, model.ReferenceSale, movements[0].ReferenceType)
		require.NotNil(t, movements[0].ReferenceID)
		assert.Equal(t, invoice.ID, *movements[0].ReferenceID)
	}
}

func TestCreateInvoiceRollsBackOnInsufficientStock(t *testing.T) {
	w, st := newTestWorkflow(t)
	p1 := seedProduct(t, st, "SKU-OK", 100, 10)
	p2 := seedProduct(t, st, "SKU-SHORT", 50, 1)

	_, err := w.Create(CreateInput{
		CreatedByUserID: 1,
		Lines: []Line{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 5},
		},
	})
	require.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Product SKU-SHORT")

	// Nothing committed: no invoice, no items, no movements, stock intact.
	var invoiceCount, itemCount, movementCount int64
	require.NoError(t, st.DB().Model(&model.SaleInvoice{}).Count(&invoiceCount).Error)
	require.NoError(t, st.DB().Model(&model.SaleItem{}).Count(&itemCount).Error)
	require.NoError(t, st.DB().Model(&model.StockMovement{}).Count(&movementCount).Error)
	assert.Zero(t, invoiceCount)
	assert.Zero(t, itemCount)
	assert.Zero(t, movementCount)

	p, err := st.GetProduct(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.CurrentStock)
}

func TestCreateInvoiceRejectsUnknownProduct(t *testing.T) {
	w, st := newTestWorkflow(t)
	p1 := seedProduct(t, st, "SKU-REAL", 100, 10)
	archived := seedProduct(t, st, "SKU-GONE", 100, 10)
	require.NoError(t, st.ArchiveProduct(archived.ID))

	for _, badID := range []uint{9999, archived.ID} {
		_, err := w.Create(CreateInput{
			Lines: []Line{
				{ProductID: p1.ID, Quantity: 1},
				{ProductID: badID, Quantity: 1},
			},
		})
		require.ErrorIs(t, err, stock.ErrProductNotFound)
	}

	p, err := st.GetProduct(p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.CurrentStock)
}

func TestCreateInvoiceRejectsNonPositiveQuantity(t *testing.T) {
	w, st := newTestWorkflow(t)
	p := seedProduct(t, st, "SKU-ZQ", 100, 10)

	_, err := w.Create(CreateInput{Lines: []Line{{ProductID: p.ID, Quantity: 0}}})
	assert.ErrorIs(t, err, stock.ErrInvalidQuantity)
}

func TestUnitPriceIsSnapshot(t *testing.T) {
	w, st := newTestWorkflow(t)
	p := seedProduct(t, st, "SKU-SNAP", 200, 10)

	invoice, err := w.Create(CreateInput{Lines: []Line{{ProductID: p.ID, Quantity: 1}}})
	require.NoError(t, err)

	// Reprice the product after the sale.
	require.NoError(t, st.DB().Model(&model.Product{}).
		Where("id = ?", p.ID).
		Update("selling_price", 500).Error)

	_, lines, err := w.Get(invoice.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 200.0, lines[0].UnitPrice)
	assert.Equal(t, 200.0, lines[0].TotalAmount)
}

func TestGetInvoiceJoinsProductDetails(t *testing.T) {
	w, st := newTestWorkflow(t)
	p := seedProduct(t, st, "SKU-JOIN", 75, 5)

	invoice, err := w.Create(CreateInput{
		CustomerName: "Ravi",
		Lines:        []Line{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	header, lines, err := w.Get(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", header.CustomerName)
	require.Len(t, lines, 1)
	assert.Equal(t, "Product SKU-JOIN", lines[0].ProductName)
	assert.Equal(t, "SKU-JOIN", lines[0].ProductSKU)
	assert.Equal(t, 2, lines[0].Quantity)

	_, _, err = w.Get(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestArchiveHidesInvoiceWithoutRestoringStock(t *testing.T) {
	w, st := newTestWorkflow(t)
	p := seedProduct(t, st, "SKU-VOID", 60, 10)

	invoice, err := w.Create(CreateInput{Lines: []Line{{ProductID: p.ID, Quantity: 4}}})
	require.NoError(t, err)
	require.NoError(t, w.Archive(invoice.ID))

	// Archived invoices disappear from reads and listings.
	_, _, err = w.Get(invoice.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	invoices, err := w.List()
	require.NoError(t, err)
	assert.Empty(t, invoices)

	// The sold stock stays gone.
	reloaded, err := st.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, reloaded.CurrentStock)

	assert.ErrorIs(t, w.Archive(invoice.ID), store.ErrNotFound)
}

func TestListInvoicesNewestFirst(t *testing.T) {
	w, st := newTestWorkflow(t)
	p := seedProduct(t, st, "SKU-LIST", 10, 100)

	first, err := w.Create(CreateInput{Lines: []Line{{ProductID: p.ID, Quantity: 1}}})
	require.NoError(t, err)
	second, err := w.Create(CreateInput{Lines: []Line{{ProductID: p.ID, Quantity: 2}}})
	require.NoError(t, err)

	// Force distinct timestamps; sqlite timestamps can collide inside one test.
	require.NoError(t, st.DB().Model(&model.SaleInvoice{}).
		Where("id = ?", first.ID).
		Update("created_at", first.CreatedAt.Add(-time.Second)).Error)

	invoices, err := w.List()
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)
}
