package store

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/database"
)

var testDBSeq int64

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, database.Migrate(db))
	return New(db)
}

func TestProductRoundTrip(t *testing.T) {
	st := newTestStore(t)

	product := &model.Product{
		Name:         "Ceiling Fan",
		SKU:          "FAN-001",
		SellingPrice: 1450,
		Status:       model.StatusActive,
	}
	require.NoError(t, st.CreateProduct(product))

	products, err := st.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "FAN-001", products[0].SKU)
	assert.Equal(t, "Ceiling Fan", products[0].Name)
	assert.Zero(t, products[0].CurrentStock)

	// Listing twice with no writes in between yields identical results.
	again, err := st.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, products, again)
}

func TestArchivedProductsExcludedFromListings(t *testing.T) {
	st := newTestStore(t)

	keep := &model.Product{Name: "Keep", SKU: "KEEP-1", Status: model.StatusActive}
	drop := &model.Product{Name: "Drop", SKU: "DROP-1", Status: model.StatusActive}
	require.NoError(t, st.CreateProduct(keep))
	require.NoError(t, st.CreateProduct(drop))
	require.NoError(t, st.ArchiveProduct(drop.ID))

	products, err := st.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "KEEP-1", products[0].SKU)

	_, err = st.GetProduct(drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The archived row still exists for historical references.
	exists, err := st.ProductSKUExists("DROP-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLowStockBoundary(t *testing.T) {
	st := newTestStore(t)

	cases := []struct {
		sku      string
		current  int
		min      int
		status   model.Status
		expected bool
	}{
		{"LOW-BELOW", 2, 5, model.StatusActive, true},
		{"LOW-EQUAL", 5, 5, model.StatusActive, true},
		{"LOW-ABOVE", 7, 5, model.StatusActive, false},
		{"LOW-ARCH", 0, 5, model.StatusArchived, false},
	}
	for _, tc := range cases {
		require.NoError(t, st.CreateProduct(&model.Product{
			Name:         tc.sku,
			SKU:          tc.sku,
			CurrentStock: tc.current,
			MinStock:     tc.min,
			Status:       tc.status,
		}))
	}

	low, err := st.LowStockProducts()
	require.NoError(t, err)

	got := map[string]bool{}
	for _, p := range low {
		got[p.SKU] = true
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, got[tc.sku], tc.sku)
	}
}

func TestArchiveCategoryAndSupplier(t *testing.T) {
	st := newTestStore(t)

	category := &model.Category{Name: "Wiring", Status: model.StatusActive}
	require.NoError(t, st.CreateCategory(category))
	supplier := &model.Supplier{Name: "Acme Traders", Status: model.StatusActive}
	require.NoError(t, st.CreateSupplier(supplier))

	require.NoError(t, st.ArchiveCategory(category.ID))
	require.NoError(t, st.ArchiveSupplier(supplier.ID))

	categories, err := st.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
	suppliers, err := st.ListSuppliers()
	require.NoError(t, err)
	assert.Empty(t, suppliers)

	// Archiving twice or archiving the unknown reports not found.
	assert.ErrorIs(t, st.ArchiveCategory(category.ID), ErrNotFound)
	assert.ErrorIs(t, st.ArchiveSupplier(9999), ErrNotFound)
}

func TestSeedDefaultUsers(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.SeedDefaultUsers())

	admin, err := st.UserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	staff, err := st.UserByUsername("staff")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, staff.Role)

	// Seeding again is a no-op once users exist.
	require.NoError(t, st.SeedDefaultUsers())
	var count int64
	require.NoError(t, st.DB().Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	_, err = st.UserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
