package report

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
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/database"
)

var testDBSeq int64

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:report_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	require.NoError(t, database.Migrate(db))
	st := store.New(db)
	return NewService(st), st
}

func seedInvoice(t *testing.T, st *store.Store, createdAt time.Time, total float64, status model.Status) {
	t.Helper()
	invoice := &model.SaleInvoice{
		TotalAmount: total,
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, st.DB().Create(invoice).Error)
}

func TestDailySalesSkipsEmptyDays(t *testing.T) {
	svc, st := newTestService(t)
	now := time.Now()

	// Sales today and two days ago, nothing yesterday.
	seedInvoice(t, st, now.AddDate(0, 0, -2), 100, model.StatusActive)
	seedInvoice(t, st, now.AddDate(0, 0, -2), 50, model.StatusActive)
	seedInvoice(t, st, now, 200, model.StatusActive)

	buckets, err := svc.DailySales(3)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, now.AddDate(0, 0, -2).Format("2006-01-02"), buckets[0].Date)
	assert.Equal(t, 150.0, buckets[0].TotalAmount)
	assert.Equal(t, now.Format("2006-01-02"), buckets[1].Date)
	assert.Equal(t, 200.0, buckets[1].TotalAmount)
}

func TestDailySalesWindowExcludesOlderInvoices(t *testing.T) {
	svc, st := newTestService(t)
	now := time.Now()

	seedInvoice(t, st, now.AddDate(0, 0, -10), 999, model.StatusActive)
	seedInvoice(t, st, now, 80, model.StatusActive)

	buckets, err := svc.DailySales(3)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, 80.0, buckets[0].TotalAmount)
}

func TestDailySalesIgnoresArchivedInvoices(t *testing.T) {
	svc, st := newTestService(t)
	now := time.Now()

	seedInvoice(t, st, now, 100, model.StatusActive)
	seedInvoice(t, st, now, 400, model.StatusArchived)

	buckets, err := svc.DailySales(1)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, 100.0, buckets[0].TotalAmount)
}

func TestMonthlySalesBucketsByCalendarMonth(t *testing.T) {
	svc, st := newTestService(t)

	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	feb := time.Date(2026, 2, 3, 9, 0, 0, 0, time.Local)
	seedInvoice(t, st, jan, 100, model.StatusActive)
	seedInvoice(t, st, jan.AddDate(0, 0, 5), 60, model.StatusActive)
	seedInvoice(t, st, feb, 45, model.StatusActive)

	buckets, err := svc.MonthlySales()
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-01", buckets[0].Month)
	assert.Equal(t, 160.0, buckets[0].TotalAmount)
	assert.Equal(t, "2026-02", buckets[1].Month)
	assert.Equal(t, 45.0, buckets[1].TotalAmount)
}

func TestDailySalesEmptyHistory(t *testing.T) {
	svc, _ := newTestService(t)

	buckets, err := svc.DailySales(0)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}
