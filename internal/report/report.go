// Package report aggregates invoice totals into calendar buckets.
package report

import (
	"time"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
)

// DefaultDailyWindow is the daily report window when none is requested.
const DefaultDailyWindow = 30

// DailyBucket is one day's sales total.
type DailyBucket struct {
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
}

// MonthlyBucket is one calendar month's sales total.
type MonthlyBucket struct {
	Month       string  `json:"month"`
	TotalAmount float64 `json:"total_amount"`
}

// Service builds sales reports from the ledger store.
type Service struct {
	store *store.Store
}

// NewService creates a report Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// DailySales sums active invoice totals per day over the last `days` days
// including today, ascending. Days without sales are omitted. Bucketing is
// done here rather than in SQL so the grouping behaves identically on every
// supported database driver.
func (s *Service) DailySales(days int) ([]DailyBucket, error) {
	if days <= 0 {
		days = DefaultDailyWindow
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))

	invoices, err := s.store.InvoicesSince(start)
	if err != nil {
		return nil, err
	}

	buckets := []DailyBucket{}
	index := map[string]int{}
	for _, inv := range invoices {
		day := inv.CreatedAt.Format("2006-01-02")
		if i, ok := index[day]; ok {
			buckets[i].TotalAmount += inv.TotalAmount
			continue
		}
		index[day] = len(buckets)
		buckets = append(buckets, DailyBucket{Date: day, TotalAmount: inv.TotalAmount})
	}
	return buckets, nil
}

// MonthlySales sums active invoice totals per calendar month over the whole
// history, ascending.
func (s *Service) MonthlySales() ([]MonthlyBucket, error) {
	invoices, err := s.store.InvoicesSince(time.Time{})
	if err != nil {
		return nil, err
	}

	buckets := []MonthlyBucket{}
	index := map[string]int{}
	for _, inv := range invoices {
		month := inv.CreatedAt.Format("2006-01")
		if i, ok := index[month]; ok {
			buckets[i].TotalAmount += inv.TotalAmount
			continue
		}
		index[month] = len(buckets)
		buckets = append(buckets, MonthlyBucket{Month: month, TotalAmount: inv.TotalAmount})
	}
	return buckets, nil
}
