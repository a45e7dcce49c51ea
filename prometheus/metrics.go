package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	LoginAttemptsCounter prometheus.Counter
	LoginErrorsCounter   prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Stock metrics
	StockAdjustmentsCounter prometheus.CounterVec

	// Sales metrics
	InvoicesCreatedCounter prometheus.Counter
	InvoiceFailuresCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LoginAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	LoginErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_login_errors_total",
			Help: "Total number of failed logins",
		},
		[]string{"reason"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	StockAdjustmentsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stock_adjustments_total",
			Help: "Total number of stock adjustments",
		},
		[]string{"direction", "outcome"},
	)

	InvoicesCreatedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_invoices_created_total",
			Help: "Total number of sale invoices created",
		},
	)

	InvoiceFailuresCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_invoice_failures_total",
			Help: "Total number of rejected invoice creations",
		},
		[]string{"reason"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordLoginError increments the counter for failed logins
func RecordLoginError(reason string) {
	LoginErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordStockAdjustment increments the counter for stock adjustments
func RecordStockAdjustment(direction string, outcome string) {
	StockAdjustmentsCounter.WithLabelValues(direction, outcome).Inc()
}

// RecordInvoiceFailure increments the counter for rejected invoices
func RecordInvoiceFailure(reason string) {
	InvoiceFailuresCounter.WithLabelValues(reason).Inc()
}
