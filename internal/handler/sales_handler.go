package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/middleware"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/sales"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/logger"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/prometheus"
)

// InvoiceRequest defines the structure for invoice creation requests
type InvoiceRequest struct {
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	PaymentMode   string       `json:"payment_mode"` // Cash / UPI / Card / Other
	Items         []sales.Line `json:"items"`
}

// CreateInvoice creates a sale invoice with all its lines and stock
// movements in one atomic operation
func (h *Handler) CreateInvoice(c echo.Context) error {
	log := logger.FromContext(c)

	var req InvoiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		log.Warn("Missing user id in context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	log.Info("Creating invoice",
		zap.String("customer_name", req.CustomerName),
		zap.Int("line_count", len(req.Items)))

	invoice, err := h.Sales.Create(sales.CreateInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		PaymentMode:     req.PaymentMode,
		CreatedByUserID: userID,
		Lines:           req.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrEmptyInvoice):
			prometheus.RecordInvoiceFailure("empty_invoice")
			log.Warn("Invoice with no items rejected")
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "No items added"})
		case errors.Is(err, stock.ErrProductNotFound):
			prometheus.RecordInvoiceFailure("product_not_found")
			log.Warn("Invoice references unknown product", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid or inactive product"})
		case errors.Is(err, stock.ErrInsufficientStock):
			prometheus.RecordInvoiceFailure("insufficient_stock")
			log.Warn("Invoice rejected for insufficient stock", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case errors.Is(err, stock.ErrInvalidQuantity):
			prometheus.RecordInvoiceFailure("invalid_quantity")
			log.Warn("Invoice with invalid quantity rejected")
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Quantity must be a positive integer"})
		default:
			log.Error("Failed to create invoice", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create invoice"})
		}
	}

	prometheus.InvoicesCreatedCounter.Inc()
	log.Info("Invoice created successfully",
		zap.Uint("invoice_id", invoice.ID),
		zap.Float64("total_amount", invoice.TotalAmount))
	return c.JSON(http.StatusCreated, echo.Map{
		"success":    true,
		"invoice_id": invoice.ID,
		"total":      invoice.TotalAmount,
	})
}

// ListInvoices returns active invoice headers, newest first
func (h *Handler) ListInvoices(c echo.Context) error {
	log := logger.FromContext(c)

	invoices, err := h.Sales.List()
	if err != nil {
		log.Error("Failed to list invoices", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve invoices",
		})
	}

	log.Info("Invoices retrieved successfully", zap.Int("count", len(invoices)))
	return c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns one invoice with its joined line details
func (h *Handler) GetInvoice(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	invoice, lines, err := h.Sales.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Invoice not found", zap.Uint("invoice_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Invoice not found"})
		}
		log.Error("Failed to retrieve invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve invoice"})
	}

	log.Info("Invoice retrieved successfully",
		zap.Uint("invoice_id", invoice.ID),
		zap.Int("line_count", len(lines)))
	return c.JSON(http.StatusOK, echo.Map{
		"id":             invoice.ID,
		"customer_name":  invoice.CustomerName,
		"customer_phone": invoice.CustomerPhone,
		"created_at":     invoice.CreatedAt,
		"total_amount":   invoice.TotalAmount,
		"payment_mode":   invoice.PaymentMode,
		"items":          lines,
	})
}

// DeleteInvoice archives an invoice. Stock consumed by its lines is not
// restored.
func (h *Handler) DeleteInvoice(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	log.Info("Archiving invoice", zap.Uint("invoice_id", id))

	if err := h.Sales.Archive(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Invoice not found for deletion", zap.Uint("invoice_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Invoice not found"})
		}
		log.Error("Failed to archive invoice", zap.Uint("invoice_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete invoice"})
	}

	log.Info("Invoice archived successfully", zap.Uint("invoice_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
