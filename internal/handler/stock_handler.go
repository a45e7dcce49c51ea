package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/logger"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/prometheus"
)

// StockRequest defines the structure for manual stock adjustments
type StockRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// StockIn records goods received for a product
func (h *Handler) StockIn(c echo.Context) error {
	return h.adjustStock(c, model.MovementIn)
}

// StockOut records goods leaving outside of a sale
func (h *Handler) StockOut(c echo.Context) error {
	return h.adjustStock(c, model.MovementOut)
}

func (h *Handler) adjustStock(c echo.Context, direction model.MovementType) error {
	log := logger.FromContext(c)

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Adjusting stock",
		zap.Uint("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
		zap.String("direction", string(direction)))

	product, err := h.Stock.Adjust(stock.Adjustment{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Direction: direction,
	})
	if err != nil {
		prometheus.RecordStockAdjustment(string(direction), "rejected")
		switch {
		case errors.Is(err, stock.ErrProductNotFound):
			log.Warn("Product not found for adjustment", zap.Uint("product_id", req.ProductID))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Product not found or inactive",
			})
		case errors.Is(err, stock.ErrInsufficientStock):
			log.Warn("Insufficient stock for adjustment",
				zap.Uint("product_id", req.ProductID),
				zap.Int("quantity", req.Quantity))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Insufficient stock",
			})
		case errors.Is(err, stock.ErrInvalidQuantity):
			log.Warn("Invalid adjustment quantity", zap.Int("quantity", req.Quantity))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"message": "Quantity must be a positive integer",
			})
		default:
			log.Error("Failed to adjust stock", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"message": "Failed to adjust stock",
			})
		}
	}

	prometheus.RecordStockAdjustment(string(direction), "applied")
	log.Info("Stock adjusted successfully",
		zap.Uint("product_id", product.ID),
		zap.Int("current_stock", product.CurrentStock))
	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "OK",
		"current_stock": product.CurrentStock,
	})
}

// LowStock lists active products at or below their minimum stock level
func (h *Handler) LowStock(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.Store.LowStockProducts()
	if err != nil {
		log.Error("Failed to retrieve low stock products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve low stock products",
		})
	}

	log.Info("Low stock products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}
