package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/logger"
)

// ProductRequest defines the structure for product creation requests.
// Stock is not settable here; it starts at zero and changes only through
// stock adjustments.
type ProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	SKU            string  `json:"sku" validate:"required"`
	CategoryID     *uint   `json:"category_id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	PurchasePrice  float64 `json:"purchase_price"`
	SellingPrice   float64 `json:"selling_price"`
	TaxPercent     float64 `json:"tax_percent"`
	WarrantyMonths int     `json:"warranty_months"`
	MinStock       int     `json:"min_stock"`
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" || req.SKU == "" {
		log.Warn("Product name or SKU missing")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name and sku are required",
		})
	}

	log.Info("Product creation request",
		zap.String("name", req.Name),
		zap.String("sku", req.SKU),
		zap.Float64("selling_price", req.SellingPrice))

	exists, err := h.Store.ProductSKUExists(req.SKU)
	if err != nil {
		log.Error("Failed to check SKU", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}
	if exists {
		log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Product with this SKU already exists",
		})
	}

	product := model.Product{
		Name:           req.Name,
		SKU:            req.SKU,
		CategoryID:     req.CategoryID,
		Brand:          req.Brand,
		Model:          req.Model,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		TaxPercent:     req.TaxPercent,
		WarrantyMonths: req.WarrantyMonths,
		MinStock:       req.MinStock,
		Status:         model.StatusActive,
	}
	if err := h.Store.CreateProduct(&product); err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.String("sku", req.SKU),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	log.Info("Product created successfully",
		zap.String("product_id", strconv.FormatUint(uint64(product.ID), 10)),
		zap.String("name", product.Name),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusCreated, product)
}

// ListProducts retrieves all active products
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.Store.ListProducts()
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// DeleteProduct archives a product (soft delete)
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	log.Info("Archiving product", zap.Uint("product_id", id))

	if err := h.Store.ArchiveProduct(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Product not found for deletion", zap.Uint("product_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Product not found",
			})
		}
		log.Error("Failed to archive product", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}

	log.Info("Product archived successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
