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

// SupplierRequest defines the structure for supplier creation requests
type SupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
}

// CreateSupplier adds a new supplier
func (h *Handler) CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new supplier")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		log.Warn("Supplier name missing")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	supplier := model.Supplier{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		GSTIN:   req.GSTIN,
		Address: req.Address,
		Status:  model.StatusActive,
	}
	if err := h.Store.CreateSupplier(&supplier); err != nil {
		log.Error("Failed to create supplier",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create supplier",
		})
	}

	log.Info("Supplier created successfully",
		zap.String("supplier_id", strconv.FormatUint(uint64(supplier.ID), 10)),
		zap.String("name", supplier.Name))
	return c.JSON(http.StatusCreated, supplier)
}

// ListSuppliers retrieves all active suppliers
func (h *Handler) ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)

	suppliers, err := h.Store.ListSuppliers()
	if err != nil {
		log.Error("Failed to retrieve suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve suppliers",
		})
	}

	log.Info("Suppliers retrieved successfully", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// DeleteSupplier archives a supplier (soft delete)
func (h *Handler) DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	log.Info("Archiving supplier", zap.Uint("supplier_id", id))

	if err := h.Store.ArchiveSupplier(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Supplier not found for deletion", zap.Uint("supplier_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Supplier not found",
			})
		}
		log.Error("Failed to archive supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete supplier",
		})
	}

	log.Info("Supplier archived successfully", zap.Uint("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
