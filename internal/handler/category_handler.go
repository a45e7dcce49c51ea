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

// CategoryRequest defines the structure for category creation requests
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateCategory adds a new product category
func (h *Handler) CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new category")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		log.Warn("Category name missing")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}

	exists, err := h.Store.CategoryNameExists(req.Name)
	if err != nil {
		log.Error("Failed to check category name", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}
	if exists {
		log.Warn("Category with this name already exists", zap.String("name", req.Name))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Category with this name already exists",
		})
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.StatusActive,
	}
	if err := h.Store.CreateCategory(&category); err != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create category",
		})
	}

	log.Info("Category created successfully",
		zap.String("category_id", strconv.FormatUint(uint64(category.ID), 10)),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// ListCategories retrieves all active categories
func (h *Handler) ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	categories, err := h.Store.ListCategories()
	if err != nil {
		log.Error("Failed to retrieve categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

// DeleteCategory archives a category (soft delete)
func (h *Handler) DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	log.Info("Archiving category", zap.Uint("category_id", id))

	if err := h.Store.ArchiveCategory(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Category not found for deletion", zap.Uint("category_id", id))
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Category not found",
			})
		}
		log.Error("Failed to archive category", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete category",
		})
	}

	log.Info("Category archived successfully", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
