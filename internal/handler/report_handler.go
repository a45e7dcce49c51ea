package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/report"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/logger"
)

// DailySalesReport returns per-day sales totals for the requested window
func (h *Handler) DailySalesReport(c echo.Context) error {
	log := logger.FromContext(c)

	days := report.DefaultDailyWindow
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Warn("Invalid days parameter", zap.String("value", raw))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be a positive integer"})
		}
		days = parsed
	}

	buckets, err := h.Reports.DailySales(days)
	if err != nil {
		log.Error("Failed to build daily sales report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build report"})
	}

	log.Info("Daily sales report built",
		zap.Int("days", days),
		zap.Int("bucket_count", len(buckets)))
	return c.JSON(http.StatusOK, buckets)
}

// MonthlySalesReport returns per-month sales totals over the full history
func (h *Handler) MonthlySalesReport(c echo.Context) error {
	log := logger.FromContext(c)

	buckets, err := h.Reports.MonthlySales()
	if err != nil {
		log.Error("Failed to build monthly sales report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to build report"})
	}

	log.Info("Monthly sales report built", zap.Int("bucket_count", len(buckets)))
	return c.JSON(http.StatusOK, buckets)
}
