package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/handler"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/middleware"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/report"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/sales"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/config"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/database"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/jwtutil"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/pkg/logger"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/prometheus"
)

func main() {
	// Load .env file if present; environment variables win otherwise
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory service", appConfig.LogConfig()...)

	// Initialize JWT utility with the configured signing key
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Open the database and build the component graph
	db, err := database.Open(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	st := store.New(db)
	if err := st.SeedDefaultUsers(); err != nil {
		log.Fatal("Failed to seed default users", zap.Error(err))
	}

	engine := stock.NewEngine(st)
	workflow := sales.NewWorkflow(st, engine)
	reports := report.NewService(st)
	h := handler.New(st, engine, workflow, reports)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	// Unauthenticated routes
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", h.Health)
	e.POST("/login", h.Login)

	// Authenticated routes
	api := e.Group("", middleware.AuthMiddleware)

	api.POST("/categories", h.CreateCategory, middleware.RequireCapability(model.CapManageCatalog))
	api.GET("/categories", h.ListCategories)
	api.DELETE("/categories/:id", h.DeleteCategory, middleware.RequireCapability(model.CapManageCatalog))

	api.POST("/suppliers", h.CreateSupplier, middleware.RequireCapability(model.CapManageCatalog))
	api.GET("/suppliers", h.ListSuppliers)
	api.DELETE("/suppliers/:id", h.DeleteSupplier, middleware.RequireCapability(model.CapManageCatalog))

	api.POST("/products", h.CreateProduct, middleware.RequireCapability(model.CapManageCatalog))
	api.GET("/products", h.ListProducts)
	api.DELETE("/products/:id", h.DeleteProduct, middleware.RequireCapability(model.CapManageCatalog))

	api.POST("/stock/in", h.StockIn, middleware.RequireCapability(model.CapAdjustStock))
	api.POST("/stock/out", h.StockOut, middleware.RequireCapability(model.CapAdjustStock))
	api.GET("/stock/low", h.LowStock)

	api.POST("/sales/invoices", h.CreateInvoice, middleware.RequireCapability(model.CapCreateSale))
	api.GET("/sales/invoices", h.ListInvoices)
	api.GET("/sales/invoices/:id", h.GetInvoice)
	api.DELETE("/sales/invoices/:id", h.DeleteInvoice, middleware.RequireCapability(model.CapArchiveSale))

	api.GET("/reports/sales/daily", h.DailySalesReport)
	api.GET("/reports/sales/monthly", h.MonthlySalesReport)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
