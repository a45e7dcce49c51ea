// Package handler holds the HTTP boundary. Handlers bind requests, call the
// domain packages and translate their errors into JSON responses; they never
// touch stock or invoices directly.
package handler

import (
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/report"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/sales"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/stock"
	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/store"
)

// Handler bundles the components the HTTP layer depends on.
type Handler struct {
	Store   *store.Store
	Stock   *stock.Engine
	Sales   *sales.Workflow
	Reports *report.Service
}

// New creates a Handler with all dependencies injected.
func New(st *store.Store, engine *stock.Engine, workflow *sales.Workflow, reports *report.Service) *Handler {
	return &Handler{
		Store:   st,
		Stock:   engine,
		Sales:   workflow,
		Reports: reports,
	}
}
