package memory

import (
	"context"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// StaticSupplierCatalog serves suppliers and products from memory. It backs local runs
// (CATALOG_DRIVER=static) and tests. It is read-only after construction.
type StaticSupplierCatalog struct {
	suppliers map[string]entities.Supplier
	products  map[string]entities.Product
}

var _ interfaces.ISupplierCatalog = (*StaticSupplierCatalog)(nil)

func NewStaticSupplierCatalog(suppliers []entities.Supplier, products []entities.Product) *StaticSupplierCatalog {
	c := &StaticSupplierCatalog{
		suppliers: make(map[string]entities.Supplier, len(suppliers)),
		products:  make(map[string]entities.Product, len(products)),
	}
	for _, s := range suppliers {
		c.suppliers[s.ID] = s
	}
	for _, p := range products {
		c.products[p.SKU] = p
	}
	return c
}

// NewDemoSupplierCatalog returns a small fixed catalog for running without Postgres.
func NewDemoSupplierCatalog() *StaticSupplierCatalog {
	return NewStaticSupplierCatalog(DemoSuppliers(), DemoProducts())
}

func DemoSuppliers() []entities.Supplier {
	return []entities.Supplier{
		{ID: "SUP-001", Name: "Acme Industrial Supply", BaseCost: decPtr("4.10"), LeadTimeDays: 5, QualityRating: floatPtr(4.5), OnTimeRate: floatPtr(96), Active: true},
		{ID: "SUP-002", Name: "Northwind Components", BaseCost: decPtr("3.95"), LeadTimeDays: 9, QualityRating: floatPtr(3.8), OnTimeRate: floatPtr(88), Active: true},
		{ID: "SUP-003", Name: "Globex Wholesale", LeadTimeDays: 14, Active: true},
	}
}

func DemoProducts() []entities.Product {
	return []entities.Product{
		{SKU: "B001", Title: "Stainless steel fastener kit", UnitCost: decPtr("4.00"), SupplierID: "SUP-001"},
		{SKU: "B002", Title: "Nitrile gloves (box of 100)", UnitCost: decPtr("7.25"), SupplierID: "SUP-002"},
	}
}

func (c *StaticSupplierCatalog) LookupSupplier(_ context.Context, supplierID string) (entities.Supplier, error) {
	return c.suppliers[supplierID], nil
}

func (c *StaticSupplierCatalog) LookupProduct(_ context.Context, sku string) (entities.Product, error) {
	return c.products[sku], nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func floatPtr(f float64) *float64 { return &f }
