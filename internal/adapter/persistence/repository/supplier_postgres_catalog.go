package repository

import (
	"context"
	"errors"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RowQuerier is the part of *pgxpool.Pool the catalog needs.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ RowQuerier = (*pgxpool.Pool)(nil)

// Numeric columns are read as text and parsed into decimals so NUMERIC precision is kept.
const (
	selectSupplierSQL = `SELECT s.supplier_id, s.supplier_name,
       (SELECT MIN(p.unit_cost) FROM products p WHERE p.supplier_id = s.supplier_id AND p.is_active)::text,
       COALESCE(s.default_lead_time_days, 0),
       s.quality_rating::float8,
       s.on_time_delivery_rate::float8,
       COALESCE(s.is_active, true)
  FROM suppliers s
 WHERE s.supplier_id = $1`

	selectProductSQL = `SELECT asin, title, unit_cost::text, COALESCE(supplier_id, '')
  FROM products
 WHERE asin = $1`
)

// SupplierPostgresCatalog reads suppliers and products from the procurement database.
//
// Table requirements:
//   - suppliers(supplier_id PK, supplier_name, default_lead_time_days, quality_rating,
//     on_time_delivery_rate, is_active)
//   - products(asin PK, title, unit_cost, supplier_id, is_active)
type SupplierPostgresCatalog struct {
	db RowQuerier
}

var _ interfaces.ISupplierCatalog = (*SupplierPostgresCatalog)(nil)

func NewSupplierPostgresCatalog(db RowQuerier) *SupplierPostgresCatalog {
	return &SupplierPostgresCatalog{db: db}
}

func (c *SupplierPostgresCatalog) LookupSupplier(ctx context.Context, supplierID string) (entities.Supplier, error) {
	var (
		s        entities.Supplier
		baseCost *string
	)
	err := c.db.QueryRow(ctx, selectSupplierSQL, supplierID).
		Scan(&s.ID, &s.Name, &baseCost, &s.LeadTimeDays, &s.QualityRating, &s.OnTimeRate, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Supplier{}, nil
		}
		return entities.Supplier{}, err
	}
	if baseCost != nil {
		s.BaseCost = parseDecimalPtr(*baseCost)
	}
	return s, nil
}

func (c *SupplierPostgresCatalog) LookupProduct(ctx context.Context, sku string) (entities.Product, error) {
	var (
		p        entities.Product
		unitCost *string
	)
	err := c.db.QueryRow(ctx, selectProductSQL, sku).
		Scan(&p.SKU, &p.Title, &unitCost, &p.SupplierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if unitCost != nil {
		p.UnitCost = parseDecimalPtr(*unitCost)
	}
	return p, nil
}
