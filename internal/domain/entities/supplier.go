package entities

import "github.com/shopspring/decimal"

// Supplier is the read-only catalog view the negotiation engine needs.
//
// QualityRating is on a 0-5 scale, OnTimeRate is a percentage (0-100). Either may be nil
// when the catalog has no data.
type Supplier struct {
	ID            string           `json:"supplier_id"`
	Name          string           `json:"supplier_name"`
	BaseCost      *decimal.Decimal `json:"base_cost,omitempty"`
	LeadTimeDays  int              `json:"lead_time_days"`
	QualityRating *float64         `json:"quality_rating,omitempty"`
	OnTimeRate    *float64         `json:"on_time_rate,omitempty"`
	Active        bool             `json:"active"`
}

// Product is the catalog entry used to price a SKU.
type Product struct {
	SKU        string           `json:"sku"`
	Title      string           `json:"title"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
	SupplierID string           `json:"supplier_id,omitempty"`
}
