package interfaces

//go:generate mockgen -source=supplier_responder_interface.go -destination=mocks/supplier_responder_mock.go -package=mock_interfaces

import "github.com/shopspring/decimal"

// ISupplierResponder simulates how a supplier prices an initial quote.
type ISupplierResponder interface {
	OfferPrice(baseCost decimal.Decimal) decimal.Decimal
}
