package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OfferType string

const (
	OfferTypeInitial OfferType = "initial"
	OfferTypeCounter OfferType = "counter"
	OfferTypeFinal   OfferType = "final"
)

// RoundStatus tracks a single supplier offer.
//
// A round is created as received (a live offer). It moves to countered when we answer it
// with a counter-offer, or to accepted when the session closes on it.
type RoundStatus string

const (
	RoundStatusReceived  RoundStatus = "received"
	RoundStatusCountered RoundStatus = "countered"
	RoundStatusAccepted  RoundStatus = "accepted"
	RoundStatusRejected  RoundStatus = "rejected"
)

// NegotiationRound is one offer exchanged with a single supplier.
//
// Storage model (DynamoDB):
//   - table negotiation_rounds, PK: session_id, SK: round_id
//   - rounds are read per session with a consistent Query
type NegotiationRound struct {
	ID                 string           `json:"round_id"`
	SessionID          string           `json:"session_id"`
	SupplierID         string           `json:"supplier_id"`
	RoundNumber        int              `json:"round_number"`
	OfferType          OfferType        `json:"offer_type"`
	OfferedPrice       decimal.Decimal  `json:"offered_price"`
	TotalValue         decimal.Decimal  `json:"total_value"`
	CounterPrice       *decimal.Decimal `json:"counter_price,omitempty"`
	Justification      string           `json:"justification,omitempty"`
	Status             RoundStatus      `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	ResponseReceivedAt *time.Time       `json:"response_received_at,omitempty"`
}

// IsLiveOffer reports whether the round is an open, un-countered offer.
func (r NegotiationRound) IsLiveOffer() bool {
	return r.Status == RoundStatusReceived && r.OfferedPrice.IsPositive()
}
