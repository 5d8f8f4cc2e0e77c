package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus represents the lifecycle of a negotiation session.
//
// Transitions:
//   - open -> quoting (first quote request)
//   - quoting -> negotiating (first counter-offer)
//   - open|quoting|negotiating -> accepted (offer accepted)
//   - open|quoting|negotiating -> cancelled (explicit cancel)
//
// accepted and cancelled are terminal.
type SessionStatus string

const (
	SessionStatusOpen        SessionStatus = "open"
	SessionStatusQuoting     SessionStatus = "quoting"
	SessionStatusNegotiating SessionStatus = "negotiating"
	SessionStatusAccepted    SessionStatus = "accepted"
	SessionStatusCancelled   SessionStatus = "cancelled"
)

func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusAccepted || s == SessionStatusCancelled
}

// LineItem is one product line being negotiated.
type LineItem struct {
	SKU         string           `json:"sku"`
	Title       string           `json:"title,omitempty"`
	Quantity    int              `json:"quantity"`
	TargetPrice *decimal.Decimal `json:"target_price,omitempty"`
}

// NegotiationSession is the aggregate root of a supplier negotiation.
//
// Storage model (DynamoDB):
//   - table negotiation_sessions, PK: session_id
//   - Version guards every write (optimistic concurrency)
//
// CurrentRound is a single counter shared by every supplier in the session, not a
// per-supplier count. A quote from supplier B after two rounds with supplier A gets
// round number 3.
type NegotiationSession struct {
	ID                string           `json:"session_id"`
	Status            SessionStatus    `json:"status"`
	Items             []LineItem       `json:"items"`
	TargetPrice       *decimal.Decimal `json:"target_price,omitempty"`
	SupplierIDs       []string         `json:"supplier_ids,omitempty"`
	MaxRounds         int              `json:"max_rounds"`
	CurrentRound      int              `json:"current_round"`
	WinningSupplierID string           `json:"winning_supplier_id,omitempty"`
	FinalPrice        *decimal.Decimal `json:"final_price,omitempty"`
	TotalValue        *decimal.Decimal `json:"total_value,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	CreatedBy         string           `json:"created_by,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	Version           int64            `json:"version"`
}

// PrimaryItem returns the first line item. Quotes are priced from it.
func (s NegotiationSession) PrimaryItem() (LineItem, bool) {
	if len(s.Items) == 0 {
		return LineItem{}, false
	}
	return s.Items[0], true
}
