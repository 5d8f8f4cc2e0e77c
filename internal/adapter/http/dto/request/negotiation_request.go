package request

import (
	"strings"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase"

	"github.com/shopspring/decimal"
)

const defaultCreatedBy = "NegotiationAgent"

type LineItemArgs struct {
	SKU         string           `json:"sku"`
	Quantity    int              `json:"quantity"`
	Description string           `json:"description"`
	TargetPrice *decimal.Decimal `json:"target_price"`
}

type CreateSessionArgs struct {
	Items                 []LineItemArgs   `json:"items" binding:"required"`
	TargetPrice           *decimal.Decimal `json:"target_price"`
	TargetDiscountPercent *decimal.Decimal `json:"target_discount_percent"`
	MaxRounds             int              `json:"max_rounds"`
	SupplierIDs           []string         `json:"supplier_ids"`
	CreatedBy             string           `json:"created_by"`
}

func (a CreateSessionArgs) ToInput() usecase.CreateSessionInput {
	items := make([]entities.LineItem, 0, len(a.Items))
	for _, it := range a.Items {
		items = append(items, entities.LineItem{
			SKU:         it.SKU,
			Title:       it.Description,
			Quantity:    it.Quantity,
			TargetPrice: it.TargetPrice,
		})
	}
	createdBy := strings.TrimSpace(a.CreatedBy)
	if createdBy == "" {
		createdBy = defaultCreatedBy
	}
	return usecase.CreateSessionInput{
		Items:                 items,
		TargetPrice:           a.TargetPrice,
		TargetDiscountPercent: a.TargetDiscountPercent,
		MaxRounds:             a.MaxRounds,
		SupplierIDs:           a.SupplierIDs,
		CreatedBy:             createdBy,
	}
}

type RequestQuoteArgs struct {
	SessionID  string `json:"session_id" binding:"required"`
	SupplierID string `json:"supplier_id" binding:"required"`
	Urgency    string `json:"urgency" binding:"omitempty,oneof=low medium high"`
}

type SubmitCounterArgs struct {
	SessionID     string           `json:"session_id" binding:"required"`
	SupplierID    string           `json:"supplier_id" binding:"required"`
	CounterPrice  *decimal.Decimal `json:"counter_price" binding:"required"`
	Justification string           `json:"justification" binding:"required"`
}

type AcceptOfferArgs struct {
	SessionID  string `json:"session_id" binding:"required"`
	SupplierID string `json:"supplier_id" binding:"required"`
	Notes      string `json:"notes"`
}

type SessionArgs struct {
	SessionID string `json:"session_id" binding:"required"`
}

type CompareOffersArgs struct {
	SessionID string `json:"session_id" binding:"required"`
	Criteria  string `json:"criteria"`
}

type CancelSessionArgs struct {
	SessionID string `json:"session_id" binding:"required"`
	Reason    string `json:"reason"`
}

// CancelSessionRequest is the REST body of POST /v1/negotiations/:session_id/cancel.
type CancelSessionRequest struct {
	Reason string `json:"reason"`
}
