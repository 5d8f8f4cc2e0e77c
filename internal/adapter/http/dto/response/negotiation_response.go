package response

import (
	"time"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	SKU         string   `json:"sku"`
	Description string   `json:"description,omitempty"`
	Quantity    int      `json:"quantity"`
	TargetPrice *float64 `json:"target_price,omitempty"`
}

type SessionResponse struct {
	SessionID         string             `json:"session_id"`
	Status            string             `json:"status"`
	Items             []LineItemResponse `json:"items"`
	TargetPrice       *float64           `json:"target_price"`
	SupplierIDs       []string           `json:"supplier_ids,omitempty"`
	MaxRounds         int                `json:"max_rounds"`
	CurrentRound      int                `json:"current_round"`
	WinningSupplierID *string            `json:"winning_supplier_id"`
	FinalPrice        *float64           `json:"final_price"`
	TotalValue        *float64           `json:"total_value"`
	Notes             string             `json:"notes,omitempty"`
	CreatedBy         string             `json:"created_by,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	CompletedAt       *time.Time         `json:"completed_at"`
}

type RoundResponse struct {
	RoundID            string     `json:"round_id"`
	SupplierID         string     `json:"supplier_id"`
	RoundNumber        int        `json:"round_number"`
	OfferType          string     `json:"offer_type"`
	OfferedPrice       float64    `json:"offered_price"`
	TotalValue         float64    `json:"total_value"`
	CounterPrice       *float64   `json:"counter_price"`
	Justification      string     `json:"justification,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	ResponseReceivedAt *time.Time `json:"response_received_at,omitempty"`
}

type SessionStatusResponse struct {
	SessionResponse
	Rounds []RoundResponse `json:"rounds"`
}

type QuoteResponse struct {
	RoundID      string             `json:"round_id"`
	SessionID    string             `json:"session_id"`
	SupplierID   string             `json:"supplier_id"`
	SupplierName string             `json:"supplier_name"`
	RoundNumber  int                `json:"round_number"`
	OfferedPrice float64            `json:"offered_price"`
	TotalValue   float64            `json:"total_value"`
	Status       string             `json:"status"`
	Simulated    bool               `json:"simulated"`
	Items        []LineItemResponse `json:"items"`
}

type CounterResponse struct {
	RoundID                  string  `json:"round_id"`
	SessionID                string  `json:"session_id"`
	SupplierID               string  `json:"supplier_id"`
	OurCounterPrice          float64 `json:"our_counter_price"`
	TheirResponsePrice       float64 `json:"their_response_price"`
	TotalValue               float64 `json:"total_value"`
	RoundNumber              int     `json:"round_number"`
	Status                   string  `json:"status"`
	Simulated                bool    `json:"simulated"`
	DiscountRequestedPercent float64 `json:"discount_requested_percent"`
}

type AcceptResponse struct {
	SessionID         string             `json:"session_id"`
	Status            string             `json:"status"`
	WinningSupplierID string             `json:"winning_supplier_id"`
	FinalPrice        float64            `json:"final_price"`
	TotalValue        float64            `json:"total_value"`
	Items             []LineItemResponse `json:"items"`
	TargetPrice       *float64           `json:"target_price"`
	RoundsCompleted   int                `json:"rounds_completed"`
	Notes             string             `json:"notes,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at"`
}

type RankingResponse struct {
	Rank          int      `json:"rank"`
	SupplierID    string   `json:"supplier_id"`
	SupplierName  string   `json:"supplier_name"`
	RoundNumber   int      `json:"round_number"`
	OfferedPrice  float64  `json:"offered_price"`
	TotalValue    float64  `json:"total_value"`
	QualityRating *float64 `json:"quality_rating"`
	OnTimeRate    *float64 `json:"on_time_rate"`
	Score         float64  `json:"score"`
}

type ComparisonResponse struct {
	SessionID       string            `json:"session_id"`
	Criteria        string            `json:"criteria"`
	TargetPrice     *float64          `json:"target_price"`
	OffersCount     int               `json:"offers_count"`
	RankedSuppliers []RankingResponse `json:"ranked_suppliers"`
	BestOffer       *RankingResponse  `json:"best_offer"`
}

func FromSession(s entities.NegotiationSession) SessionResponse {
	res := SessionResponse{
		SessionID:    s.ID,
		Status:       string(s.Status),
		Items:        fromLineItems(s.Items),
		TargetPrice:  floatPtr(s.TargetPrice),
		SupplierIDs:  s.SupplierIDs,
		MaxRounds:    s.MaxRounds,
		CurrentRound: s.CurrentRound,
		FinalPrice:   floatPtr(s.FinalPrice),
		TotalValue:   floatPtr(s.TotalValue),
		Notes:        s.Notes,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
		CompletedAt:  s.CompletedAt,
	}
	if s.WinningSupplierID != "" {
		winner := s.WinningSupplierID
		res.WinningSupplierID = &winner
	}
	return res
}

func FromRound(r entities.NegotiationRound) RoundResponse {
	return RoundResponse{
		RoundID:            r.ID,
		SupplierID:         r.SupplierID,
		RoundNumber:        r.RoundNumber,
		OfferType:          string(r.OfferType),
		OfferedPrice:       r.OfferedPrice.InexactFloat64(),
		TotalValue:         r.TotalValue.InexactFloat64(),
		CounterPrice:       floatPtr(r.CounterPrice),
		Justification:      r.Justification,
		Status:             string(r.Status),
		CreatedAt:          r.CreatedAt,
		ResponseReceivedAt: r.ResponseReceivedAt,
	}
}

func FromSessionStatus(v usecase.SessionStatusView) SessionStatusResponse {
	rounds := make([]RoundResponse, 0, len(v.Rounds))
	for _, r := range v.Rounds {
		rounds = append(rounds, FromRound(r))
	}
	return SessionStatusResponse{SessionResponse: FromSession(v.Session), Rounds: rounds}
}

func FromQuote(q usecase.QuoteResult) QuoteResponse {
	return QuoteResponse{
		RoundID:      q.Round.ID,
		SessionID:    q.Round.SessionID,
		SupplierID:   q.Round.SupplierID,
		SupplierName: q.SupplierName,
		RoundNumber:  q.Round.RoundNumber,
		OfferedPrice: q.Round.OfferedPrice.InexactFloat64(),
		TotalValue:   q.Round.TotalValue.InexactFloat64(),
		Status:       string(q.Round.Status),
		Simulated:    true,
		Items:        fromLineItems(q.Items),
	}
}

func FromCounter(c usecase.CounterResult) CounterResponse {
	return CounterResponse{
		RoundID:                  c.Round.ID,
		SessionID:                c.Round.SessionID,
		SupplierID:               c.Round.SupplierID,
		OurCounterPrice:          c.CounterPrice.InexactFloat64(),
		TheirResponsePrice:       c.Round.OfferedPrice.InexactFloat64(),
		TotalValue:               c.Round.TotalValue.InexactFloat64(),
		RoundNumber:              c.Round.RoundNumber,
		Status:                   string(c.Decision),
		Simulated:                true,
		DiscountRequestedPercent: c.DiscountRequestedPercent.InexactFloat64(),
	}
}

func FromAcceptedSession(s entities.NegotiationSession) AcceptResponse {
	res := AcceptResponse{
		SessionID:         s.ID,
		Status:            string(s.Status),
		WinningSupplierID: s.WinningSupplierID,
		Items:             fromLineItems(s.Items),
		TargetPrice:       floatPtr(s.TargetPrice),
		RoundsCompleted:   s.CurrentRound,
		Notes:             s.Notes,
		CompletedAt:       s.CompletedAt,
	}
	if s.FinalPrice != nil {
		res.FinalPrice = s.FinalPrice.InexactFloat64()
	}
	if s.TotalValue != nil {
		res.TotalValue = s.TotalValue.InexactFloat64()
	}
	return res
}

func FromOfferComparison(c entities.OfferComparison) ComparisonResponse {
	ranked := make([]RankingResponse, 0, len(c.Ranked))
	for i, r := range c.Ranked {
		ranked = append(ranked, RankingResponse{
			Rank:          i + 1,
			SupplierID:    r.SupplierID,
			SupplierName:  r.SupplierName,
			RoundNumber:   r.RoundNumber,
			OfferedPrice:  r.OfferedPrice.InexactFloat64(),
			TotalValue:    r.TotalValue.InexactFloat64(),
			QualityRating: r.QualityRating,
			OnTimeRate:    r.OnTimeRate,
			Score:         r.Score,
		})
	}
	res := ComparisonResponse{
		SessionID:       c.SessionID,
		Criteria:        string(c.Criteria),
		TargetPrice:     floatPtr(c.TargetPrice),
		OffersCount:     len(ranked),
		RankedSuppliers: ranked,
	}
	if len(ranked) > 0 {
		best := ranked[0]
		res.BestOffer = &best
	}
	return res
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			SKU:         it.SKU,
			Description: it.Title,
			Quantity:    it.Quantity,
			TargetPrice: floatPtr(it.TargetPrice),
		})
	}
	return out
}

func floatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
