package entities

import "github.com/shopspring/decimal"

type RankingCriteria string

const (
	RankingCriteriaPrice           RankingCriteria = "price"
	RankingCriteriaQualityAdjusted RankingCriteria = "quality_adjusted"
	RankingCriteriaTotalCost       RankingCriteria = "total_cost"
)

func (c RankingCriteria) IsValid() bool {
	switch c {
	case RankingCriteriaPrice, RankingCriteriaQualityAdjusted, RankingCriteriaTotalCost:
		return true
	}
	return false
}

// SupplierQuoteRanking is a derived, non-persisted view of one supplier's live offer.
type SupplierQuoteRanking struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	RoundNumber   int             `json:"round_number"`
	OfferedPrice  decimal.Decimal `json:"offered_price"`
	TotalValue    decimal.Decimal `json:"total_value"`
	QualityRating *float64        `json:"quality_rating,omitempty"`
	OnTimeRate    *float64        `json:"on_time_rate,omitempty"`
	Score         float64         `json:"score"`
}

// OfferComparison is the result of ranking the live offers of a session.
type OfferComparison struct {
	SessionID   string                 `json:"session_id"`
	Criteria    RankingCriteria        `json:"criteria"`
	TargetPrice *decimal.Decimal       `json:"target_price,omitempty"`
	Ranked      []SupplierQuoteRanking `json:"ranked_suppliers"`
}

func (c OfferComparison) BestOffer() (SupplierQuoteRanking, bool) {
	if len(c.Ranked) == 0 {
		return SupplierQuoteRanking{}, false
	}
	return c.Ranked[0], true
}
