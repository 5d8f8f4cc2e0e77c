package usecase

import (
	"sort"

	"supplymind/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	unitPricePlaces = 4
	totalPlaces     = 2

	defaultQualityRating = 3.0
	defaultOnTimeRate    = 80.0
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)

	acceptThreshold   = decimal.NewFromInt(5)
	midpointThreshold = decimal.NewFromInt(10)
	smallConcession   = decimal.NewFromInt(15)

	smallConcessionFactor   = decimal.RequireFromString("0.95")
	minimalConcessionFactor = decimal.RequireFromString("0.97")
)

// CounterDecision is the simulated supplier's answer to a counter-offer.
type CounterDecision string

const (
	CounterDecisionAccepted  CounterDecision = "accepted"
	CounterDecisionCountered CounterDecision = "countered"
)

type counterResponse struct {
	Price           decimal.Decimal
	Decision        CounterDecision
	DiscountPercent decimal.Decimal
}

// respondToCounter applies the supplier decision table. Thresholds are inclusive:
//
//	discount <= 5%   -> counter price accepted
//	discount <= 10%  -> meet halfway
//	discount <= 15%  -> 5% off the last price
//	otherwise        -> 3% off the last price
func respondToCounter(lastPrice, counterPrice decimal.Decimal) counterResponse {
	discount := lastPrice.Sub(counterPrice).Div(lastPrice).Mul(hundred)

	switch {
	case discount.LessThanOrEqual(acceptThreshold):
		return counterResponse{Price: counterPrice, Decision: CounterDecisionAccepted, DiscountPercent: discount}
	case discount.LessThanOrEqual(midpointThreshold):
		mid := lastPrice.Add(counterPrice).Div(two).Round(unitPricePlaces)
		return counterResponse{Price: mid, Decision: CounterDecisionCountered, DiscountPercent: discount}
	case discount.LessThanOrEqual(smallConcession):
		return counterResponse{Price: lastPrice.Mul(smallConcessionFactor).Round(unitPricePlaces), Decision: CounterDecisionCountered, DiscountPercent: discount}
	default:
		return counterResponse{Price: lastPrice.Mul(minimalConcessionFactor).Round(unitPricePlaces), Decision: CounterDecisionCountered, DiscountPercent: discount}
	}
}

func lineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(totalPlaces)
}

// latestRoundFor returns the highest-numbered round of supplierID.
func latestRoundFor(rounds []entities.NegotiationRound, supplierID string) (entities.NegotiationRound, bool) {
	var latest entities.NegotiationRound
	found := false
	for _, r := range rounds {
		if r.SupplierID != supplierID {
			continue
		}
		if !found || r.RoundNumber > latest.RoundNumber {
			latest = r
			found = true
		}
	}
	return latest, found
}

// liveOffers keeps, per supplier, the highest-numbered round that is still an open offer.
func liveOffers(rounds []entities.NegotiationRound) []entities.NegotiationRound {
	bySupplier := map[string]entities.NegotiationRound{}
	for _, r := range rounds {
		if !r.IsLiveOffer() {
			continue
		}
		if cur, ok := bySupplier[r.SupplierID]; !ok || r.RoundNumber > cur.RoundNumber {
			bySupplier[r.SupplierID] = r
		}
	}

	out := make([]entities.NegotiationRound, 0, len(bySupplier))
	for _, r := range bySupplier {
		out = append(out, r)
	}
	return out
}

// rankOffers scores live offers under criteria and sorts them best first. Ties break on
// supplier id so the order is stable across calls.
func rankOffers(offers []entities.NegotiationRound, suppliers map[string]entities.Supplier, criteria entities.RankingCriteria) []entities.SupplierQuoteRanking {
	ranked := make([]entities.SupplierQuoteRanking, 0, len(offers))
	for _, r := range offers {
		s := suppliers[r.SupplierID]
		name := s.Name
		if name == "" {
			name = r.SupplierID
		}
		item := entities.SupplierQuoteRanking{
			SupplierID:    r.SupplierID,
			SupplierName:  name,
			RoundNumber:   r.RoundNumber,
			OfferedPrice:  r.OfferedPrice,
			TotalValue:    r.TotalValue,
			QualityRating: s.QualityRating,
			OnTimeRate:    s.OnTimeRate,
		}

		switch criteria {
		case entities.RankingCriteriaPrice:
			item.Score = r.OfferedPrice.InexactFloat64()
		case entities.RankingCriteriaQualityAdjusted:
			quality := orDefault(s.QualityRating, defaultQualityRating) / 5.0
			delivery := orDefault(s.OnTimeRate, defaultOnTimeRate) / 100.0
			item.Score = r.OfferedPrice.InexactFloat64() / (quality * delivery)
		default:
			item.Score = r.TotalValue.InexactFloat64()
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].SupplierID < ranked[j].SupplierID
	})
	return ranked
}

// orDefault treats a missing or non-positive metric as unknown.
func orDefault(v *float64, def float64) float64 {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}
