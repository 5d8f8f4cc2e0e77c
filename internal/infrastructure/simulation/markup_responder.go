package simulation

import (
	"math/rand"
	"sync"
	"time"

	"supplymind/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	// MinMarkup and MaxMarkup bound the simulated supplier markup over base cost.
	MinMarkup = decimal.RequireFromString("1.05")
	MaxMarkup = decimal.RequireFromString("1.15")
)

// PricePlaces is the precision kept for unit prices.
const PricePlaces = 4

// MarkupResponder prices an initial quote as baseCost x markup, with the markup drawn
// uniformly from [MinMarkup, MaxMarkup].
type MarkupResponder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ interfaces.ISupplierResponder = (*MarkupResponder)(nil)

// NewMarkupResponder returns a responder seeded with seed, or with the current time
// when seed is 0.
func NewMarkupResponder(seed int64) *MarkupResponder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MarkupResponder{rnd: rand.New(rand.NewSource(seed))}
}

func (r *MarkupResponder) OfferPrice(baseCost decimal.Decimal) decimal.Decimal {
	r.mu.Lock()
	f := r.rnd.Float64()
	r.mu.Unlock()

	spread := MaxMarkup.Sub(MinMarkup)
	markup := MinMarkup.Add(spread.Mul(decimal.NewFromFloat(f)))
	price := baseCost.Mul(markup).Round(PricePlaces)

	// Rounding may not push a price outside the band.
	lo, hi := baseCost.Mul(MinMarkup), baseCost.Mul(MaxMarkup)
	if price.LessThan(lo) {
		return lo
	}
	if price.GreaterThan(hi) {
		return hi
	}
	return price
}
