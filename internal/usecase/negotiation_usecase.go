package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound     = errors.New("negotiation session not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrInvalidSessionID    = errors.New("invalid session_id")
	ErrInvalidSupplierID   = errors.New("invalid supplier_id")
	ErrInvalidItems        = errors.New("items must not be empty")
	ErrInvalidQuantity     = errors.New("item quantity must be at least 1")
	ErrInvalidSKU          = errors.New("item sku must not be empty")
	ErrInvalidTargetPrice  = errors.New("target price must be positive")
	ErrInvalidDiscount     = errors.New("target discount percent must be between 0 and 100")
	ErrInvalidMaxRounds    = errors.New("max_rounds must be at least 1")
	ErrInvalidCounterPrice = errors.New("counter price must be positive")
	ErrInvalidCriteria     = errors.New("unknown ranking criteria")
	ErrNoPriorRound        = errors.New("no previous round for supplier")
	ErrNoLiveOffer         = errors.New("no valid offer from supplier")
	ErrSessionTerminal     = errors.New("negotiation session is closed")
	ErrMaxRoundsExceeded   = errors.New("max rounds exceeded")
	ErrConcurrentUpdate    = errors.New("concurrent update")
)

const (
	sessionIDPrefix = "neg"
	roundIDPrefix   = "rnd"
	shortIDHexLen   = 8

	defaultUrgency = "medium"
)

// INegotiationUseCase runs multi-round supplier negotiations.
//
// Session flow: open -> quoting (RequestQuote) -> negotiating (SubmitCounter) -> accepted
// (AcceptOffer). CancelSession closes a session from any non-terminal status.
type INegotiationUseCase interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (entities.NegotiationSession, error)
	RequestQuote(ctx context.Context, sessionID, supplierID, urgency string) (QuoteResult, error)
	SubmitCounter(ctx context.Context, sessionID, supplierID string, counterPrice decimal.Decimal, justification string) (CounterResult, error)
	AcceptOffer(ctx context.Context, sessionID, supplierID, notes string) (entities.NegotiationSession, error)
	CancelSession(ctx context.Context, sessionID, reason string) (entities.NegotiationSession, error)
	GetStatus(ctx context.Context, sessionID string) (SessionStatusView, error)
	CompareOffers(ctx context.Context, sessionID, criteria string) (entities.OfferComparison, error)
}

type CreateSessionInput struct {
	Items                 []entities.LineItem
	TargetPrice           *decimal.Decimal
	TargetDiscountPercent *decimal.Decimal
	MaxRounds             int
	SupplierIDs           []string
	CreatedBy             string
}

type QuoteResult struct {
	Round        entities.NegotiationRound
	SupplierName string
	Items        []entities.LineItem
}

// CounterResult carries the supplier's reply round. Decision is the supplier's verdict
// on our counter; the reply round itself stays a live (received) offer.
type CounterResult struct {
	Round                    entities.NegotiationRound
	CounterPrice             decimal.Decimal
	Decision                 CounterDecision
	DiscountRequestedPercent decimal.Decimal
}

type SessionStatusView struct {
	Session entities.NegotiationSession
	Rounds  []entities.NegotiationRound
}

type NegotiationOptions struct {
	DefaultBaseCost  decimal.Decimal
	DefaultMaxRounds int
	// StrictMaxRounds rejects rounds past the session's max_rounds. Off by default.
	StrictMaxRounds bool
}

type NegotiationUseCase struct {
	repo      interfaces.INegotiationRepository
	catalog   interfaces.ISupplierCatalog
	responder interfaces.ISupplierResponder
	clock     interfaces.IClock
	ids       interfaces.IIDGenerator
	opts      NegotiationOptions
	locks     *entityLocks
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	repo interfaces.INegotiationRepository,
	catalog interfaces.ISupplierCatalog,
	responder interfaces.ISupplierResponder,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	opts NegotiationOptions,
) *NegotiationUseCase {
	if opts.DefaultMaxRounds < 1 {
		opts.DefaultMaxRounds = 3
	}
	if !opts.DefaultBaseCost.IsPositive() {
		opts.DefaultBaseCost = decimal.NewFromInt(5)
	}
	return &NegotiationUseCase{
		repo:      repo,
		catalog:   catalog,
		responder: responder,
		clock:     clock,
		ids:       ids,
		opts:      opts,
		locks:     newEntityLocks(),
	}
}

func (u *NegotiationUseCase) CreateSession(ctx context.Context, in CreateSessionInput) (entities.NegotiationSession, error) {
	if len(in.Items) == 0 {
		return entities.NegotiationSession{}, ErrInvalidItems
	}
	items := make([]entities.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		it.SKU = strings.TrimSpace(it.SKU)
		if it.SKU == "" {
			return entities.NegotiationSession{}, ErrInvalidSKU
		}
		if it.Quantity < 1 {
			return entities.NegotiationSession{}, fmt.Errorf("%w: sku=%s quantity=%d", ErrInvalidQuantity, it.SKU, it.Quantity)
		}
		if it.TargetPrice != nil && !it.TargetPrice.IsPositive() {
			return entities.NegotiationSession{}, fmt.Errorf("%w: sku=%s", ErrInvalidTargetPrice, it.SKU)
		}
		items = append(items, it)
	}

	maxRounds := in.MaxRounds
	if maxRounds == 0 {
		maxRounds = u.opts.DefaultMaxRounds
	}
	if maxRounds < 1 {
		return entities.NegotiationSession{}, ErrInvalidMaxRounds
	}

	target := in.TargetPrice
	if target != nil && !target.IsPositive() {
		return entities.NegotiationSession{}, ErrInvalidTargetPrice
	}
	// A zero discount means no discount was asked for.
	if target == nil && in.TargetDiscountPercent != nil && !in.TargetDiscountPercent.IsZero() {
		pct := *in.TargetDiscountPercent
		if !pct.IsPositive() || pct.GreaterThanOrEqual(hundred) {
			return entities.NegotiationSession{}, ErrInvalidDiscount
		}
		base, err := u.baseCost(ctx, items[0].SKU, entities.Supplier{})
		if err != nil {
			return entities.NegotiationSession{}, err
		}
		derived := base.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred))).Round(unitPricePlaces)
		target = &derived
	}

	s := entities.NegotiationSession{
		ID:           u.ids.NewID(sessionIDPrefix, shortIDHexLen),
		Status:       entities.SessionStatusOpen,
		Items:        items,
		TargetPrice:  target,
		SupplierIDs:  normalizeIDs(in.SupplierIDs),
		MaxRounds:    maxRounds,
		CurrentRound: 0,
		CreatedBy:    strings.TrimSpace(in.CreatedBy),
		CreatedAt:    u.clock.Now(),
	}

	created, err := u.repo.CreateSession(ctx, s)
	if err != nil {
		log.Printf("[negotiation][usecase] create session failed err=%v", err)
		return entities.NegotiationSession{}, err
	}
	log.Printf("[negotiation][usecase] session created session_id=%s items=%d max_rounds=%d", created.ID, len(created.Items), created.MaxRounds)
	return created, nil
}

func (u *NegotiationUseCase) RequestQuote(ctx context.Context, sessionID, supplierID, urgency string) (QuoteResult, error) {
	sessionID, supplierID = strings.TrimSpace(sessionID), strings.TrimSpace(supplierID)
	if sessionID == "" {
		return QuoteResult{}, ErrInvalidSessionID
	}
	if supplierID == "" {
		return QuoteResult{}, ErrInvalidSupplierID
	}
	if strings.TrimSpace(urgency) == "" {
		urgency = defaultUrgency
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	s, err := u.openSession(ctx, sessionID)
	if err != nil {
		return QuoteResult{}, err
	}

	supplier, err := u.catalog.LookupSupplier(ctx, supplierID)
	if err != nil {
		log.Printf("[negotiation][usecase] supplier lookup failed supplier_id=%s err=%v", supplierID, err)
		return QuoteResult{}, err
	}
	if supplier.ID == "" {
		return QuoteResult{}, fmt.Errorf("%w: %s", ErrSupplierNotFound, supplierID)
	}

	item, _ := s.PrimaryItem()
	base, err := u.baseCost(ctx, item.SKU, supplier)
	if err != nil {
		return QuoteResult{}, err
	}

	roundNumber := s.CurrentRound + 1
	if err := u.checkMaxRounds(s, roundNumber); err != nil {
		return QuoteResult{}, err
	}

	price := u.responder.OfferPrice(base)
	now := u.clock.Now()
	r := entities.NegotiationRound{
		ID:                 u.ids.NewID(roundIDPrefix, shortIDHexLen),
		SessionID:          s.ID,
		SupplierID:         supplierID,
		RoundNumber:        roundNumber,
		OfferType:          entities.OfferTypeInitial,
		OfferedPrice:       price,
		TotalValue:         lineTotal(price, item.Quantity),
		Status:             entities.RoundStatusReceived,
		CreatedAt:          now,
		ResponseReceivedAt: &now,
	}

	expected := s.Version
	s.CurrentRound = roundNumber
	if s.Status == entities.SessionStatusOpen {
		s.Status = entities.SessionStatusQuoting
	}
	if _, err := u.commit(ctx, interfaces.NegotiationCommit{Session: s, ExpectedVersion: expected, NewRounds: []entities.NegotiationRound{r}}); err != nil {
		return QuoteResult{}, err
	}

	log.Printf("[negotiation][usecase] quote received session_id=%s supplier_id=%s round=%d price=%s urgency=%s", s.ID, supplierID, roundNumber, price, urgency)
	return QuoteResult{Round: r, SupplierName: supplier.Name, Items: s.Items}, nil
}

func (u *NegotiationUseCase) SubmitCounter(ctx context.Context, sessionID, supplierID string, counterPrice decimal.Decimal, justification string) (CounterResult, error) {
	sessionID, supplierID = strings.TrimSpace(sessionID), strings.TrimSpace(supplierID)
	if sessionID == "" {
		return CounterResult{}, ErrInvalidSessionID
	}
	if supplierID == "" {
		return CounterResult{}, ErrInvalidSupplierID
	}
	if !counterPrice.IsPositive() {
		return CounterResult{}, ErrInvalidCounterPrice
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	s, err := u.openSession(ctx, sessionID)
	if err != nil {
		return CounterResult{}, err
	}

	rounds, err := u.repo.ListRounds(ctx, s.ID)
	if err != nil {
		log.Printf("[negotiation][usecase] list rounds failed session_id=%s err=%v", s.ID, err)
		return CounterResult{}, err
	}
	last, ok := latestRoundFor(rounds, supplierID)
	if !ok {
		return CounterResult{}, fmt.Errorf("%w: %s", ErrNoPriorRound, supplierID)
	}
	if !last.OfferedPrice.IsPositive() {
		return CounterResult{}, fmt.Errorf("%w: %s", ErrNoLiveOffer, supplierID)
	}

	roundNumber := last.RoundNumber + 1
	if err := u.checkMaxRounds(s, roundNumber); err != nil {
		return CounterResult{}, err
	}

	reply := respondToCounter(last.OfferedPrice, counterPrice)
	item, _ := s.PrimaryItem()
	now := u.clock.Now()

	counter := counterPrice
	last.CounterPrice = &counter
	last.Justification = strings.TrimSpace(justification)
	last.Status = entities.RoundStatusCountered

	next := entities.NegotiationRound{
		ID:                 u.ids.NewID(roundIDPrefix, shortIDHexLen),
		SessionID:          s.ID,
		SupplierID:         supplierID,
		RoundNumber:        roundNumber,
		OfferType:          entities.OfferTypeCounter,
		OfferedPrice:       reply.Price,
		TotalValue:         lineTotal(reply.Price, item.Quantity),
		Status:             entities.RoundStatusReceived,
		CreatedAt:          now,
		ResponseReceivedAt: &now,
	}

	expected := s.Version
	if roundNumber > s.CurrentRound {
		s.CurrentRound = roundNumber
	}
	s.Status = entities.SessionStatusNegotiating
	if _, err := u.commit(ctx, interfaces.NegotiationCommit{
		Session:         s,
		ExpectedVersion: expected,
		NewRounds:       []entities.NegotiationRound{next},
		UpdatedRounds:   []entities.NegotiationRound{last},
	}); err != nil {
		return CounterResult{}, err
	}

	log.Printf("[negotiation][usecase] counter answered session_id=%s supplier_id=%s round=%d counter=%s reply=%s decision=%s",
		s.ID, supplierID, roundNumber, counterPrice, reply.Price, reply.Decision)
	return CounterResult{
		Round:                    next,
		CounterPrice:             counterPrice,
		Decision:                 reply.Decision,
		DiscountRequestedPercent: reply.DiscountPercent.Round(totalPlaces),
	}, nil
}

func (u *NegotiationUseCase) AcceptOffer(ctx context.Context, sessionID, supplierID, notes string) (entities.NegotiationSession, error) {
	sessionID, supplierID = strings.TrimSpace(sessionID), strings.TrimSpace(supplierID)
	if sessionID == "" {
		return entities.NegotiationSession{}, ErrInvalidSessionID
	}
	if supplierID == "" {
		return entities.NegotiationSession{}, ErrInvalidSupplierID
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	s, err := u.openSession(ctx, sessionID)
	if err != nil {
		return entities.NegotiationSession{}, err
	}

	rounds, err := u.repo.ListRounds(ctx, s.ID)
	if err != nil {
		log.Printf("[negotiation][usecase] list rounds failed session_id=%s err=%v", s.ID, err)
		return entities.NegotiationSession{}, err
	}
	latest, ok := latestRoundFor(rounds, supplierID)
	if !ok || !latest.OfferedPrice.IsPositive() {
		return entities.NegotiationSession{}, fmt.Errorf("%w: %s", ErrNoLiveOffer, supplierID)
	}

	now := u.clock.Now()
	finalPrice, total := latest.OfferedPrice, latest.TotalValue

	expected := s.Version
	s.Status = entities.SessionStatusAccepted
	s.WinningSupplierID = supplierID
	s.FinalPrice = &finalPrice
	s.TotalValue = &total
	s.CompletedAt = &now
	s.Notes = strings.TrimSpace(notes)
	latest.Status = entities.RoundStatusAccepted

	updated, err := u.commit(ctx, interfaces.NegotiationCommit{
		Session:         s,
		ExpectedVersion: expected,
		UpdatedRounds:   []entities.NegotiationRound{latest},
	})
	if err != nil {
		return entities.NegotiationSession{}, err
	}

	log.Printf("[negotiation][usecase] offer accepted session_id=%s supplier_id=%s final_price=%s total=%s", s.ID, supplierID, finalPrice, total)
	return updated, nil
}

// CancelSession closes a session without a winner. Open offers are marked rejected.
func (u *NegotiationUseCase) CancelSession(ctx context.Context, sessionID, reason string) (entities.NegotiationSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.NegotiationSession{}, ErrInvalidSessionID
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	s, err := u.openSession(ctx, sessionID)
	if err != nil {
		return entities.NegotiationSession{}, err
	}

	rounds, err := u.repo.ListRounds(ctx, s.ID)
	if err != nil {
		log.Printf("[negotiation][usecase] list rounds failed session_id=%s err=%v", s.ID, err)
		return entities.NegotiationSession{}, err
	}
	var rejected []entities.NegotiationRound
	for _, r := range rounds {
		if r.Status == entities.RoundStatusReceived {
			r.Status = entities.RoundStatusRejected
			rejected = append(rejected, r)
		}
	}

	now := u.clock.Now()
	expected := s.Version
	s.Status = entities.SessionStatusCancelled
	s.CompletedAt = &now
	s.Notes = strings.TrimSpace(reason)

	updated, err := u.commit(ctx, interfaces.NegotiationCommit{Session: s, ExpectedVersion: expected, UpdatedRounds: rejected})
	if err != nil {
		return entities.NegotiationSession{}, err
	}
	log.Printf("[negotiation][usecase] session cancelled session_id=%s rejected_rounds=%d", s.ID, len(rejected))
	return updated, nil
}

func (u *NegotiationUseCase) GetStatus(ctx context.Context, sessionID string) (SessionStatusView, error) {
	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return SessionStatusView{}, err
	}

	rounds, err := u.repo.ListRounds(ctx, s.ID)
	if err != nil {
		log.Printf("[negotiation][usecase] list rounds failed session_id=%s err=%v", s.ID, err)
		return SessionStatusView{}, err
	}
	sortRounds(rounds)
	return SessionStatusView{Session: s, Rounds: rounds}, nil
}

func (u *NegotiationUseCase) CompareOffers(ctx context.Context, sessionID, criteria string) (entities.OfferComparison, error) {
	c := entities.RankingCriteria(strings.ToLower(strings.TrimSpace(criteria)))
	if c == "" {
		c = entities.RankingCriteriaTotalCost
	}
	if !c.IsValid() {
		return entities.OfferComparison{}, fmt.Errorf("%w: %q", ErrInvalidCriteria, criteria)
	}

	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return entities.OfferComparison{}, err
	}

	rounds, err := u.repo.ListRounds(ctx, s.ID)
	if err != nil {
		log.Printf("[negotiation][usecase] list rounds failed session_id=%s err=%v", s.ID, err)
		return entities.OfferComparison{}, err
	}

	offers := liveOffers(rounds)
	suppliers := make(map[string]entities.Supplier, len(offers))
	for _, r := range offers {
		sup, err := u.catalog.LookupSupplier(ctx, r.SupplierID)
		if err != nil {
			log.Printf("[negotiation][usecase] supplier lookup failed supplier_id=%s err=%v", r.SupplierID, err)
			return entities.OfferComparison{}, err
		}
		suppliers[r.SupplierID] = sup
	}

	return entities.OfferComparison{
		SessionID:   s.ID,
		Criteria:    c,
		TargetPrice: s.TargetPrice,
		Ranked:      rankOffers(offers, suppliers, c),
	}, nil
}

func (u *NegotiationUseCase) getSession(ctx context.Context, sessionID string) (entities.NegotiationSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.NegotiationSession{}, ErrInvalidSessionID
	}
	s, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		log.Printf("[negotiation][usecase] get session failed session_id=%s err=%v", sessionID, err)
		return entities.NegotiationSession{}, err
	}
	if s.ID == "" {
		return entities.NegotiationSession{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s, nil
}

// openSession loads a session that still accepts mutations.
func (u *NegotiationUseCase) openSession(ctx context.Context, sessionID string) (entities.NegotiationSession, error) {
	s, err := u.getSession(ctx, sessionID)
	if err != nil {
		return entities.NegotiationSession{}, err
	}
	if s.Status.IsTerminal() {
		return entities.NegotiationSession{}, fmt.Errorf("%w: status=%s", ErrSessionTerminal, s.Status)
	}
	return s, nil
}

func (u *NegotiationUseCase) checkMaxRounds(s entities.NegotiationSession, roundNumber int) error {
	if roundNumber <= s.MaxRounds {
		return nil
	}
	if u.opts.StrictMaxRounds {
		return fmt.Errorf("%w: round=%d max_rounds=%d", ErrMaxRoundsExceeded, roundNumber, s.MaxRounds)
	}
	log.Printf("[negotiation][usecase] max_rounds exceeded (lenient) session_id=%s round=%d max_rounds=%d", s.ID, roundNumber, s.MaxRounds)
	return nil
}

// baseCost resolves the unit cost a supplier quotes from: the product's catalog cost, then
// the supplier's own base cost, then the configured default.
func (u *NegotiationUseCase) baseCost(ctx context.Context, sku string, supplier entities.Supplier) (decimal.Decimal, error) {
	p, err := u.catalog.LookupProduct(ctx, sku)
	if err != nil {
		log.Printf("[negotiation][usecase] product lookup failed sku=%s err=%v", sku, err)
		return decimal.Decimal{}, err
	}
	if p.UnitCost != nil && p.UnitCost.IsPositive() {
		return *p.UnitCost, nil
	}
	if supplier.BaseCost != nil && supplier.BaseCost.IsPositive() {
		return *supplier.BaseCost, nil
	}
	return u.opts.DefaultBaseCost, nil
}

func (u *NegotiationUseCase) commit(ctx context.Context, c interfaces.NegotiationCommit) (entities.NegotiationSession, error) {
	updated, err := u.repo.Commit(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleVersion) {
			log.Printf("[negotiation][usecase] stale session version session_id=%s expected=%d", c.Session.ID, c.ExpectedVersion)
			return entities.NegotiationSession{}, fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
		}
		log.Printf("[negotiation][usecase] commit failed session_id=%s err=%v", c.Session.ID, err)
		return entities.NegotiationSession{}, err
	}
	return updated, nil
}

func sortRounds(rounds []entities.NegotiationRound) {
	sort.SliceStable(rounds, func(i, j int) bool {
		if rounds[i].RoundNumber != rounds[j].RoundNumber {
			return rounds[i].RoundNumber < rounds[j].RoundNumber
		}
		return rounds[i].CreatedAt.Before(rounds[j].CreatedAt)
	})
}

func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
