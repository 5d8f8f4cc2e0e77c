package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrConsentRequired         = errors.New("user consent required for payment mandate creation")
	ErrMandateNotFound         = errors.New("payment mandate not found")
	ErrInvalidMandateID        = errors.New("invalid mandate_id")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInvalidCurrency         = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidMandateType      = errors.New("invalid mandate_type")
	ErrInvalidPONumber         = errors.New("invalid po_number")
	ErrMandateNotVerified      = errors.New("mandate must be verified before execution")
	ErrMandateNotExecutable    = errors.New("mandate cannot be executed in its current status")
	ErrMandateExpired          = errors.New("mandate expired")
	ErrMandateSignatureInvalid = errors.New("mandate signature invalid")
	ErrUnknownSigningKey       = errors.New("mandate signed with unknown key")
	ErrPaymentGatewayFailed    = errors.New("payment gateway failed")
)

const (
	mandateIDPrefix = "ap2"
	mandateIDHexLen = 10

	mandateSigningAlg = "RS256"
	defaultCurrency   = "USD"
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// IPaymentMandateUseCase issues and settles AP2 payment mandates.
//
// Mandate flow: created -> verified -> executed. created|verified move to expired once the
// validity window has passed (checked when the mandate is verified or executed), and any
// verification or gateway failure moves the mandate to failed.
type IPaymentMandateUseCase interface {
	CreateMandate(ctx context.Context, in CreateMandateInput) (entities.PaymentMandate, error)
	VerifyMandate(ctx context.Context, mandateID, merchantAuthorization string) (MandateVerification, error)
	ExecutePayment(ctx context.Context, mandateID, poNumber string) (entities.PaymentMandate, error)
	GetPublicKey(ctx context.Context) (PublicKeyInfo, error)
	GetMandate(ctx context.Context, mandateID string) (entities.PaymentMandate, error)
}

type CreateMandateInput struct {
	SupplierID   string
	Amount       decimal.Decimal
	Currency     string
	OrderDetails map[string]any
	SessionID    string
	PONumber     string
	MandateType  entities.MandateType
	UserConsent  bool
}

// MandateClaims is the signed claim set of a mandate token.
type MandateClaims struct {
	MandateID        string         `json:"mandate_id"`
	MandateType      string         `json:"mandate_type"`
	Amount           ClaimAmount    `json:"amount"`
	Currency         string         `json:"currency"`
	OrderDetails     map[string]any `json:"order_details,omitempty"`
	SessionID        string         `json:"session_id,omitempty"`
	PONumber         string         `json:"po_number,omitempty"`
	UserConsent      bool           `json:"user_consent"`
	ConsentTimestamp time.Time      `json:"consent_timestamp"`
	jwt.RegisteredClaims
}

// ClaimAmount is a decimal that is signed as a JSON number, so verifiers that decode the
// claim set without this type still read a numeric amount. Decoding accepts numbers and
// quoted strings.
type ClaimAmount struct {
	decimal.Decimal
}

func (a ClaimAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

type MandateVerification struct {
	Mandate entities.PaymentMandate
	Valid   bool
	Claims  *MandateClaims
	Error   string
}

type PublicKeyInfo struct {
	KeyID        string
	Algorithm    string
	PublicKeyPEM string
}

type MandateOptions struct {
	Issuer   string
	Audience string
	Validity time.Duration
	// AutoVerifyOnExecute lets ExecutePayment verify a created mandate on the caller's
	// behalf instead of rejecting it.
	AutoVerifyOnExecute bool
}

type PaymentMandateUseCase struct {
	repo    interfaces.IPaymentMandateRepository
	catalog interfaces.ISupplierCatalog
	keys    interfaces.ISigningKeyProvider
	gateway interfaces.IPaymentGateway
	clock   interfaces.IClock
	ids     interfaces.IIDGenerator
	opts    MandateOptions
	locks   *entityLocks
}

var _ IPaymentMandateUseCase = (*PaymentMandateUseCase)(nil)

// NewPaymentMandateUseCase wires the mandate service. gateway may be nil, in which case
// execution only records the outcome locally.
func NewPaymentMandateUseCase(
	repo interfaces.IPaymentMandateRepository,
	catalog interfaces.ISupplierCatalog,
	keys interfaces.ISigningKeyProvider,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	opts MandateOptions,
) *PaymentMandateUseCase {
	if opts.Issuer == "" {
		opts.Issuer = "SupplyMind"
	}
	if opts.Audience == "" {
		opts.Audience = "ap2-payment-gateway"
	}
	if opts.Validity <= 0 {
		opts.Validity = 24 * time.Hour
	}
	return &PaymentMandateUseCase{
		repo:    repo,
		catalog: catalog,
		keys:    keys,
		gateway: gateway,
		clock:   clock,
		ids:     ids,
		opts:    opts,
		locks:   newEntityLocks(),
	}
}

func (u *PaymentMandateUseCase) CreateMandate(ctx context.Context, in CreateMandateInput) (entities.PaymentMandate, error) {
	if !in.UserConsent {
		log.Printf("[mandate][usecase] create rejected: consent missing supplier_id=%s", in.SupplierID)
		return entities.PaymentMandate{}, ErrConsentRequired
	}
	supplierID := strings.TrimSpace(in.SupplierID)
	if supplierID == "" {
		return entities.PaymentMandate{}, ErrInvalidSupplierID
	}
	if !in.Amount.IsPositive() {
		return entities.PaymentMandate{}, ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if !currencyCode.MatchString(currency) {
		return entities.PaymentMandate{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, in.Currency)
	}
	mandateType := in.MandateType
	if mandateType == "" {
		mandateType = entities.MandateTypeCheckout
	}
	if !mandateType.IsValid() {
		return entities.PaymentMandate{}, fmt.Errorf("%w: %q", ErrInvalidMandateType, in.MandateType)
	}

	supplier, err := u.catalog.LookupSupplier(ctx, supplierID)
	if err != nil {
		log.Printf("[mandate][usecase] supplier lookup failed supplier_id=%s err=%v", supplierID, err)
		return entities.PaymentMandate{}, err
	}
	if supplier.ID == "" {
		return entities.PaymentMandate{}, fmt.Errorf("%w: %s", ErrSupplierNotFound, supplierID)
	}

	key, err := u.signingKey(ctx)
	if err != nil {
		return entities.PaymentMandate{}, err
	}

	now := u.clock.Now()
	id := u.ids.NewID(mandateIDPrefix, mandateIDHexLen)
	expiresAt := now.Add(u.opts.Validity)
	amount := in.Amount.Round(totalPlaces)

	claims := MandateClaims{
		MandateID:        id,
		MandateType:      string(mandateType),
		Amount:           ClaimAmount{amount},
		Currency:         currency,
		OrderDetails:     in.OrderDetails,
		SessionID:        strings.TrimSpace(in.SessionID),
		PONumber:         strings.TrimSpace(in.PONumber),
		UserConsent:      true,
		ConsentTimestamp: now,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    u.opts.Issuer,
			Subject:   supplierID,
			Audience:  jwt.ClaimStrings{u.opts.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        id,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = key.KeyID
	signed, err := token.SignedString(key.PrivateKey)
	if err != nil {
		log.Printf("[mandate][usecase] signing failed mandate_id=%s err=%v", id, err)
		return entities.PaymentMandate{}, fmt.Errorf("sign mandate: %w", err)
	}

	m := entities.PaymentMandate{
		ID:                 id,
		SessionID:          claims.SessionID,
		PONumber:           claims.PONumber,
		SupplierID:         supplierID,
		Amount:             amount,
		Currency:           currency,
		MandateType:        mandateType,
		SignedToken:        signed,
		SignatureAlgorithm: mandateSigningAlg,
		PublicKeyID:        key.KeyID,
		Status:             entities.MandateStatusCreated,
		CreatedAt:          now,
		ExpiresAt:          expiresAt,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[mandate][usecase] persist failed mandate_id=%s err=%v", id, err)
		return entities.PaymentMandate{}, err
	}

	log.Printf("[mandate][usecase] mandate created mandate_id=%s supplier_id=%s amount=%s currency=%s expires_at=%s",
		id, supplierID, amount, currency, expiresAt.Format(time.RFC3339))
	return created, nil
}

func (u *PaymentMandateUseCase) VerifyMandate(ctx context.Context, mandateID, merchantAuthorization string) (MandateVerification, error) {
	mandateID = strings.TrimSpace(mandateID)
	if mandateID == "" {
		return MandateVerification{}, ErrInvalidMandateID
	}

	unlock := u.locks.lock(mandateID)
	defer unlock()

	m, err := u.getMandate(ctx, mandateID)
	if err != nil {
		return MandateVerification{}, err
	}
	return u.verify(ctx, m, strings.TrimSpace(merchantAuthorization))
}

// verify runs with the mandate lock held.
func (u *PaymentMandateUseCase) verify(ctx context.Context, m entities.PaymentMandate, merchantAuthorization string) (MandateVerification, error) {
	switch m.Status {
	case entities.MandateStatusExpired, entities.MandateStatusFailed:
		return MandateVerification{Mandate: m, Valid: false, Error: terminalReason(m)}, nil
	}

	now := u.clock.Now()
	if m.Status != entities.MandateStatusExecuted && m.IsExpiredAt(now) {
		log.Printf("[mandate][usecase] mandate expired mandate_id=%s expires_at=%s", m.ID, m.ExpiresAt.Format(time.RFC3339Nano))
		m.Status = entities.MandateStatusExpired
		m.ErrorMessage = "mandate expired"
		saved, err := u.save(ctx, m)
		if err != nil {
			return MandateVerification{}, err
		}
		return MandateVerification{Mandate: saved, Valid: false, Error: "Mandate expired"}, nil
	}

	key, err := u.signingKey(ctx)
	if err != nil {
		return MandateVerification{}, err
	}
	claims, err := u.parseToken(m.SignedToken, key, now)
	if err != nil {
		// An executed mandate is a closed audit record; report without touching it.
		if m.Status == entities.MandateStatusExecuted {
			return MandateVerification{Mandate: m, Valid: false, Error: err.Error()}, nil
		}

		if errors.Is(err, jwt.ErrTokenExpired) {
			m.Status = entities.MandateStatusExpired
			m.ErrorMessage = "token expired"
		} else {
			m.Status = entities.MandateStatusFailed
			m.ErrorMessage = err.Error()
		}
		log.Printf("[mandate][usecase] verification failed mandate_id=%s status=%s err=%v", m.ID, m.Status, err)
		saved, serr := u.save(ctx, m)
		if serr != nil {
			return MandateVerification{}, serr
		}
		return MandateVerification{Mandate: saved, Valid: false, Error: m.ErrorMessage}, nil
	}

	if m.Status == entities.MandateStatusExecuted {
		return MandateVerification{Mandate: m, Valid: true, Claims: claims}, nil
	}

	m.Status = entities.MandateStatusVerified
	if merchantAuthorization != "" {
		m.MerchantAuthorization = merchantAuthorization
	}
	saved, err := u.save(ctx, m)
	if err != nil {
		return MandateVerification{}, err
	}
	log.Printf("[mandate][usecase] mandate verified mandate_id=%s merchant_authorization=%t", m.ID, merchantAuthorization != "")
	return MandateVerification{Mandate: saved, Valid: true, Claims: claims}, nil
}

func (u *PaymentMandateUseCase) ExecutePayment(ctx context.Context, mandateID, poNumber string) (entities.PaymentMandate, error) {
	mandateID, poNumber = strings.TrimSpace(mandateID), strings.TrimSpace(poNumber)
	if mandateID == "" {
		return entities.PaymentMandate{}, ErrInvalidMandateID
	}
	if poNumber == "" {
		return entities.PaymentMandate{}, ErrInvalidPONumber
	}

	unlock := u.locks.lock(mandateID)
	defer unlock()

	m, err := u.getMandate(ctx, mandateID)
	if err != nil {
		return entities.PaymentMandate{}, err
	}

	switch m.Status {
	case entities.MandateStatusCreated:
		if !u.opts.AutoVerifyOnExecute {
			return entities.PaymentMandate{}, ErrMandateNotVerified
		}
		m, err = u.autoVerifyOnExecute(ctx, m)
		if err != nil {
			return entities.PaymentMandate{}, err
		}
	case entities.MandateStatusVerified:
		if m.IsExpiredAt(u.clock.Now()) {
			m.Status = entities.MandateStatusExpired
			m.ErrorMessage = "mandate expired"
			if _, err := u.save(ctx, m); err != nil {
				return entities.PaymentMandate{}, err
			}
			log.Printf("[mandate][usecase] execute rejected: expired mandate_id=%s", m.ID)
			return entities.PaymentMandate{}, ErrMandateExpired
		}
	default:
		return entities.PaymentMandate{}, fmt.Errorf("%w: status=%s", ErrMandateNotExecutable, m.Status)
	}

	if u.gateway != nil {
		paymentID, paymentStatus, err := u.handOff(ctx, m, poNumber)
		if err != nil {
			m.Status = entities.MandateStatusFailed
			m.ErrorMessage = err.Error()
			if _, serr := u.save(ctx, m); serr != nil {
				return entities.PaymentMandate{}, serr
			}
			return entities.PaymentMandate{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		m.ProviderPaymentID = paymentID
		m.ProviderStatus = paymentStatus
	}

	now := u.clock.Now()
	m.Status = entities.MandateStatusExecuted
	m.ExecutedAt = &now
	m.PONumber = poNumber
	m.ErrorMessage = ""
	saved, err := u.save(ctx, m)
	if err != nil {
		return entities.PaymentMandate{}, err
	}

	log.Printf("[mandate][usecase] payment executed mandate_id=%s po_number=%s amount=%s provider_payment_id=%s",
		m.ID, poNumber, m.Amount, m.ProviderPaymentID)
	return saved, nil
}

// autoVerifyOnExecute verifies a created mandate as part of ExecutePayment. A mandate that
// fails here ends expired or failed exactly as an explicit VerifyMandate would leave it.
func (u *PaymentMandateUseCase) autoVerifyOnExecute(ctx context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error) {
	log.Printf("[mandate][usecase] auto-verify on execute mandate_id=%s", m.ID)
	res, err := u.verify(ctx, m, "")
	if err != nil {
		return entities.PaymentMandate{}, err
	}
	if !res.Valid {
		if res.Mandate.Status == entities.MandateStatusExpired {
			return entities.PaymentMandate{}, fmt.Errorf("%w: %s", ErrMandateExpired, res.Error)
		}
		return entities.PaymentMandate{}, fmt.Errorf("%w: %s", ErrMandateSignatureInvalid, res.Error)
	}
	return res.Mandate, nil
}

type gatewayPayload struct {
	TransactionAmount float64        `json:"transaction_amount"`
	Description       string         `json:"description"`
	ExternalReference string         `json:"external_reference"`
	Metadata          map[string]any `json:"metadata"`
}

func (u *PaymentMandateUseCase) handOff(ctx context.Context, m entities.PaymentMandate, poNumber string) (string, string, error) {
	body, err := json.Marshal(gatewayPayload{
		TransactionAmount: m.Amount.InexactFloat64(),
		Description:       fmt.Sprintf("AP2 mandate %s for supplier %s", m.ID, m.SupplierID),
		ExternalReference: poNumber,
		Metadata: map[string]any{
			"mandate_id":     m.ID,
			"supplier_id":    m.SupplierID,
			"session_id":     m.SessionID,
			"currency":       m.Currency,
			"signed_mandate": m.SignedToken,
		},
	})
	if err != nil {
		return "", "", err
	}

	paymentID, status, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[mandate][usecase] gateway handoff failed mandate_id=%s err=%v", m.ID, err)
		return "", "", err
	}
	return paymentID, status, nil
}

func (u *PaymentMandateUseCase) GetPublicKey(ctx context.Context) (PublicKeyInfo, error) {
	key, err := u.signingKey(ctx)
	if err != nil {
		return PublicKeyInfo{}, err
	}
	return PublicKeyInfo{KeyID: key.KeyID, Algorithm: mandateSigningAlg, PublicKeyPEM: key.PublicKeyPEM}, nil
}

func (u *PaymentMandateUseCase) GetMandate(ctx context.Context, mandateID string) (entities.PaymentMandate, error) {
	mandateID = strings.TrimSpace(mandateID)
	if mandateID == "" {
		return entities.PaymentMandate{}, ErrInvalidMandateID
	}
	return u.getMandate(ctx, mandateID)
}

func (u *PaymentMandateUseCase) getMandate(ctx context.Context, mandateID string) (entities.PaymentMandate, error) {
	m, err := u.repo.GetByID(ctx, mandateID)
	if err != nil {
		log.Printf("[mandate][usecase] get mandate failed mandate_id=%s err=%v", mandateID, err)
		return entities.PaymentMandate{}, err
	}
	if m.ID == "" {
		return entities.PaymentMandate{}, fmt.Errorf("%w: %s", ErrMandateNotFound, mandateID)
	}
	return m, nil
}

// parseToken checks signature, algorithm, issuer and audience. The token's exp is given one
// second of leeway since NumericDate drops sub-second precision; the stored expires_at is
// the authoritative bound and is checked before parsing.
func (u *PaymentMandateUseCase) parseToken(signed string, key interfaces.SigningKey, now time.Time) (*MandateClaims, error) {
	claims := &MandateClaims{}
	_, err := jwt.ParseWithClaims(signed, claims,
		func(t *jwt.Token) (any, error) {
			if kid, _ := t.Header["kid"].(string); kid != key.KeyID {
				return nil, fmt.Errorf("%w: kid=%q", ErrUnknownSigningKey, kid)
			}
			return &key.PrivateKey.PublicKey, nil
		},
		jwt.WithValidMethods([]string{mandateSigningAlg}),
		jwt.WithAudience(u.opts.Audience),
		jwt.WithIssuer(u.opts.Issuer),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(time.Second),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (u *PaymentMandateUseCase) signingKey(ctx context.Context) (interfaces.SigningKey, error) {
	key, err := u.keys.SigningKey(ctx)
	if err != nil {
		log.Printf("[mandate][usecase] signing key unavailable err=%v", err)
		return interfaces.SigningKey{}, fmt.Errorf("signing key unavailable: %w", err)
	}
	return key, nil
}

func (u *PaymentMandateUseCase) save(ctx context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error) {
	saved, err := u.repo.Update(ctx, m, m.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleVersion) {
			log.Printf("[mandate][usecase] stale mandate version mandate_id=%s expected=%d", m.ID, m.Version)
			return entities.PaymentMandate{}, fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
		}
		log.Printf("[mandate][usecase] update failed mandate_id=%s err=%v", m.ID, err)
		return entities.PaymentMandate{}, err
	}
	return saved, nil
}

func terminalReason(m entities.PaymentMandate) string {
	if m.ErrorMessage != "" {
		return m.ErrorMessage
	}
	return "mandate " + string(m.Status)
}
