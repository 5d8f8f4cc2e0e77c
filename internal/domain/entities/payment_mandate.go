package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MandateStatus represents the AP2 mandate lifecycle.
//
// Transitions are forward-only:
//   - created -> verified -> executed
//   - created|verified -> expired (lazy, evaluated on verify/execute)
//   - any non-terminal -> failed
//
// executed, expired and failed are terminal.
type MandateStatus string

const (
	MandateStatusCreated  MandateStatus = "created"
	MandateStatusVerified MandateStatus = "verified"
	MandateStatusExecuted MandateStatus = "executed"
	MandateStatusExpired  MandateStatus = "expired"
	MandateStatusFailed   MandateStatus = "failed"
)

func (s MandateStatus) IsTerminal() bool {
	switch s {
	case MandateStatusExecuted, MandateStatusExpired, MandateStatusFailed:
		return true
	}
	return false
}

type MandateType string

const (
	MandateTypeCheckout  MandateType = "checkout"
	MandateTypeRecurring MandateType = "recurring"
	MandateTypePreauth   MandateType = "preauth"
)

func (t MandateType) IsValid() bool {
	switch t {
	case MandateTypeCheckout, MandateTypeRecurring, MandateTypePreauth:
		return true
	}
	return false
}

// PaymentMandate is a signed, time-boxed payment authorization.
//
// Storage model (DynamoDB):
//   - table payment_mandates, PK: mandate_id
//   - records are never deleted (audit trail)
//
// SessionID and PONumber are weak references kept for reconciliation only.
type PaymentMandate struct {
	ID                    string          `json:"mandate_id"`
	SessionID             string          `json:"session_id,omitempty"`
	PONumber              string          `json:"po_number,omitempty"`
	SupplierID            string          `json:"supplier_id"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency"`
	MandateType           MandateType     `json:"mandate_type"`
	SignedToken           string          `json:"signed_mandate"`
	SignatureAlgorithm    string          `json:"signature_algorithm"`
	PublicKeyID           string          `json:"public_key_id"`
	MerchantAuthorization string          `json:"merchant_authorization,omitempty"`
	ProviderPaymentID     string          `json:"provider_payment_id,omitempty"`
	ProviderStatus        string          `json:"provider_status,omitempty"`
	Status                MandateStatus   `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	ExpiresAt             time.Time       `json:"expires_at"`
	ExecutedAt            *time.Time      `json:"executed_at,omitempty"`
	ErrorMessage          string          `json:"error_message,omitempty"`
	Version               int64           `json:"version"`
}

// IsExpiredAt reports whether the mandate validity window has passed at now.
func (m PaymentMandate) IsExpiredAt(now time.Time) bool {
	return now.After(m.ExpiresAt)
}
