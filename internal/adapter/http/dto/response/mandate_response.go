package response

import (
	"time"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase"
)

const executedMessage = "Payment executed successfully"

type MandateCreatedResponse struct {
	MandateID          string    `json:"mandate_id"`
	SignedMandate      string    `json:"signed_mandate"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	SupplierID         string    `json:"supplier_id"`
	MandateType        string    `json:"mandate_type"`
	SignatureAlgorithm string    `json:"signature_algorithm"`
	PublicKeyID        string    `json:"public_key_id"`
	CreatedAt          time.Time `json:"created_at"`
	ExpiresAt          time.Time `json:"expires_at"`
	Status             string    `json:"status"`
	SessionID          *string   `json:"session_id"`
	PONumber           *string   `json:"po_number"`
}

type VerificationResponse struct {
	MandateID      string                 `json:"mandate_id"`
	Valid          bool                   `json:"valid"`
	Status         string                 `json:"status"`
	Error          string                 `json:"error,omitempty"`
	ExpiredAt      *time.Time             `json:"expired_at,omitempty"`
	DecodedPayload *usecase.MandateClaims `json:"decoded_payload,omitempty"`
	Amount         float64                `json:"amount"`
	Currency       string                 `json:"currency"`
	SupplierID     string                 `json:"supplier_id"`
}

type ExecutionResponse struct {
	MandateID         string     `json:"mandate_id"`
	Status            string     `json:"status"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	SupplierID        string     `json:"supplier_id"`
	PONumber          string     `json:"po_number"`
	ExecutedAt        *time.Time `json:"executed_at"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
	ProviderStatus    string     `json:"provider_status,omitempty"`
	Message           string     `json:"message"`
}

// MandateResponse is the audit view of a stored mandate.
type MandateResponse struct {
	MandateID             string     `json:"mandate_id"`
	SessionID             string     `json:"session_id,omitempty"`
	PONumber              string     `json:"po_number,omitempty"`
	SupplierID            string     `json:"supplier_id"`
	Amount                float64    `json:"amount"`
	Currency              string     `json:"currency"`
	MandateType           string     `json:"mandate_type"`
	SignedMandate         string     `json:"signed_mandate"`
	SignatureAlgorithm    string     `json:"signature_algorithm"`
	PublicKeyID           string     `json:"public_key_id"`
	MerchantAuthorization string     `json:"merchant_authorization,omitempty"`
	ProviderPaymentID     string     `json:"provider_payment_id,omitempty"`
	ProviderStatus        string     `json:"provider_status,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	ExpiresAt             time.Time  `json:"expires_at"`
	ExecutedAt            *time.Time `json:"executed_at,omitempty"`
	ErrorMessage          string     `json:"error_message,omitempty"`
}

type PublicKeyResponse struct {
	KeyID        string `json:"key_id"`
	Algorithm    string `json:"algorithm"`
	PublicKeyPEM string `json:"public_key_pem"`
}

func FromMandateCreated(m entities.PaymentMandate) MandateCreatedResponse {
	return MandateCreatedResponse{
		MandateID:          m.ID,
		SignedMandate:      m.SignedToken,
		Amount:             m.Amount.InexactFloat64(),
		Currency:           m.Currency,
		SupplierID:         m.SupplierID,
		MandateType:        string(m.MandateType),
		SignatureAlgorithm: m.SignatureAlgorithm,
		PublicKeyID:        m.PublicKeyID,
		CreatedAt:          m.CreatedAt,
		ExpiresAt:          m.ExpiresAt,
		Status:             string(m.Status),
		SessionID:          optionalString(m.SessionID),
		PONumber:           optionalString(m.PONumber),
	}
}

func FromVerification(v usecase.MandateVerification) VerificationResponse {
	m := v.Mandate
	res := VerificationResponse{
		MandateID:      m.ID,
		Valid:          v.Valid,
		Status:         string(m.Status),
		Error:          v.Error,
		DecodedPayload: v.Claims,
		Amount:         m.Amount.InexactFloat64(),
		Currency:       m.Currency,
		SupplierID:     m.SupplierID,
	}
	if m.Status == entities.MandateStatusExpired {
		expiredAt := m.ExpiresAt
		res.ExpiredAt = &expiredAt
	}
	return res
}

func FromExecution(m entities.PaymentMandate) ExecutionResponse {
	return ExecutionResponse{
		MandateID:         m.ID,
		Status:            string(m.Status),
		Amount:            m.Amount.InexactFloat64(),
		Currency:          m.Currency,
		SupplierID:        m.SupplierID,
		PONumber:          m.PONumber,
		ExecutedAt:        m.ExecutedAt,
		ProviderPaymentID: m.ProviderPaymentID,
		ProviderStatus:    m.ProviderStatus,
		Message:           executedMessage,
	}
}

func FromMandate(m entities.PaymentMandate) MandateResponse {
	return MandateResponse{
		MandateID:             m.ID,
		SessionID:             m.SessionID,
		PONumber:              m.PONumber,
		SupplierID:            m.SupplierID,
		Amount:                m.Amount.InexactFloat64(),
		Currency:              m.Currency,
		MandateType:           string(m.MandateType),
		SignedMandate:         m.SignedToken,
		SignatureAlgorithm:    m.SignatureAlgorithm,
		PublicKeyID:           m.PublicKeyID,
		MerchantAuthorization: m.MerchantAuthorization,
		ProviderPaymentID:     m.ProviderPaymentID,
		ProviderStatus:        m.ProviderStatus,
		Status:                string(m.Status),
		CreatedAt:             m.CreatedAt,
		ExpiresAt:             m.ExpiresAt,
		ExecutedAt:            m.ExecutedAt,
		ErrorMessage:          m.ErrorMessage,
	}
}

func FromPublicKey(k usecase.PublicKeyInfo) PublicKeyResponse {
	return PublicKeyResponse{KeyID: k.KeyID, Algorithm: k.Algorithm, PublicKeyPEM: k.PublicKeyPEM}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
