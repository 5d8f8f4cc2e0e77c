package request

import (
	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateMandateArgs struct {
	SupplierID   string           `json:"supplier_id" binding:"required"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	Currency     string           `json:"currency"`
	OrderDetails map[string]any   `json:"order_details"`
	SessionID    string           `json:"session_id"`
	PONumber     string           `json:"po_number"`
	MandateType  string           `json:"mandate_type"`
	UserConsent  bool             `json:"user_consent"`
}

func (a CreateMandateArgs) ToInput() usecase.CreateMandateInput {
	in := usecase.CreateMandateInput{
		SupplierID:   a.SupplierID,
		Currency:     a.Currency,
		OrderDetails: a.OrderDetails,
		SessionID:    a.SessionID,
		PONumber:     a.PONumber,
		MandateType:  entities.MandateType(a.MandateType),
		UserConsent:  a.UserConsent,
	}
	if a.Amount != nil {
		in.Amount = *a.Amount
	}
	return in
}

type VerifyMandateArgs struct {
	MandateID             string `json:"mandate_id" binding:"required"`
	MerchantAuthorization string `json:"merchant_authorization"`
}

type ExecutePaymentArgs struct {
	MandateID string `json:"mandate_id" binding:"required"`
	PONumber  string `json:"po_number" binding:"required"`
}
