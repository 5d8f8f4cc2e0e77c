package interfaces

//go:generate mockgen -source=payment_mandate_repository_interface.go -destination=mocks/payment_mandate_repository_mock.go -package=mock_interfaces

import (
	"context"
	"supplymind/internal/domain/entities"
)

// IPaymentMandateRepository abstracts persistence for PaymentMandate (payment_mandates).
//
// Mandates are append-only audit records: there is no delete. Update is conditioned on
// expectedVersion and returns ErrStaleVersion when another writer got there first.

type IPaymentMandateRepository interface {
	Create(ctx context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMandate, error)
	Update(ctx context.Context, m entities.PaymentMandate, expectedVersion int64) (entities.PaymentMandate, error)
}
