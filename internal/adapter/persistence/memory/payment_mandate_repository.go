package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"
)

var ErrMandateExists = errors.New("mandate already exists")

type PaymentMandateRepository struct {
	mu       sync.RWMutex
	mandates map[string]entities.PaymentMandate
}

var _ interfaces.IPaymentMandateRepository = (*PaymentMandateRepository)(nil)

func NewPaymentMandateRepository() *PaymentMandateRepository {
	return &PaymentMandateRepository{mandates: make(map[string]entities.PaymentMandate)}
}

func (r *PaymentMandateRepository) Create(_ context.Context, m entities.PaymentMandate) (entities.PaymentMandate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mandates[m.ID]; ok {
		return entities.PaymentMandate{}, fmt.Errorf("%w: %s", ErrMandateExists, m.ID)
	}
	m.Version = 1
	r.mandates[m.ID] = m
	return m, nil
}

func (r *PaymentMandateRepository) GetByID(_ context.Context, id string) (entities.PaymentMandate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.mandates[id], nil
}

func (r *PaymentMandateRepository) Update(_ context.Context, m entities.PaymentMandate, expectedVersion int64) (entities.PaymentMandate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.mandates[m.ID]
	if !ok || stored.Version != expectedVersion {
		return entities.PaymentMandate{}, interfaces.ErrStaleVersion
	}
	m.Version = expectedVersion + 1
	r.mandates[m.ID] = m
	return m, nil
}
