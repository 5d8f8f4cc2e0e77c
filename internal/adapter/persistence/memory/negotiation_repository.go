package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"supplymind/internal/domain/entities"
	"supplymind/internal/usecase/interfaces"
)

var (
	ErrSessionExists = errors.New("session already exists")
	ErrRoundExists   = errors.New("round already exists")
	ErrRoundMissing  = errors.New("round does not exist")
)

// NegotiationRepository keeps sessions and rounds in process memory. Every Commit is
// applied under one lock, so it is atomic the same way the DynamoDB transaction is.
type NegotiationRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.NegotiationSession
	rounds   map[string][]entities.NegotiationRound
}

var _ interfaces.INegotiationRepository = (*NegotiationRepository)(nil)

func NewNegotiationRepository() *NegotiationRepository {
	return &NegotiationRepository{
		sessions: make(map[string]entities.NegotiationSession),
		rounds:   make(map[string][]entities.NegotiationRound),
	}
}

func (r *NegotiationRepository) CreateSession(_ context.Context, s entities.NegotiationSession) (entities.NegotiationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; ok {
		return entities.NegotiationSession{}, fmt.Errorf("%w: %s", ErrSessionExists, s.ID)
	}
	s.Version = 1
	r.sessions[s.ID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *NegotiationRepository) GetSession(_ context.Context, id string) (entities.NegotiationSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return entities.NegotiationSession{}, nil
	}
	return cloneSession(s), nil
}

func (r *NegotiationRepository) ListRounds(_ context.Context, sessionID string) ([]entities.NegotiationRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.rounds[sessionID]), nil
}

func (r *NegotiationRepository) Commit(_ context.Context, c interfaces.NegotiationCommit) (entities.NegotiationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[c.Session.ID]
	if !ok || stored.Version != c.ExpectedVersion {
		return entities.NegotiationSession{}, interfaces.ErrStaleVersion
	}

	rounds := slices.Clone(r.rounds[c.Session.ID])
	index := make(map[string]int, len(rounds))
	for i, rd := range rounds {
		index[rd.ID] = i
	}
	for _, rd := range c.UpdatedRounds {
		i, ok := index[rd.ID]
		if !ok {
			return entities.NegotiationSession{}, fmt.Errorf("%w: %s", ErrRoundMissing, rd.ID)
		}
		rounds[i] = rd
	}
	for _, rd := range c.NewRounds {
		if _, ok := index[rd.ID]; ok {
			return entities.NegotiationSession{}, fmt.Errorf("%w: %s", ErrRoundExists, rd.ID)
		}
		index[rd.ID] = len(rounds)
		rounds = append(rounds, rd)
	}

	s := cloneSession(c.Session)
	s.Version = c.ExpectedVersion + 1
	r.sessions[s.ID] = s
	r.rounds[s.ID] = rounds
	return cloneSession(s), nil
}

func cloneSession(s entities.NegotiationSession) entities.NegotiationSession {
	s.Items = slices.Clone(s.Items)
	s.SupplierIDs = slices.Clone(s.SupplierIDs)
	return s
}
