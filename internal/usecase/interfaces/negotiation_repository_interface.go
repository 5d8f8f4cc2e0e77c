package interfaces

//go:generate mockgen -source=negotiation_repository_interface.go -destination=mocks/negotiation_repository_mock.go -package=mock_interfaces

import (
	"context"
	"errors"
	"supplymind/internal/domain/entities"
)

// ErrStaleVersion is returned by repositories when a conditional write finds the stored
// version different from the one the caller read.
var ErrStaleVersion = errors.New("stale entity version")

// NegotiationCommit is one atomic state transition of a session.
//
// Session is written only if the stored version equals ExpectedVersion; the repository
// stores it with Version = ExpectedVersion + 1. NewRounds must not exist yet,
// UpdatedRounds must.
type NegotiationCommit struct {
	Session         entities.NegotiationSession
	ExpectedVersion int64
	NewRounds       []entities.NegotiationRound
	UpdatedRounds   []entities.NegotiationRound
}

// INegotiationRepository abstracts persistence for sessions and their rounds
// (negotiation_sessions + negotiation_rounds).
//
// Lookups return a zero-value entity and nil error when nothing is stored.

type INegotiationRepository interface {
	CreateSession(ctx context.Context, s entities.NegotiationSession) (entities.NegotiationSession, error)
	GetSession(ctx context.Context, id string) (entities.NegotiationSession, error)
	ListRounds(ctx context.Context, sessionID string) ([]entities.NegotiationRound, error)
	Commit(ctx context.Context, c NegotiationCommit) (entities.NegotiationSession, error)
}
