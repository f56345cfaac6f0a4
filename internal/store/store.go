// Package store defines where positions, candidates and application history come from
// and provides a dataset-backed implementation.
package store

import (
	"context"
	"errors"

	"github.com/spigell/hh-ranker/internal/records"
)

// ErrNotFound is returned when an id does not resolve.
var ErrNotFound = errors.New("not found")

type PositionStore interface {
	GetPosition(ctx context.Context, id string) (*records.Position, error)
	// ListPositions returns every open position in a stable order.
	ListPositions(ctx context.Context) ([]*records.Position, error)
}

type CandidateStore interface {
	GetCandidate(ctx context.Context, id string) (*records.Candidate, error)
}

type ApplicationStore interface {
	ApplicationsByCandidate(ctx context.Context, candidateID string) ([]records.Application, error)
	ApplicationsByPosition(ctx context.Context, positionID string) ([]records.Application, error)
}

// Stores bundles the three collaborators the engine reads from.
type Stores struct {
	Positions    PositionStore
	Candidates   CandidateStore
	Applications ApplicationStore
}
