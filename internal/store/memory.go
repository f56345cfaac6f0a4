package store

import (
	"context"
	"fmt"

	"github.com/spigell/hh-ranker/internal/records"
)

// Memory serves a dataset from memory. It is read-only after construction and safe for
// concurrent use.
type Memory struct {
	positions   []*records.Position
	positionIDs map[string]*records.Position
	candidates  map[string]*records.Candidate
	byCandidate map[string][]records.Application
	byPosition  map[string][]records.Application
}

func NewMemory(ds *Dataset) *Memory {
	m := &Memory{
		positionIDs: make(map[string]*records.Position),
		candidates:  make(map[string]*records.Candidate),
		byCandidate: make(map[string][]records.Application),
		byPosition:  make(map[string][]records.Application),
	}
	if ds == nil {
		return m
	}

	for _, p := range ds.Positions {
		if p == nil {
			continue
		}
		m.positions = append(m.positions, p)
		m.positionIDs[p.ID] = p
	}
	for _, c := range ds.Candidates {
		if c != nil {
			m.candidates[c.ID] = c
		}
	}
	for _, a := range ds.Applications {
		m.byCandidate[a.CandidateID] = append(m.byCandidate[a.CandidateID], a)
		m.byPosition[a.PositionID] = append(m.byPosition[a.PositionID], a)
	}
	return m
}

// Stores exposes the memory store through every store interface.
func (m *Memory) Stores() Stores {
	return Stores{Positions: m, Candidates: m, Applications: m}
}

func (m *Memory) GetPosition(ctx context.Context, id string) (*records.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := m.positionIDs[id]
	if !ok {
		return nil, fmt.Errorf("position %q: %w", id, ErrNotFound)
	}
	return p, nil
}

func (m *Memory) ListPositions(ctx context.Context) ([]*records.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]*records.Position(nil), m.positions...), nil
}

func (m *Memory) GetCandidate(ctx context.Context, id string) (*records.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, ok := m.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate %q: %w", id, ErrNotFound)
	}
	return c, nil
}

func (m *Memory) ApplicationsByCandidate(ctx context.Context, candidateID string) ([]records.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]records.Application(nil), m.byCandidate[candidateID]...), nil
}

func (m *Memory) ApplicationsByPosition(ctx context.Context, positionID string) ([]records.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]records.Application(nil), m.byPosition[positionID]...), nil
}
