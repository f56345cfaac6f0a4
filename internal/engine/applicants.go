package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hh-ranker/internal/records"
	"github.com/spigell/hh-ranker/internal/store"
)

// applicants resolves the distinct candidates behind a list of applications concurrently.
// The result keeps application order. Candidates missing from the store are skipped.
func (e *Engine) applicants(ctx context.Context, log *zap.Logger, apps []records.Application) ([]*records.Candidate, error) {
	ids := candidateIDs(apps)
	if len(ids) > e.cfg.MaxPool {
		return nil, fmt.Errorf("%w: %d applicants, maximum is %d", ErrPoolTooLarge, len(ids), e.cfg.MaxPool)
	}

	found := make([]*records.Candidate, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Screening.Concurrency)

	for i, id := range ids {
		g.Go(func() error {
			c, err := e.stores.Candidates.GetCandidate(gctx, id)
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("applicant no longer exists", zap.String("candidate_id", id))
				return nil
			}
			if err != nil {
				return fmt.Errorf("get candidate %s: %w", id, err)
			}
			found[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]*records.Candidate, 0, len(found))
	for _, c := range found {
		if c != nil {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func candidateIDs(apps []records.Application) []string {
	seen := make(map[string]struct{}, len(apps))
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		if a.CandidateID == "" {
			continue
		}
		if _, ok := seen[a.CandidateID]; ok {
			continue
		}
		seen[a.CandidateID] = struct{}{}
		ids = append(ids, a.CandidateID)
	}
	return ids
}
