// Package engine wires stores, pool preparation and the scorers into the four ranking
// operations exposed to callers.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/hh-ranker/internal/filtering"
	"github.com/spigell/hh-ranker/internal/fit"
	"github.com/spigell/hh-ranker/internal/logger"
	"github.com/spigell/hh-ranker/internal/preference"
	"github.com/spigell/hh-ranker/internal/records"
	"github.com/spigell/hh-ranker/internal/similarity"
	"github.com/spigell/hh-ranker/internal/store"
)

// ErrPoolTooLarge is returned when a pool exceeds Config.MaxPool. Pools are never truncated.
var ErrPoolTooLarge = errors.New("pool exceeds the configured maximum")

type Engine struct {
	stores store.Stores
	cfg    Config
	log    *zap.Logger

	knn    *similarity.Recommender
	ranker *preference.Ranker
	scorer *fit.Scorer
}

// Personalized is a personalized ranking together with what it was derived from.
type Personalized struct {
	Results []records.ScoredResult `json:"results"`
	BasedOn string                 `json:"based_on"`
}

func New(stores store.Stores, cfg Config, log *zap.Logger) (*Engine, error) {
	if stores.Positions == nil || stores.Candidates == nil || stores.Applications == nil {
		return nil, errors.New("positions, candidates and applications stores are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		stores: stores,
		cfg:    cfg,
		log:    log,
		knn:    similarity.New(cfg.Similarity.Weights),
		ranker: preference.NewRanker(cfg.Buckets),
		scorer: fit.New(),
	}, nil
}

// SimilarTo returns up to limit positions of the given mode closest to the target.
// A non-positive limit uses the configured default, an empty mode the target's own.
func (e *Engine) SimilarTo(ctx context.Context, positionID string, mode records.Mode, limit int) ([]records.ScoredResult, error) {
	if limit <= 0 {
		limit = e.cfg.Limits.Similar
	}

	method := records.MethodSimilarity
	if e.cfg.Similarity.Method == SimilarToken {
		method = records.MethodTokenJaccard
	}
	target, err := e.stores.Positions.GetPosition(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("get target position: %w", err)
	}
	if mode == "" {
		mode = target.Mode()
	}
	log := e.requestLogger(mode, method)

	steps := e.poolFilters(mode)
	steps = append(steps, filtering.NewExcludeIDs("target", []string{target.ID}))

	pool, err := e.pool(ctx, log, steps)
	if err != nil {
		return nil, err
	}

	var results []records.ScoredResult
	if method == records.MethodTokenJaccard {
		results = e.ranker.SimilarItems(target, pool.Items, mode, limit)
	} else {
		results = e.knn.NearestNeighbors(target, pool.Items, mode, limit)
	}

	log.Info("similar positions ranked",
		zap.String("position_id", target.ID),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// PersonalizedFor ranks unseen positions for a candidate from their application history.
// Without usable history the popularity order is returned and BasedOn reports it.
func (e *Engine) PersonalizedFor(ctx context.Context, candidateID string, mode records.Mode, limit int) (*Personalized, error) {
	if limit <= 0 {
		limit = e.cfg.Limits.Personalized
	}
	if mode == "" {
		mode = records.ModeJob
	}
	log := e.requestLogger(mode, e.cfg.Personalize.Method)

	candidate, err := e.stores.Candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	apps, err := e.stores.Applications.ApplicationsByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("get applications of %s: %w", candidate.ID, err)
	}

	steps := append(e.poolFilters(mode), filtering.NewAppliedHistory(apps))

	var out *Personalized
	switch e.cfg.Personalize.Method {
	case PersonalizeKNN:
		out, err = e.personalizedKNN(ctx, log, steps, apps, mode, limit)
	default:
		out, err = e.personalizedBayes(ctx, log, steps, apps, mode, limit)
	}
	if err != nil {
		return nil, err
	}

	log.Info("personalized ranking built",
		zap.String("candidate_id", candidate.ID),
		zap.Int("history", len(apps)),
		zap.String("based_on", out.BasedOn),
		zap.Int("results", len(out.Results)),
	)
	return out, nil
}

// personalizedBayes trains on every position of the mode, so exclusions never hide the
// candidate's own history from the classifier, and applies the exclusions to the ranking only.
func (e *Engine) personalizedBayes(ctx context.Context, log *zap.Logger, steps []filtering.Filter, apps []records.Application, mode records.Mode, limit int) (*Personalized, error) {
	training, err := e.pool(ctx, log, []filtering.Filter{filtering.NewKind(mode)})
	if err != nil {
		return nil, err
	}

	eligible, err := e.pool(ctx, log, steps)
	if err != nil {
		return nil, err
	}

	ranked, basedOn, err := e.ranker.PersonalizedRanking(apps, training.Items, mode, 0)
	if err != nil {
		return nil, fmt.Errorf("personalized ranking: %w", err)
	}

	return &Personalized{Results: keepEligible(ranked, eligible, limit), BasedOn: basedOn}, nil
}

// keepEligible drops results outside the eligible pool, cuts to limit and renumbers ranks.
func keepEligible(ranked []records.ScoredResult, eligible *records.Positions, limit int) []records.ScoredResult {
	allowed := make(map[string]struct{}, eligible.Len())
	for _, id := range eligible.IDs() {
		allowed[id] = struct{}{}
	}

	results := make([]records.ScoredResult, 0, min(len(ranked), limit))
	for _, r := range ranked {
		if len(results) == limit {
			break
		}
		if _, ok := allowed[r.Position.ID]; !ok {
			continue
		}
		r.Rank = len(results) + 1
		results = append(results, r)
	}
	return results
}

func (e *Engine) personalizedKNN(ctx context.Context, log *zap.Logger, steps []filtering.Filter, apps []records.Application, mode records.Mode, limit int) (*Personalized, error) {
	history, err := e.history(ctx, log, apps, mode)
	if err != nil {
		return nil, err
	}

	pool, err := e.pool(ctx, log, steps)
	if err != nil {
		return nil, err
	}

	results, basedOn := e.knn.PersonalizedByHistory(history, pool.Items, mode, limit)
	return &Personalized{Results: results, BasedOn: basedOn}, nil
}

// history resolves applied positions of the requested mode. Positions that are gone from
// the store are skipped.
func (e *Engine) history(ctx context.Context, log *zap.Logger, apps []records.Application, mode records.Mode) ([]*records.Position, error) {
	var history []*records.Position
	for _, id := range records.PositionIDs(apps) {
		p, err := e.stores.Positions.GetPosition(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("applied position no longer exists", zap.String("position_id", id))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get applied position: %w", err)
		}
		if p.Mode() == mode {
			history = append(history, p)
		}
	}
	return history, nil
}

// Screen scores and ranks every applicant of a position. An empty mode uses the position's own.
func (e *Engine) Screen(ctx context.Context, positionID string, mode records.Mode) (*fit.Screening, error) {
	position, err := e.stores.Positions.GetPosition(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("get position: %w", err)
	}
	if mode == "" {
		mode = position.Mode()
	}
	log := e.requestLogger(mode, records.MethodFit)

	apps, err := e.stores.Applications.ApplicationsByPosition(ctx, position.ID)
	if err != nil {
		return nil, fmt.Errorf("get applications of %s: %w", position.ID, err)
	}

	candidates, err := e.applicants(ctx, log, apps)
	if err != nil {
		return nil, err
	}

	screening := e.scorer.ScreenCandidates(candidates, position, mode)

	log.Info("applicants screened",
		zap.String("position_id", position.ID),
		zap.Int("applicants", screening.Stats.Total),
		zap.Int("average_score", screening.Stats.AverageScore),
	)
	return &screening, nil
}

// ClassifySingle scores one candidate against one position, the same way Screen does.
func (e *Engine) ClassifySingle(ctx context.Context, candidateID, positionID string, mode records.Mode) (*records.ScoredResult, error) {
	candidate, err := e.stores.Candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}

	position, err := e.stores.Positions.GetPosition(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("get position: %w", err)
	}
	if mode == "" {
		mode = position.Mode()
	}

	result := e.scorer.Score(candidate, position, mode).Result(candidate)

	e.requestLogger(mode, records.MethodFit).Debug("candidate classified",
		zap.String("candidate_id", candidate.ID),
		zap.String("position_id", position.ID),
		zap.Int("score", result.Score),
		zap.String("band", result.Band),
	)
	return &result, nil
}

func (e *Engine) poolFilters(mode records.Mode) []filtering.Filter {
	return []filtering.Filter{
		filtering.NewKind(mode),
		filtering.NewExcludedCategories(e.cfg.Exclude.Categories),
		filtering.NewExcludeFile(e.cfg.Exclude.File),
	}
}

// pool lists every position and runs the steps over a private copy of the listing.
func (e *Engine) pool(ctx context.Context, log *zap.Logger, steps []filtering.Filter) (*records.Positions, error) {
	listed, err := e.stores.Positions.ListPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}

	log.Debug("pool filters", zap.Any("filters", filtering.Describe(steps)))

	pool, err := filtering.Run(ctx, log, steps, records.NewPositions(listed).Clone())
	if err != nil {
		return nil, fmt.Errorf("prepare pool: %w", err)
	}

	log.Debug("pool prepared", zap.Int("listed", len(listed)), zap.Int("pool", pool.Len()))

	if pool.Len() > e.cfg.MaxPool {
		return nil, fmt.Errorf("%w: %d positions, maximum is %d", ErrPoolTooLarge, pool.Len(), e.cfg.MaxPool)
	}
	return pool, nil
}

func (e *Engine) requestLogger(mode records.Mode, method string) *zap.Logger {
	return logger.WithCommonFields(e.log, mode.String(), method).
		With(zap.String(logger.FieldRequestID, uuid.NewString()))
}
