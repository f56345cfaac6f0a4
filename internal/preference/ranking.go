package preference

import (
	"fmt"
	"math"
	"sort"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

// Ranker builds a fresh classifier for every ranking it produces.
type Ranker struct {
	tokenizer features.Tokenizer
}

func NewRanker(buckets features.Buckets) *Ranker {
	return &Ranker{tokenizer: features.NewTokenizer(buckets)}
}

type scored struct {
	position *records.Position
	value    float64
}

// PersonalizedRanking trains on the candidate history and returns up to limit unseen
// positions ordered by predicted interest. Without usable history it returns the
// popularity order instead, reported as records.BasedOnPopular.
func (r *Ranker) PersonalizedRanking(history []records.Application, pool []*records.Position, mode records.Mode, limit int) ([]records.ScoredResult, string, error) {
	if len(history) == 0 {
		return records.PopularResults(pool, limit), records.BasedOnPopular, nil
	}

	classifier := NewClassifier(r.tokenizer)
	classifier.Train(history, pool, mode)

	applied := make(map[string]struct{}, len(history))
	for _, id := range records.PositionIDs(history) {
		applied[id] = struct{}{}
	}

	unseen := make([]*records.Position, 0, len(pool))
	for _, p := range pool {
		if p == nil {
			continue
		}
		if _, ok := applied[p.ID]; !ok {
			unseen = append(unseen, p)
		}
	}

	// Nothing in the pool to learn the applied class from.
	if classifier.AppliedCount() == 0 {
		return records.PopularResults(unseen, limit), records.BasedOnPopular, nil
	}

	candidates := make([]scored, 0, len(unseen))
	for _, p := range unseen {
		probability, err := classifier.Predict(p, mode)
		if err != nil {
			return nil, "", fmt.Errorf("predict %s: %w", p.ID, err)
		}
		candidates = append(candidates, scored{position: p, value: probability})
	}

	return toResults(candidates, limit, records.MethodNaiveBayes), records.BasedOnHistory, nil
}

// SimilarItems compares token sets with Jaccard similarity. No training is involved.
func (r *Ranker) SimilarItems(target *records.Position, pool []*records.Position, mode records.Mode, limit int) []records.ScoredResult {
	if target == nil {
		return []records.ScoredResult{}
	}

	targetTokens := r.tokenizer.Tokens(target, mode)
	candidates := make([]scored, 0, len(pool))
	for _, p := range pool {
		if p == nil || p == target || (target.ID != "" && p.ID == target.ID) {
			continue
		}
		candidates = append(candidates, scored{
			position: p,
			value:    features.Jaccard(targetTokens, r.tokenizer.Tokens(p, mode)),
		})
	}

	return toResults(candidates, limit, records.MethodTokenJaccard)
}

func toResults(candidates []scored, limit int, method string) []records.ScoredResult {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value > candidates[j].value
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]records.ScoredResult, 0, len(candidates))
	for i, c := range candidates {
		results = append(results, records.ScoredResult{
			Position: c.position,
			Score:    int(math.Round(c.value * 100)),
			Rank:     i + 1,
			Method:   method,
		})
	}
	return results
}
