package similarity

import (
	"math"
	"sort"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

// Recommender holds only its weights and is safe for concurrent use.
type Recommender struct {
	weights Weights
}

func New(weights Weights) *Recommender {
	return &Recommender{weights: weights}
}

type neighbor struct {
	position *records.Position
	distance float64
}

// NearestNeighbors returns up to k positions of the pool closest to target, target itself
// excluded. Equal distances keep pool order. A non-positive k returns every neighbour.
func (r *Recommender) NearestNeighbors(target *records.Position, pool []*records.Position, mode records.Mode, k int) []records.ScoredResult {
	if target == nil {
		return []records.ScoredResult{}
	}

	query := features.Extract(target, mode)
	return r.rank(query, pool, k, records.MethodSimilarity, func(p *records.Position) bool {
		return p == target || (target.ID != "" && p.ID == target.ID)
	})
}

// PersonalizedByHistory ranks the pool against the centroid of the positions the candidate
// applied to. Positions already in history are skipped. Without history it falls back to
// the popularity order and reports records.BasedOnPopular.
func (r *Recommender) PersonalizedByHistory(history []*records.Position, pool []*records.Position, mode records.Mode, k int) ([]records.ScoredResult, string) {
	if len(history) == 0 {
		return records.PopularResults(pool, k), records.BasedOnPopular
	}

	applied := make(map[string]struct{}, len(history))
	for _, p := range history {
		if p != nil {
			applied[p.ID] = struct{}{}
		}
	}

	query := Centroid(history, mode)
	results := r.rank(query, pool, k, records.MethodCentroid, func(p *records.Position) bool {
		_, ok := applied[p.ID]
		return ok
	})
	return results, records.BasedOnHistory
}

func (r *Recommender) rank(query features.Vector, pool []*records.Position, k int, method string, skip func(*records.Position) bool) []records.ScoredResult {
	neighbors := make([]neighbor, 0, len(pool))
	for _, p := range pool {
		if p == nil || skip(p) {
			continue
		}
		d := r.weights.Distance(query, features.Extract(p, query.Mode))
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		neighbors = append(neighbors, neighbor{position: p, distance: d})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].distance < neighbors[j].distance
	})

	if k > 0 && len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	results := make([]records.ScoredResult, 0, len(neighbors))
	for i, n := range neighbors {
		results = append(results, records.ScoredResult{
			Position: n.position,
			Score:    Similarity(n.distance),
			Rank:     i + 1,
			Method:   method,
		})
	}
	return results
}
