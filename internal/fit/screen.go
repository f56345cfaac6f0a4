package fit

import (
	"math"
	"sort"

	"github.com/spigell/hh-ranker/internal/records"
)

// Stats aggregates a screening.
type Stats struct {
	Total        int `json:"total"`
	Excellent    int `json:"excellent"`
	Good         int `json:"good"`
	Average      int `json:"average"`
	BelowAverage int `json:"below_average"`
	Poor         int `json:"poor"`
	AverageScore int `json:"average_score"`
}

func (s *Stats) add(b Band) {
	switch b {
	case BandExcellent:
		s.Excellent++
	case BandGood:
		s.Good++
	case BandAverage:
		s.Average++
	case BandBelowAverage:
		s.BelowAverage++
	default:
		s.Poor++
	}
}

// Screening is the ranked list of applicants of one position.
type Screening struct {
	Candidates []records.ScoredResult `json:"candidates"`
	Stats      Stats                  `json:"stats"`
}

// ScreenCandidates scores every candidate on its own, orders them by score with ties kept
// in input order and assigns ranks 1..N.
func (s *Scorer) ScreenCandidates(candidates []*records.Candidate, p *records.Position, mode records.Mode) Screening {
	results := make([]records.ScoredResult, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		results = append(results, s.Score(c, p, mode).Result(c))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	stats := Stats{Total: len(results)}
	sum := 0
	for i := range results {
		results[i].Rank = i + 1
		stats.add(Band(results[i].Band))
		sum += results[i].Score
	}
	if stats.Total > 0 {
		stats.AverageScore = int(math.Round(float64(sum) / float64(stats.Total)))
	}

	return Screening{Candidates: results, Stats: stats}
}
