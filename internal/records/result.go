package records

// Scoring methods reported back with results.
const (
	MethodSimilarity   = "similarity"
	MethodCentroid     = "centroid_knn"
	MethodNaiveBayes   = "naive_bayes"
	MethodTokenJaccard = "token_jaccard"
	MethodPopular      = "popular"
	MethodFit          = "fit_svm"
)

// Sources of a personalized ranking.
const (
	BasedOnHistory = "application_history"
	BasedOnPopular = "popular"
)

// PopularScore is the fixed score given to popularity fallback results.
const PopularScore = 50

// ScoredResult is what the engine hands back. Exactly one of Position and Candidate is set.
type ScoredResult struct {
	Position       *Position    `json:"position,omitempty"`
	Candidate      *Candidate   `json:"candidate,omitempty"`
	Score          int          `json:"score"`
	Rank           int          `json:"rank,omitempty"`
	Method         string       `json:"method,omitempty"`
	Band           string       `json:"band,omitempty"`
	Recommendation string       `json:"recommendation,omitempty"`
	Explanation    *Explanation `json:"explanation,omitempty"`
}

// Explanation lists what made a fit score high or low.
type Explanation struct {
	Strengths     []string           `json:"strengths"`
	Gaps          []string           `json:"gaps"`
	MissingSkills []string           `json:"missing_skills,omitempty"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
}

// PopularResults wraps the popularity order of a pool as fallback results.
func PopularResults(pool []*Position, limit int) []ScoredResult {
	popular := NewPositions(pool).Popular(limit)
	results := make([]ScoredResult, 0, len(popular))
	for i, p := range popular {
		results = append(results, ScoredResult{
			Position: p,
			Score:    PopularScore,
			Rank:     i + 1,
			Method:   MethodPopular,
		})
	}
	return results
}
