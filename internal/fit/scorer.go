// Package fit scores how well a candidate matches the requirements of a position and
// ranks the applicants of a position.
package fit

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

// Weights of the linear part of the decision function.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	educationWeight  = 0.15
	locationWeight   = 0.10
	historyWeight    = 0.10
)

// Shape of the decision function. These are fixed, not per-call settings.
const (
	linearShare      = 0.7
	rbfShare         = 0.3
	rbfGamma         = 1.5
	sigmoidSteepness = 8.0
	sigmoidMidpoint  = 0.5
)

// Explanation thresholds on the sub-scores.
const (
	strengthThreshold = 0.8
	gapThreshold      = 0.6
)

// Breakdown holds the five sub-scores, each in [0, 1].
type Breakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	History    float64 `json:"history"`
}

func (b Breakdown) values() [5]float64 {
	return [5]float64{b.Skills, b.Experience, b.Education, b.Location, b.History}
}

// Linear is the weighted sum of the sub-scores.
func (b Breakdown) Linear() float64 {
	return skillsWeight*b.Skills +
		experienceWeight*b.Experience +
		educationWeight*b.Education +
		locationWeight*b.Location +
		historyWeight*b.History
}

// RBF rewards closeness to the ideal all-ones candidate.
func (b Breakdown) RBF() float64 {
	var sq float64
	for _, v := range b.values() {
		sq += (v - 1) * (v - 1)
	}
	return math.Exp(-rbfGamma * sq)
}

// Decide maps a breakdown to a probability-like value in (0, 1).
func Decide(b Breakdown) float64 {
	combined := linearShare*b.Linear() + rbfShare*b.RBF()
	return 1 / (1 + math.Exp(-sigmoidSteepness*(combined-sigmoidMidpoint)))
}

// Assessment is the explained fit of one candidate for one position.
type Assessment struct {
	Score          int
	Band           Band
	Recommendation string
	Breakdown      Breakdown
	Strengths      []string
	Gaps           []string
	MissingSkills  []string
}

// Result converts the assessment into the shape returned to callers.
func (a Assessment) Result(c *records.Candidate) records.ScoredResult {
	return records.ScoredResult{
		Candidate:      c,
		Score:          a.Score,
		Method:         records.MethodFit,
		Band:           string(a.Band),
		Recommendation: a.Recommendation,
		Explanation: &records.Explanation{
			Strengths:     a.Strengths,
			Gaps:          a.Gaps,
			MissingSkills: a.MissingSkills,
			Breakdown: map[string]float64{
				"skills":     a.Breakdown.Skills,
				"experience": a.Breakdown.Experience,
				"education":  a.Breakdown.Education,
				"location":   a.Breakdown.Location,
				"history":    a.Breakdown.History,
			},
		},
	}
}

// Scorer has no state; a single instance can serve concurrent calls.
type Scorer struct{}

func New() *Scorer {
	return &Scorer{}
}

// Score assesses one candidate against one position.
func (s *Scorer) Score(c *records.Candidate, p *records.Position, mode records.Mode) Assessment {
	if c == nil {
		c = &records.Candidate{}
	}
	if p == nil {
		p = &records.Position{}
	}

	v := features.Extract(p, mode)
	skills := MatchSkills(features.ExtractCandidate(c).Skills, v.Skills)

	b := Breakdown{
		Skills:     skills.Score,
		Experience: ExperienceScore(c.Experience, p.Experience),
		Education:  EducationScore(c.Education, p.Education),
		Location:   LocationScore(c.Location, p.Location, v.LocationMode),
		History:    HistoryScore(c),
	}

	score := toPercent(Decide(b))
	band := BandFor(score)
	strengths, gaps := explain(b, skills)

	return Assessment{
		Score:          score,
		Band:           band,
		Recommendation: band.Recommendation(),
		Breakdown:      b,
		Strengths:      strengths,
		Gaps:           gaps,
		MissingSkills:  skills.Missing,
	}
}

func explain(b Breakdown, skills SkillMatch) ([]string, []string) {
	strengths := make([]string, 0, 5)
	gaps := make([]string, 0, 5)

	switch {
	case b.Skills >= strengthThreshold:
		strengths = append(strengths, "Strong skills match")
	case b.Skills < gapThreshold:
		if len(skills.Missing) > 0 {
			gaps = append(gaps, fmt.Sprintf("Missing required skills: %s", strings.Join(skills.Missing, ", ")))
		} else {
			gaps = append(gaps, "Weak skills match")
		}
	}

	switch {
	case b.Experience >= strengthThreshold:
		strengths = append(strengths, "Experience level fits the requirement")
	case b.Experience < gapThreshold:
		gaps = append(gaps, "Less experience than required")
	}

	switch {
	case b.Education >= strengthThreshold:
		strengths = append(strengths, "Meets the education requirement")
	case b.Education < gapThreshold:
		gaps = append(gaps, "Education below the requirement")
	}

	switch {
	case b.Location >= strengthThreshold:
		strengths = append(strengths, "Location is compatible")
	case b.Location < gapThreshold:
		gaps = append(gaps, "Location does not match")
	}

	switch {
	case b.History >= strengthThreshold:
		strengths = append(strengths, "Complete profile")
	case b.History < gapThreshold:
		gaps = append(gaps, "Incomplete profile")
	}

	return strengths, gaps
}

func toPercent(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(clamp01(v) * 100))
}
