package features

import (
	"fmt"

	"github.com/spigell/hh-ranker/internal/records"
)

// Bucket labels, ordinal from cheapest/shortest.
var (
	amountLabels   = [4]string{"low", "medium", "high", "very-high"}
	durationLabels = [4]string{"short", "medium", "long", "very-long"}
)

const unpaidLabel = "unpaid"

// Buckets holds the inclusive upper bounds of the first three bands of each continuous
// dimension. Anything above the last bound falls in the fourth band.
type Buckets struct {
	Salary   [3]float64 `mapstructure:"salary" validate:"dive,gte=0"`
	Stipend  [3]float64 `mapstructure:"stipend" validate:"dive,gte=0"`
	Duration [3]float64 `mapstructure:"duration" validate:"dive,gte=0"`
}

// Validate checks that every set of bounds is strictly increasing.
func (b Buckets) Validate() error {
	checks := []struct {
		name   string
		bounds [3]float64
	}{
		{"salary", b.Salary},
		{"stipend", b.Stipend},
		{"duration", b.Duration},
	}
	for _, c := range checks {
		if !(c.bounds[0] < c.bounds[1] && c.bounds[1] < c.bounds[2]) {
			return fmt.Errorf("%s buckets must be strictly increasing, got %v", c.name, c.bounds)
		}
	}
	return nil
}

// DefaultBuckets are yearly salary, monthly stipend and months.
func DefaultBuckets() Buckets {
	return Buckets{
		Salary:   [3]float64{300000, 600000, 1200000},
		Stipend:  [3]float64{5000, 10000, 20000},
		Duration: [3]float64{2, 4, 6},
	}
}

func bucket(v float64, bounds [3]float64, labels [4]string) string {
	for i, bound := range bounds {
		if v <= bound {
			return labels[i]
		}
	}
	return labels[3]
}

// Tokenizer turns a position into categorical tokens such as "skill:go" or "salary:high".
type Tokenizer struct {
	Buckets Buckets
}

func NewTokenizer(b Buckets) Tokenizer {
	return Tokenizer{Buckets: b}
}

// Tokens returns the distinct tokens of a position in a stable order.
// Zero compensation and zero duration produce no token, an unpaid internship
// always produces "stipend:unpaid".
func (t Tokenizer) Tokens(p *records.Position, mode records.Mode) []string {
	v := Extract(p, mode)

	tokens := make([]string, 0, len(v.Skills)+6)
	for _, skill := range v.Skills {
		tokens = append(tokens, "skill:"+skill)
	}
	if v.Location != "" {
		tokens = append(tokens, "location:"+v.Location)
	}
	if v.Category != "" {
		tokens = append(tokens, "category:"+v.Category)
	}
	if v.LocationMode != "" {
		tokens = append(tokens, "work:"+string(v.LocationMode))
	}
	if v.Experience != "" {
		tokens = append(tokens, "experience:"+v.Experience)
	}

	label := mode.CompensationLabel()
	switch {
	case mode == records.ModeInternship && p != nil && p.IsUnpaid():
		tokens = append(tokens, fmt.Sprintf("%s:%s", label, unpaidLabel))
	case v.Compensation > 0:
		bounds := t.Buckets.Salary
		if mode == records.ModeInternship {
			bounds = t.Buckets.Stipend
		}
		tokens = append(tokens, fmt.Sprintf("%s:%s", label, bucket(v.Compensation, bounds, amountLabels)))
	}

	if v.Duration > 0 {
		tokens = append(tokens, "duration:"+bucket(v.Duration, t.Buckets.Duration, durationLabels))
	}

	return tokens
}
