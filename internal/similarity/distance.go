// Package similarity ranks positions by a weighted nearest-neighbour distance.
package similarity

import (
	"math"

	"github.com/spigell/hh-ranker/internal/features"
)

// Weights of the per-dimension distances. Duration only counts for internships and is
// added on top of the job weights.
type Weights struct {
	Skills       float64 `mapstructure:"skills" validate:"gte=0"`
	Compensation float64 `mapstructure:"compensation" validate:"gte=0"`
	Location     float64 `mapstructure:"location" validate:"gte=0"`
	Category     float64 `mapstructure:"category" validate:"gte=0"`
	LocationMode float64 `mapstructure:"location-mode" validate:"gte=0"`
	Duration     float64 `mapstructure:"duration" validate:"gte=0"`
}

func DefaultWeights() Weights {
	return Weights{
		Skills:       0.40,
		Compensation: 0.30,
		Location:     0.15,
		Category:     0.10,
		LocationMode: 0.05,
		Duration:     0.10,
	}
}

// Distance is the weighted sum of per-dimension distances. It is 0 for identical vectors.
func (w Weights) Distance(a, b features.Vector) float64 {
	d := w.Skills*skillDistance(a.Skills, b.Skills) +
		w.Compensation*relativeDiff(a.Compensation, b.Compensation) +
		w.Location*mismatch(a.Location, b.Location) +
		w.Category*mismatch(a.Category, b.Category) +
		w.LocationMode*mismatch(string(a.LocationMode), string(b.LocationMode))

	if a.Mode.HasDuration() {
		d += w.Duration * relativeDiff(a.Duration, b.Duration)
	}
	return d
}

// Similarity converts a distance to a rounded percentage. An undefined or infinite
// distance is as far as it gets and scores 0.
func Similarity(distance float64) int {
	if math.IsNaN(distance) || math.IsInf(distance, 1) {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return int(math.Round(100 / (1 + distance)))
}

// skillDistance treats two empty skill sets as identical. Jaccard itself stays 0 for them.
func skillDistance(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	return 1 - features.Jaccard(a, b)
}

// relativeDiff is in [0,1] for finite non-negative inputs; anything else counts as a full mismatch.
func relativeDiff(a, b float64) float64 {
	d := math.Abs(a-b) / math.Max(math.Max(a, b), 1)
	if math.IsNaN(d) || math.IsInf(d, 0) || d > 1 {
		return 1
	}
	return d
}

func mismatch(a, b string) float64 {
	if features.EqualFold(a, b) {
		return 0
	}
	return 1
}
