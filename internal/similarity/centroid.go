package similarity

import (
	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

// Centroid synthesizes a profile out of the positions a candidate applied to: the union of
// skills, mean compensation and duration, and the most frequent location, category and
// location mode. Frequency ties resolve to the lexicographically smallest label.
func Centroid(history []*records.Position, mode records.Mode) features.Vector {
	centroid := features.Vector{Mode: mode}
	if len(history) == 0 {
		return centroid
	}

	var skills []string
	var compensation, duration float64
	var counted int
	locations := make([]string, 0, len(history))
	categories := make([]string, 0, len(history))
	workModes := make([]string, 0, len(history))

	for _, p := range history {
		if p == nil {
			continue
		}
		v := features.Extract(p, mode)
		skills = append(skills, v.Skills...)
		compensation += v.Compensation
		duration += v.Duration
		locations = append(locations, v.Location)
		categories = append(categories, v.Category)
		workModes = append(workModes, string(v.LocationMode))
		counted++
	}
	if counted == 0 {
		return centroid
	}

	centroid.Skills = features.NormalizeAll(skills)
	centroid.Compensation = compensation / float64(counted)
	centroid.Duration = duration / float64(counted)
	centroid.Location = mostFrequent(locations)
	centroid.Category = mostFrequent(categories)
	centroid.LocationMode = records.LocationMode(mostFrequent(workModes))
	return centroid
}

func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best
}
