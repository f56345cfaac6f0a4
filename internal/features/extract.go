// Package features turns positions and candidates into comparable feature vectors and tokens.
package features

import (
	"github.com/spigell/hh-ranker/internal/records"
)

// Vector is the per-request representation of a position or candidate.
// String dimensions are normalized labels, numeric ones are non-negative and 0 when absent.
type Vector struct {
	Mode         records.Mode
	Compensation float64
	Duration     float64
	Location     string
	Category     string
	Skills       []string
	LocationMode records.LocationMode
	Experience   string
}

// Extract builds the vector of a position. Duration is only kept for internships.
// Missing optional fields are valid and produce zero values.
func Extract(p *records.Position, mode records.Mode) Vector {
	if p == nil {
		return Vector{Mode: mode}
	}

	v := Vector{
		Mode:         mode,
		Compensation: p.CompensationMagnitude(),
		Location:     Normalize(p.Location),
		Category:     Normalize(p.Category),
		Skills:       NormalizeAll(p.Skills),
		LocationMode: p.LocationMode.Normalize(),
		Experience:   Normalize(p.Experience),
	}
	if mode.HasDuration() {
		v.Duration = p.Duration()
	}
	return v
}

// ExtractCandidate builds the vector of a candidate. Candidates carry no compensation,
// category or location mode.
func ExtractCandidate(c *records.Candidate) Vector {
	if c == nil {
		return Vector{}
	}
	return Vector{
		Location:   Normalize(c.Location),
		Skills:     NormalizeAll(c.Skills),
		Experience: Normalize(c.Experience),
	}
}
