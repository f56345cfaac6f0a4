package records

import (
	"strings"
	"time"
)

// Candidate is an applicant profile.
type Candidate struct {
	ID         string      `json:"id" mapstructure:"id" validate:"required"`
	Name       string      `json:"name,omitempty" mapstructure:"name"`
	Skills     []string    `json:"skills,omitempty" mapstructure:"skills"`
	Experience string      `json:"experience,omitempty" mapstructure:"experience"`
	Education  []Education `json:"education,omitempty" mapstructure:"education"`
	Location   string      `json:"location,omitempty" mapstructure:"location"`
	Bio        string      `json:"bio,omitempty" mapstructure:"bio"`
}

type Education struct {
	Degree      string `json:"degree" mapstructure:"degree"`
	Field       string `json:"field,omitempty" mapstructure:"field"`
	Institution string `json:"institution,omitempty" mapstructure:"institution"`
}

// HasBio reports whether the candidate wrote anything about themselves.
func (c *Candidate) HasBio() bool {
	return strings.TrimSpace(c.Bio) != ""
}

// Application is one entry of a candidate's application history.
type Application struct {
	CandidateID string    `json:"candidate_id" mapstructure:"candidate_id" validate:"required"`
	PositionID  string    `json:"position_id" mapstructure:"position_id" validate:"required"`
	AppliedAt   time.Time `json:"applied_at,omitempty" mapstructure:"applied_at"`
}

// PositionIDs returns the distinct position ids of the history in order of first appearance.
func PositionIDs(apps []Application) []string {
	seen := make(map[string]struct{}, len(apps))
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		if a.PositionID == "" {
			continue
		}
		if _, ok := seen[a.PositionID]; ok {
			continue
		}
		seen[a.PositionID] = struct{}{}
		ids = append(ids, a.PositionID)
	}
	return ids
}
