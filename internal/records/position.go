package records

import "math"

// Position is a job or an internship posting.
type Position struct {
	ID             string       `json:"id" mapstructure:"id" validate:"required"`
	Title          string       `json:"title,omitempty" mapstructure:"title"`
	Kind           Mode         `json:"kind,omitempty" mapstructure:"kind"`
	Skills         []string     `json:"skills,omitempty" mapstructure:"skills"`
	Location       string       `json:"location,omitempty" mapstructure:"location"`
	Category       string       `json:"category,omitempty" mapstructure:"category"`
	LocationMode   LocationMode `json:"location_mode,omitempty" mapstructure:"location_mode"`
	Salary         *Salary      `json:"salary,omitempty" mapstructure:"salary"`
	Stipend        *Stipend     `json:"stipend,omitempty" mapstructure:"stipend"`
	DurationMonths float64      `json:"duration_months,omitempty" mapstructure:"duration_months"`
	Experience     string       `json:"experience,omitempty" mapstructure:"experience"`
	Education      []string     `json:"education,omitempty" mapstructure:"education"`
	Views          int          `json:"views,omitempty" mapstructure:"views"`
	Applications   int          `json:"applications,omitempty" mapstructure:"applications"`
}

// Salary is the yearly range offered by a job.
type Salary struct {
	Min float64 `json:"min,omitempty" mapstructure:"min"`
	Max float64 `json:"max,omitempty" mapstructure:"max"`
}

// Stipend is the monthly amount paid by an internship.
type Stipend struct {
	Amount float64 `json:"amount,omitempty" mapstructure:"amount"`
	Unpaid bool    `json:"unpaid,omitempty" mapstructure:"unpaid"`
}

// Mode returns the declared kind, or infers it from the internship-only fields.
func (p *Position) Mode() Mode {
	if p.Kind != "" {
		if m, err := ParseMode(string(p.Kind)); err == nil {
			return m
		}
	}
	if p.Stipend != nil || p.DurationMonths > 0 {
		return ModeInternship
	}
	return ModeJob
}

// CompensationMagnitude is the salary midpoint for jobs or the stipend amount for internships.
// Absent, negative or non-finite values are 0.
func (p *Position) CompensationMagnitude() float64 {
	switch {
	case p.Salary != nil:
		return p.Salary.Midpoint()
	case p.Stipend != nil && !p.Stipend.Unpaid:
		return nonNegative(p.Stipend.Amount)
	default:
		return 0
	}
}

// Duration returns the duration in months, 0 when unknown.
func (p *Position) Duration() float64 {
	return nonNegative(p.DurationMonths)
}

// IsUnpaid is true for internships explicitly marked as unpaid.
func (p *Position) IsUnpaid() bool {
	return p.Stipend != nil && p.Stipend.Unpaid
}

// Midpoint of the range. A one-sided range yields the side that is set.
func (s *Salary) Midpoint() float64 {
	lo, hi := nonNegative(s.Min), nonNegative(s.Max)
	switch {
	case lo > 0 && hi > 0:
		return (lo + hi) / 2
	case hi > 0:
		return hi
	default:
		return lo
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
