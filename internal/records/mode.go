package records

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which flavour of position is being matched.
type Mode string

const (
	ModeJob        Mode = "job"
	ModeInternship Mode = "internship"
)

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode accepts the mode names used by the CLI and the dataset files.
// An empty value means a job.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "job", "jobs":
		return ModeJob, nil
	case "internship", "internships", "intern":
		return ModeInternship, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// HasDuration reports whether positions of this mode carry a duration.
func (m Mode) HasDuration() bool { return m == ModeInternship }

// CompensationLabel is the name of the compensation dimension for the mode.
func (m Mode) CompensationLabel() string {
	if m == ModeInternship {
		return "stipend"
	}
	return "salary"
}

func (m Mode) String() string { return string(m) }

// LocationMode describes where the work happens.
type LocationMode string

const (
	OnSite LocationMode = "on-site"
	Remote LocationMode = "remote"
	Hybrid LocationMode = "hybrid"
)

// Normalize maps the spellings found in postings to one of the known location modes.
// Unknown values are lowercased and returned as is.
func (l LocationMode) Normalize() LocationMode {
	v := strings.ToLower(strings.TrimSpace(string(l)))
	switch v {
	case "on-site", "onsite", "on_site", "on site", "office", "in-office":
		return OnSite
	case "remote", "wfh", "work from home", "work-from-home":
		return Remote
	case "hybrid":
		return Hybrid
	default:
		return LocationMode(v)
	}
}

// LocationIrrelevant is true for remote and hybrid positions.
func (l LocationMode) LocationIrrelevant() bool {
	n := l.Normalize()
	return n == Remote || n == Hybrid
}
