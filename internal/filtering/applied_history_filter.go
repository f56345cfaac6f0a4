package filtering

import (
	"context"
	"strconv"

	"github.com/spigell/hh-ranker/internal/records"
)

type appliedHistoryFilter struct {
	applied  []string
	disabled bool
	reason   string
}

// NewAppliedHistory creates a filter that removes positions the candidate already applied to.
func NewAppliedHistory(apps []records.Application) Filter {
	return &appliedHistoryFilter{applied: records.PositionIDs(apps)}
}

func (f *appliedHistoryFilter) Name() string { return "applied_history" }

func (f *appliedHistoryFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *appliedHistoryFilter) IsEnabled() bool { return !f.disabled }

func (f *appliedHistoryFilter) Validate() error { return nil }

func (f *appliedHistoryFilter) Apply(_ context.Context, p *records.Positions) (*records.Positions, Step, error) {
	initial := p.Len()
	dropped := p.Exclude(f.applied)

	return p, stepOf(initial, dropped, p), nil
}

func (f *appliedHistoryFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"applied": strconv.Itoa(len(f.applied))},
	}
}
