package filtering

import (
	"context"
	"strconv"

	"github.com/spigell/hh-ranker/internal/records"
)

type excludeIDsFilter struct {
	name string
	ids  []string
}

// NewExcludeIDs creates a named filter that drops the listed positions.
func NewExcludeIDs(name string, ids []string) Filter {
	return &excludeIDsFilter{
		name: name,
		ids:  append([]string(nil), ids...),
	}
}

func (f *excludeIDsFilter) Name() string { return f.name }

func (f *excludeIDsFilter) Disable(string) {}

func (f *excludeIDsFilter) IsEnabled() bool { return true }

func (f *excludeIDsFilter) Validate() error { return nil }

func (f *excludeIDsFilter) Apply(_ context.Context, p *records.Positions) (*records.Positions, Step, error) {
	initial := p.Len()
	if len(f.ids) == 0 {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	dropped := p.Exclude(f.ids)
	return p, stepOf(initial, dropped, p), nil
}

func (f *excludeIDsFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{"ids": strconv.Itoa(len(f.ids))}}
}
