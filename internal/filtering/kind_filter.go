package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/hh-ranker/internal/records"
)

type kindFilter struct {
	mode records.Mode
}

// NewKind creates a filter that keeps positions of the requested mode only.
func NewKind(mode records.Mode) Filter {
	return &kindFilter{mode: mode}
}

func (f *kindFilter) Name() string { return "kind" }

func (f *kindFilter) Disable(string) {}

func (f *kindFilter) IsEnabled() bool { return true }

func (f *kindFilter) Validate() error {
	if f.mode != records.ModeJob && f.mode != records.ModeInternship {
		return fmt.Errorf("%w: %q", records.ErrUnknownMode, f.mode)
	}
	return nil
}

func (f *kindFilter) Apply(_ context.Context, p *records.Positions) (*records.Positions, Step, error) {
	initial := p.Len()
	dropped := p.Keep(func(pos *records.Position) bool {
		return pos.Mode() == f.mode
	})

	return p, stepOf(initial, dropped, p), nil
}

func (f *kindFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{"mode": f.mode.String()}}
}
