package filtering

import (
	"context"
	"strings"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

type categoriesFilter struct {
	categories map[string]struct{}
	names      []string
}

// NewExcludedCategories creates a filter that removes positions by categories configured in the config.
func NewExcludedCategories(categories []string) Filter {
	names := features.NormalizeAll(categories)
	return &categoriesFilter{
		categories: features.Set(names),
		names:      names,
	}
}

func (f *categoriesFilter) Name() string { return "categories" }

func (f *categoriesFilter) Disable(string) {}

func (f *categoriesFilter) IsEnabled() bool { return true }

func (f *categoriesFilter) Validate() error { return nil }

func (f *categoriesFilter) Apply(_ context.Context, p *records.Positions) (*records.Positions, Step, error) {
	initial := p.Len()
	if len(f.categories) == 0 {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	dropped := p.Keep(func(pos *records.Position) bool {
		_, excluded := f.categories[features.Normalize(pos.Category)]
		return !excluded
	})

	return p, stepOf(initial, dropped, p), nil
}

func (f *categoriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["categories"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
