package filtering

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spigell/hh-ranker/internal/records"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes positions listed in an exclude file.
// The file holds a YAML or JSON list of position ids.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{
		path: strings.TrimSpace(path),
	}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate() error {
	if f.path == "" {
		return nil
	}
	if _, err := os.Stat(f.path); err != nil {
		return fmt.Errorf("exclude file: %w", err)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, p *records.Positions) (*records.Positions, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	ids, err := readExcludedIDs(f.path)
	if err != nil {
		return p, Step{}, fmt.Errorf("getting excluded positions from file: %w", err)
	}

	dropped := p.Exclude(ids)
	return p, stepOf(initial, dropped, p), nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

func readExcludedIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := yaml.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ids, nil
}
