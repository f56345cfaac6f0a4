package store

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/spigell/hh-ranker/internal/records"
)

// Dataset is the content of a dataset file.
type Dataset struct {
	Positions    []*records.Position   `mapstructure:"positions" validate:"dive,required"`
	Candidates   []*records.Candidate  `mapstructure:"candidates" validate:"dive,required"`
	Applications []records.Application `mapstructure:"applications" validate:"dive"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Load reads a YAML or JSON dataset, chosen by file extension.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %q: %w", path, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %q: %w", path, err)
	}

	return Decode(raw)
}

// Decode turns loosely typed records into a validated dataset.
func Decode(raw map[string]any) (*Dataset, error) {
	var ds Dataset

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToTime,
		WeaklyTypedInput: true,
		Result:           &ds,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	if err := validator.New().Struct(&ds); err != nil {
		return nil, fmt.Errorf("validating dataset: %w", err)
	}

	if err := ds.checkUnique(); err != nil {
		return nil, err
	}

	if err := ds.checkFinite(); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (ds *Dataset) checkUnique() error {
	positions := make(map[string]struct{}, len(ds.Positions))
	for _, p := range ds.Positions {
		if _, ok := positions[p.ID]; ok {
			return fmt.Errorf("duplicate position id %q", p.ID)
		}
		positions[p.ID] = struct{}{}
	}

	candidates := make(map[string]struct{}, len(ds.Candidates))
	for _, c := range ds.Candidates {
		if _, ok := candidates[c.ID]; ok {
			return fmt.Errorf("duplicate candidate id %q", c.ID)
		}
		candidates[c.ID] = struct{}{}
	}
	return nil
}

// checkFinite rejects NaN and infinite compensation or duration values.
func (ds *Dataset) checkFinite() error {
	for _, p := range ds.Positions {
		values := map[string]float64{"duration_months": p.DurationMonths}
		if p.Salary != nil {
			values["salary.min"] = p.Salary.Min
			values["salary.max"] = p.Salary.Max
		}
		if p.Stipend != nil {
			values["stipend.amount"] = p.Stipend.Amount
		}
		for field, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("position %q: %s must be a finite number", p.ID, field)
			}
		}
	}
	return nil
}

func stringToTime(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	s := strings.TrimSpace(data.(string))
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}
