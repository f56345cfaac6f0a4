package engine

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/similarity"
)

// Personalization methods.
const (
	PersonalizeBayes = "bayes"
	PersonalizeKNN   = "knn"
)

// Similar-position methods.
const (
	SimilarKNN   = "knn"
	SimilarToken = "token"
)

type Config struct {
	MaxPool     int               `mapstructure:"max-pool" validate:"gte=1"`
	Limits      Limits            `mapstructure:"limits"`
	Personalize PersonalizeConfig `mapstructure:"personalize"`
	Similarity  SimilarityConfig  `mapstructure:"similarity"`
	Buckets     features.Buckets  `mapstructure:"buckets"`
	Exclude     ExcludeConfig     `mapstructure:"exclude"`
	Screening   ScreeningConfig   `mapstructure:"screening"`
}

type Limits struct {
	Similar      int `mapstructure:"similar" validate:"gte=1"`
	Personalized int `mapstructure:"personalized" validate:"gte=1"`
}

type PersonalizeConfig struct {
	Method string `mapstructure:"method" validate:"oneof=bayes knn"`
}

type SimilarityConfig struct {
	Method  string             `mapstructure:"method" validate:"oneof=knn token"`
	Weights similarity.Weights `mapstructure:"weights"`
}

// ExcludeConfig drops positions from every recommendation pool.
type ExcludeConfig struct {
	Categories []string `mapstructure:"categories"`
	File       string   `mapstructure:"file"`
}

type ScreeningConfig struct {
	// Concurrency bounds the parallel candidate lookups of one screening.
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxPool: 500,
		Limits: Limits{
			Similar:      5,
			Personalized: 10,
		},
		Personalize: PersonalizeConfig{Method: PersonalizeBayes},
		Similarity: SimilarityConfig{
			Method:  SimilarKNN,
			Weights: similarity.DefaultWeights(),
		},
		Buckets:   features.DefaultBuckets(),
		Screening: ScreeningConfig{Concurrency: 8},
	}
}

// Validate checks field constraints and bucket ordering.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Buckets.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
