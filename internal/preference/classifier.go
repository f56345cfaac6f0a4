// Package preference predicts which positions a candidate would apply to with a
// naive Bayes model trained on that candidate's own history.
package preference

import (
	"errors"
	"math"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

// ErrUntrained is returned when Predict is called before Train.
var ErrUntrained = errors.New("classifier is not trained")

const (
	classApplied = iota
	classSkipped
	classCount
)

// Classifier holds the probability tables of a single request. It must not be shared
// between requests or goroutines; build a new one per call.
type Classifier struct {
	tokenizer features.Tokenizer

	trained     bool
	logPriors   [classCount]float64
	tokenCounts [classCount]map[string]int
	tokenTotals [classCount]int
	classSizes  [classCount]int
	vocabulary  map[string]struct{}
}

func NewClassifier(tokenizer features.Tokenizer) *Classifier {
	return &Classifier{tokenizer: tokenizer}
}

// Train splits the pool into positions the candidate applied to and the rest, then derives
// class priors and Laplace-smoothed token likelihoods. Calling Train again starts over.
func (c *Classifier) Train(history []records.Application, pool []*records.Position, mode records.Mode) {
	applied := make(map[string]struct{}, len(history))
	for _, id := range records.PositionIDs(history) {
		applied[id] = struct{}{}
	}

	c.vocabulary = make(map[string]struct{})
	for class := range c.tokenCounts {
		c.tokenCounts[class] = make(map[string]int)
		c.tokenTotals[class] = 0
		c.classSizes[class] = 0
	}

	for _, p := range pool {
		if p == nil {
			continue
		}
		class := classSkipped
		if _, ok := applied[p.ID]; ok {
			class = classApplied
		}
		c.classSizes[class]++

		for _, token := range c.tokenizer.Tokens(p, mode) {
			c.tokenCounts[class][token]++
			c.tokenTotals[class]++
			c.vocabulary[token] = struct{}{}
		}
	}

	total := c.classSizes[classApplied] + c.classSizes[classSkipped]
	smooth := c.classSizes[classApplied] == 0 || c.classSizes[classSkipped] == 0
	for class, size := range c.classSizes {
		// An empty class would give log(0); fall back to add-one priors in that case.
		if smooth {
			c.logPriors[class] = math.Log(float64(size+1) / float64(total+classCount))
			continue
		}
		c.logPriors[class] = math.Log(float64(size) / float64(total))
	}

	c.trained = true
}

func (c *Classifier) Trained() bool { return c.trained }

// AppliedCount is the number of pool positions found in the training history.
func (c *Classifier) AppliedCount() int { return c.classSizes[classApplied] }

// Predict returns P(applied | position). Tokens never seen during training are ignored.
func (c *Classifier) Predict(p *records.Position, mode records.Mode) (float64, error) {
	if !c.trained {
		return 0, ErrUntrained
	}

	var logs [classCount]float64
	vocabSize := float64(len(c.vocabulary))
	tokens := c.tokenizer.Tokens(p, mode)

	for class := range logs {
		logs[class] = c.logPriors[class]
		denominator := float64(c.tokenTotals[class]) + vocabSize
		for _, token := range tokens {
			if _, known := c.vocabulary[token]; !known {
				continue
			}
			logs[class] += math.Log(float64(c.tokenCounts[class][token]+1) / denominator)
		}
	}

	top := math.Max(logs[classApplied], logs[classSkipped])
	applied := math.Exp(logs[classApplied] - top)
	skipped := math.Exp(logs[classSkipped] - top)

	probability := applied / (applied + skipped)
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return 0, nil
	}
	return probability, nil
}
