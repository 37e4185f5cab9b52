/*
Package classifier implements the sleep-quality model: a random forest of
CART decision trees trained on labeled feature vectors.

Training draws a bootstrap resample per tree and considers a random sqrt-sized
feature subset at every split. With Params.Seed set, training is fully
reproducible; with Seed zero the forest is seeded from the clock and repeated
training on identical data may yield slightly different trees and
probabilities. Prediction is always deterministic for a fixed model.
*/
package classifier

import (
	"math/rand"
	"time"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

const (
	// defaultTrees is the ensemble size.
	defaultTrees = 250

	// defaultMaxDepth bounds tree growth.
	defaultMaxDepth = 12

	// defaultMinLeafSize stops splitting below this many samples.
	defaultMinLeafSize = 2
)

// Example is one labeled training instance.
type Example struct {
	Features sleep.FeatureVector `json:"features"`
	Label    sleep.Quality       `json:"label"`
}

// Params controls forest training.
type Params struct {
	// Trees is the number of trees in the ensemble.
	Trees int `json:"trees"`

	// MaxDepth is the maximum tree depth.
	MaxDepth int `json:"maxDepth"`

	// MinLeafSize is the minimum number of samples required to split a node.
	MinLeafSize int `json:"minLeafSize"`

	// Seed seeds the training randomness. Zero means clock-seeded.
	Seed int64 `json:"seed"`
}

// DefaultParams returns the standard training parameters.
func DefaultParams() Params {
	return Params{
		Trees:       defaultTrees,
		MaxDepth:    defaultMaxDepth,
		MinLeafSize: defaultMinLeafSize,
	}
}

// Model is a trained forest. Immutable after training; safe to share as a
// read-only handle across predict calls.
type Model struct {
	EncodingVersion string   `json:"encodingVersion"`
	FeatureNames    []string `json:"featureNames"`
	Params          Params   `json:"params"`
	TrainedAt       string   `json:"trainedAt"`
	Trees           []*node  `json:"trees"`
}

// Prediction is the classifier output for one feature vector.
type Prediction struct {
	// Label is the majority-vote class.
	Label sleep.Quality `json:"label"`

	// Probabilities maps every class to its vote fraction; fractions sum to 1.
	Probabilities map[sleep.Quality]float64 `json:"probabilities"`
}

// Train fits a random forest on the training set.
//
// Returns a TrainingError when the set is empty or any quality class has no
// examples; a forest that never saw a class cannot vote for it.
func Train(examples []Example, params Params) (*Model, error) {
	if len(examples) == 0 {
		return nil, &TrainingError{Reason: "training set is empty"}
	}

	data := trainingData{
		features: make([]sleep.FeatureVector, len(examples)),
		labels:   make([]sleep.Quality, len(examples)),
	}
	var counts [numClasses]int
	for i, ex := range examples {
		if len(ex.Features) != sleep.FeatureCount {
			return nil, &TrainingError{Reason: "example has wrong feature count"}
		}
		if !ex.Label.Valid() {
			return nil, &TrainingError{Reason: "example has unknown label"}
		}
		data.features[i] = ex.Features
		data.labels[i] = ex.Label
		counts[ex.Label]++
	}
	for q, c := range counts {
		if c == 0 {
			return nil, &TrainingError{Reason: "no examples labeled " + sleep.Quality(q).String()}
		}
	}

	if params.Trees <= 0 {
		params.Trees = defaultTrees
	}
	if params.MaxDepth <= 0 {
		params.MaxDepth = defaultMaxDepth
	}
	if params.MinLeafSize <= 0 {
		params.MinLeafSize = defaultMinLeafSize
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	trees := make([]*node, params.Trees)
	for t := range trees {
		samples := make([]int, len(examples))
		for i := range samples {
			samples[i] = rng.Intn(len(examples))
		}
		trees[t] = buildTree(data, samples, params, rng, 0)
	}

	return &Model{
		EncodingVersion: sleep.EncodingVersion,
		FeatureNames:    sleep.FeatureNames,
		Params:          params,
		TrainedAt:       time.Now().UTC().Format(time.RFC3339),
		Trees:           trees,
	}, nil
}

// Predict runs the feature vector through every tree and tallies votes.
//
// Returns an InferenceError when the vector's dimensionality does not match
// the model's training layout.
func (m *Model) Predict(features sleep.FeatureVector) (Prediction, error) {
	if len(features) != len(m.FeatureNames) {
		return Prediction{}, &InferenceError{Expected: len(m.FeatureNames), Got: len(features)}
	}

	var votes [numClasses]int
	for _, tree := range m.Trees {
		votes[tree.classify(features)]++
	}

	probs := make(map[sleep.Quality]float64, numClasses)
	for q := sleep.Quality(0); q < numClasses; q++ {
		probs[q] = float64(votes[q]) / float64(len(m.Trees))
	}

	return Prediction{
		Label:         majorityClass(votes),
		Probabilities: probs,
	}, nil
}
