/*
Package evaluation measures a trained model against a held-out slice of the
labeled set and formats the result for the train command's report.
*/
package evaluation

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/khanglvm/sleepwise/internal/classifier"
	"github.com/khanglvm/sleepwise/internal/sleep"
)

// Report contains holdout evaluation results.
type Report struct {
	// Total is the number of evaluated examples.
	Total int `json:"total"`

	// Correct is how many predictions matched the holdout label.
	Correct int `json:"correct"`

	// Accuracy is Correct / Total.
	Accuracy float64 `json:"accuracy"`

	// Confusion counts predictions by [actual][predicted] class.
	Confusion [3][3]int `json:"confusion"`
}

// Split shuffles the examples with the given seed and divides them into
// training and holdout portions.
func Split(examples []classifier.Example, holdoutFraction float64, seed int64) (train, holdout []classifier.Example) {
	shuffled := make([]classifier.Example, len(examples))
	copy(shuffled, examples)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := len(shuffled) - int(float64(len(shuffled))*holdoutFraction)
	if cut < 1 {
		cut = 1
	}
	if cut > len(shuffled) {
		cut = len(shuffled)
	}
	return shuffled[:cut], shuffled[cut:]
}

// Evaluate predicts every holdout example and tallies the confusion matrix.
func Evaluate(model *classifier.Model, holdout []classifier.Example) (Report, error) {
	report := Report{Total: len(holdout)}

	for _, ex := range holdout {
		pred, err := model.Predict(ex.Features)
		if err != nil {
			return Report{}, fmt.Errorf("holdout prediction failed: %w", err)
		}
		report.Confusion[ex.Label][pred.Label]++
		if pred.Label == ex.Label {
			report.Correct++
		}
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.Total)
	}
	return report, nil
}

// Format renders the report as a human-readable table.
func (r Report) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Holdout accuracy: %.1f%% (%d/%d)\n\n", r.Accuracy*100, r.Correct, r.Total)
	fmt.Fprintf(&b, "%-12s", "actual\\pred")
	for _, name := range sleep.QualityNames() {
		fmt.Fprintf(&b, "%10s", name)
	}
	b.WriteString("\n")

	for actual, name := range sleep.QualityNames() {
		fmt.Fprintf(&b, "%-12s", name)
		for pred := range sleep.QualityNames() {
			fmt.Fprintf(&b, "%10d", r.Confusion[actual][pred])
		}
		b.WriteString("\n")
	}

	return b.String()
}
