/*
Package dataset generates the labeled synthetic training set the classifier
is fitted on.

This is one-time data preparation, not runtime logic: only the `train` command
touches it. Inputs are sampled from plausible daily-lifestyle distributions,
features are derived through the same pipeline used at prediction time, and
labels follow a fixed rule (long enough sleep with low screen time, low stress
and no interruptions is Good; at least six hours is Average; anything shorter
is Poor).
*/
package dataset

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/khanglvm/sleepwise/internal/classifier"
	"github.com/khanglvm/sleepwise/internal/sleep"
)

// DefaultRows is the standard training-set size.
const DefaultRows = 700

// DefaultSeed keeps the shipped training set reproducible.
const DefaultSeed = 42

// Labeling rule thresholds.
const (
	goodMinDuration    = 7.0
	averageMinDuration = 6.0
	goodMaxScreenTime  = 60
	goodMaxStress      = 2
)

// bedtimeHours and wakeHours are the sampled clock hours; combined they span
// roughly two to twelve hours of sleep so every label is reachable.
var (
	bedtimeHours = []int{21, 22, 23, 0, 1, 2}
	wakeHours    = []int{4, 5, 6, 7, 8, 9}
)

// Label applies the fixed labeling rule to a day's derived duration and raw
// inputs.
func Label(durationHours float64, screenMinutes, stress, interruptions int) sleep.Quality {
	if durationHours >= goodMinDuration && screenMinutes < goodMaxScreenTime &&
		stress <= goodMaxStress && interruptions == 0 {
		return sleep.QualityGood
	}
	if durationHours >= averageMinDuration {
		return sleep.QualityAverage
	}
	return sleep.QualityPoor
}

// Generate produces n labeled examples from the given seed. The result always
// contains every quality class: if sampling misses one, canonical examples
// for the missing classes are appended.
func Generate(n int, seed int64) []classifier.Example {
	rng := rand.New(rand.NewSource(seed))
	examples := make([]classifier.Example, 0, n+3)

	for len(examples) < n {
		input := sleep.DailyInput{
			Bedtime:           sleep.TimeOfDay{Hour: bedtimeHours[rng.Intn(len(bedtimeHours))], Minute: 30 * rng.Intn(2)},
			WakeTime:          sleep.TimeOfDay{Hour: wakeHours[rng.Intn(len(wakeHours))], Minute: 30 * rng.Intn(2)},
			Stress:            1 + rng.Intn(5),
			ScreenTimeMinutes: rng.Intn(181),
			CaffeineServings:  rng.Intn(5),
			ExerciseMinutes:   rng.Intn(91),
			Mood:              sleep.Mood(rng.Intn(len(sleep.MoodNames()))),
			Interruptions:     sampleInterruptions(rng),
		}

		features, err := sleep.Derive(input)
		if err != nil {
			// Sampled domains are valid by construction.
			continue
		}

		examples = append(examples, classifier.Example{
			Features: features,
			Label:    Label(input.SleepDuration(), input.ScreenTimeMinutes, input.Stress, input.Interruptions),
		})
	}

	return ensureAllClasses(examples)
}

// sampleInterruptions draws an interruption count skewed toward zero, the
// common case for a night's sleep.
func sampleInterruptions(rng *rand.Rand) int {
	switch r := rng.Float64(); {
	case r < 0.50:
		return 0
	case r < 0.75:
		return 1
	case r < 0.90:
		return 2
	case r < 0.97:
		return 3
	default:
		return 4
	}
}

// ensureAllClasses appends a canonical example for any class the sample
// missed, so training never fails on a class-free set.
func ensureAllClasses(examples []classifier.Example) []classifier.Example {
	seen := make(map[sleep.Quality]bool)
	for _, ex := range examples {
		seen[ex.Label] = true
	}

	for _, c := range canonicalExamples() {
		if !seen[c.Label] {
			examples = append(examples, c)
		}
	}
	return examples
}

// canonicalExamples returns one archetypal day per quality class.
func canonicalExamples() []classifier.Example {
	days := []struct {
		input sleep.DailyInput
		label sleep.Quality
	}{
		{
			// Restful night: eight hours, low stress, no interruptions.
			input: sleep.DailyInput{
				Bedtime:  sleep.TimeOfDay{Hour: 23},
				WakeTime: sleep.TimeOfDay{Hour: 7},
				Stress:   1, ScreenTimeMinutes: 15, CaffeineServings: 0,
				ExerciseMinutes: 30, Mood: sleep.MoodCalm, Interruptions: 0,
			},
			label: sleep.QualityGood,
		},
		{
			// Decent duration undone by screen time and stress.
			input: sleep.DailyInput{
				Bedtime:  sleep.TimeOfDay{Hour: 0},
				WakeTime: sleep.TimeOfDay{Hour: 6, Minute: 30},
				Stress:   3, ScreenTimeMinutes: 90, CaffeineServings: 2,
				ExerciseMinutes: 10, Mood: sleep.MoodNeutral, Interruptions: 1,
			},
			label: sleep.QualityAverage,
		},
		{
			// Short, stressed, interrupted night.
			input: sleep.DailyInput{
				Bedtime:  sleep.TimeOfDay{Hour: 1},
				WakeTime: sleep.TimeOfDay{Hour: 5},
				Stress:   5, ScreenTimeMinutes: 180, CaffeineServings: 3,
				ExerciseMinutes: 0, Mood: sleep.MoodStressed, Interruptions: 4,
			},
			label: sleep.QualityPoor,
		},
	}

	out := make([]classifier.Example, 0, len(days))
	for _, d := range days {
		features, err := sleep.Derive(d.input)
		if err != nil {
			continue
		}
		out = append(out, classifier.Example{Features: features, Label: d.label})
	}
	return out
}

// WriteCSV exports a labeled set for inspection: feature columns in vector
// order plus a trailing label column.
func WriteCSV(examples []classifier.Example, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append(append([]string{}, sleep.FeatureNames...), "label")); err != nil {
		return fmt.Errorf("failed to write dataset header: %w", err)
	}

	for _, ex := range examples {
		row := make([]string, 0, len(ex.Features)+1)
		for _, v := range ex.Features {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		row = append(row, ex.Label.String())
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write dataset row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush dataset: %w", err)
	}
	return nil
}
