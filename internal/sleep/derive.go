package sleep

import "fmt"

// FeatureCount is the fixed dimensionality of a FeatureVector.
const FeatureCount = 9

// FeatureNames lists the features in vector order. The order is frozen under
// EncodingVersion: the classifier is trained against exactly this layout.
var FeatureNames = []string{
	"sleep_duration_hours",
	"bedtime_hours",
	"wake_hours",
	"caffeine_servings",
	"exercise_minutes",
	"screen_time_minutes",
	"stress_level",
	"mood_code",
	"interruptions",
}

// FeatureVector is a fixed-order numeric encoding of one day's inputs.
type FeatureVector []float64

// ValidationError reports a daily input outside its defined domain.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Validate checks every field of the input against its domain.
func (d DailyInput) Validate() error {
	if !d.Bedtime.Valid() {
		return &ValidationError{Field: "bedtime", Value: d.Bedtime, Reason: "not a valid time of day"}
	}
	if !d.WakeTime.Valid() {
		return &ValidationError{Field: "wake_time", Value: d.WakeTime, Reason: "not a valid time of day"}
	}
	if d.Stress < 1 || d.Stress > 5 {
		return &ValidationError{Field: "stress_level", Value: d.Stress, Reason: "must be between 1 and 5"}
	}
	if d.ScreenTimeMinutes < 0 {
		return &ValidationError{Field: "screen_time_minutes", Value: d.ScreenTimeMinutes, Reason: "must not be negative"}
	}
	if d.CaffeineServings < 0 {
		return &ValidationError{Field: "caffeine_servings", Value: d.CaffeineServings, Reason: "must not be negative"}
	}
	if d.ExerciseMinutes < 0 {
		return &ValidationError{Field: "exercise_minutes", Value: d.ExerciseMinutes, Reason: "must not be negative"}
	}
	if !d.Mood.Valid() {
		return &ValidationError{Field: "mood", Value: int(d.Mood), Reason: "outside the defined mood set"}
	}
	if d.Interruptions < 0 {
		return &ValidationError{Field: "interruptions", Value: d.Interruptions, Reason: "must not be negative"}
	}
	return nil
}

// Derive converts a validated DailyInput into the classifier's feature layout.
// Sleep duration is computed with mod-24 wraparound so an overnight sleep
// (wake time numerically earlier than bedtime) yields a positive duration.
func Derive(d DailyInput) (FeatureVector, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return FeatureVector{
		d.SleepDuration(),
		d.Bedtime.Hours(),
		d.WakeTime.Hours(),
		float64(d.CaffeineServings),
		float64(d.ExerciseMinutes),
		float64(d.ScreenTimeMinutes),
		float64(d.Stress),
		float64(d.Mood),
		float64(d.Interruptions),
	}, nil
}
