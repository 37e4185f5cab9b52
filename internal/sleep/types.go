/*
Package sleep defines the core domain types for sleepwise: a day's lifestyle
inputs, the categorical enums they use, and the fixed-order numeric feature
vector the classifier consumes.

The enum codes and the feature order are part of the trained model's contract.
Changing either requires retraining, so they are versioned via EncodingVersion
and stored alongside every model artifact.
*/
package sleep

import (
	"fmt"
	"strings"
)

// EncodingVersion identifies the enum/feature encoding scheme.
// Bumped whenever a category set or the feature order changes.
const EncodingVersion = "v1"

// Mood is the user's self-reported mood before sleep.
type Mood int

const (
	MoodCalm Mood = iota
	MoodHappy
	MoodNeutral
	MoodSad
	MoodAnxious
	MoodStressed
)

// moodNames maps each mood code to its display name. Order matches the
// Mood constants and is frozen under EncodingVersion.
var moodNames = []string{"Calm", "Happy", "Neutral", "Sad", "Anxious", "Stressed"}

// String returns the display name, or "Unknown" for out-of-range codes.
func (m Mood) String() string {
	if m < 0 || int(m) >= len(moodNames) {
		return "Unknown"
	}
	return moodNames[m]
}

// Valid reports whether the mood code is within the defined domain.
func (m Mood) Valid() bool {
	return m >= 0 && int(m) < len(moodNames)
}

// ParseMood converts a case-insensitive mood name to its code.
func ParseMood(s string) (Mood, error) {
	for i, name := range moodNames {
		if strings.EqualFold(s, name) {
			return Mood(i), nil
		}
	}
	return 0, &ValidationError{Field: "mood", Value: s, Reason: "must be one of Calm, Happy, Neutral, Sad, Anxious, Stressed"}
}

// MoodNames returns the full category set in encoding order.
func MoodNames() []string {
	out := make([]string, len(moodNames))
	copy(out, moodNames)
	return out
}

// Quality is the predicted sleep-quality label.
type Quality int

const (
	QualityPoor Quality = iota
	QualityAverage
	QualityGood
)

// qualityNames maps label codes to display names, in encoding order.
var qualityNames = []string{"Poor", "Average", "Good"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "Unknown"
	}
	return qualityNames[q]
}

// Valid reports whether the label code is within the defined domain.
func (q Quality) Valid() bool {
	return q >= 0 && int(q) < len(qualityNames)
}

// Level returns the chart-axis level for the label: Poor=1, Average=2, Good=3.
func (q Quality) Level() int {
	return int(q) + 1
}

// ParseQuality converts a case-insensitive label name to its code.
func ParseQuality(s string) (Quality, error) {
	for i, name := range qualityNames {
		if strings.EqualFold(s, name) {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quality label %q", s)
}

// QualityNames returns the full label set in encoding order.
func QualityNames() []string {
	out := make([]string, len(qualityNames))
	copy(out, qualityNames)
	return out
}

// DailyInput is one day's raw lifestyle inputs as collected from the user.
type DailyInput struct {
	// Bedtime is when the user went to bed.
	Bedtime TimeOfDay `json:"bedtime"`

	// WakeTime is when the user woke up. May be numerically earlier than
	// Bedtime (overnight sleep crossing midnight).
	WakeTime TimeOfDay `json:"wakeTime"`

	// Stress is the self-reported stress level, 1 (lowest) to 5 (highest).
	Stress int `json:"stress"`

	// ScreenTimeMinutes is screen time before bed, in minutes.
	ScreenTimeMinutes int `json:"screenTimeMinutes"`

	// CaffeineServings is the number of caffeinated drinks during the day.
	CaffeineServings int `json:"caffeineServings"`

	// ExerciseMinutes is exercise duration during the day, in minutes.
	ExerciseMinutes int `json:"exerciseMinutes"`

	// Mood is the mood before sleep.
	Mood Mood `json:"mood"`

	// Interruptions is how many times sleep was interrupted.
	Interruptions int `json:"interruptions"`
}

// SleepDuration returns the sleep duration in fractional hours, handling
// wraparound across midnight. The result is always within [0, 24).
func (d DailyInput) SleepDuration() float64 {
	dur := d.WakeTime.Hours() - d.Bedtime.Hours()
	if dur < 0 {
		dur += 24
	}
	return dur
}
