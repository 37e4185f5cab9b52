/*
Package history implements the persisted, append-only record of daily sleep
entries and their predictions.

Two backends implement the Store interface: a delimited-text file with a fixed
column header (the default), and a SQLite database (modernc.org/sqlite, pure
Go and CGo-free) selected when the history path ends in ".db". Records are
never updated or deleted; LoadAll returns them in original append order.
*/
package history

import (
	"strconv"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

// Record is one persisted day: the raw inputs, the derived duration, and the
// predicted label.
type Record struct {
	// Date is the calendar date of the entry, formatted YYYY-MM-DD.
	Date string `json:"date"`

	// Input holds the day's raw lifestyle inputs.
	Input sleep.DailyInput `json:"input"`

	// SleepDurationHours is the derived duration in fractional hours.
	SleepDurationHours float64 `json:"sleepDurationHours"`

	// Quality is the predicted sleep-quality label.
	Quality sleep.Quality `json:"quality"`
}

// columns is the fixed header of the delimited-text backend and the column
// order shared by both backends.
var columns = []string{
	"date",
	"bedtime",
	"wake_time",
	"stress_level",
	"screen_time_minutes",
	"caffeine_servings",
	"exercise_minutes",
	"mood",
	"interruptions",
	"sleep_duration_hours",
	"quality",
}

// row flattens a Record into column order.
func (r Record) row() []string {
	return []string{
		r.Date,
		r.Input.Bedtime.String(),
		r.Input.WakeTime.String(),
		strconv.Itoa(r.Input.Stress),
		strconv.Itoa(r.Input.ScreenTimeMinutes),
		strconv.Itoa(r.Input.CaffeineServings),
		strconv.Itoa(r.Input.ExerciseMinutes),
		r.Input.Mood.String(),
		strconv.Itoa(r.Input.Interruptions),
		strconv.FormatFloat(r.SleepDurationHours, 'f', -1, 64),
		r.Quality.String(),
	}
}

// parseRow rebuilds a Record from column order. Any malformed field fails the
// whole row; callers wrap the error as a CorruptionError with the location.
func parseRow(fields []string) (Record, error) {
	var r Record
	var err error

	if len(fields) != len(columns) {
		return r, errFieldCount(len(fields))
	}

	r.Date = fields[0]
	if r.Input.Bedtime, err = sleep.ParseTimeOfDay(fields[1]); err != nil {
		return r, err
	}
	if r.Input.WakeTime, err = sleep.ParseTimeOfDay(fields[2]); err != nil {
		return r, err
	}
	if r.Input.Stress, err = strconv.Atoi(fields[3]); err != nil {
		return r, err
	}
	if r.Input.ScreenTimeMinutes, err = strconv.Atoi(fields[4]); err != nil {
		return r, err
	}
	if r.Input.CaffeineServings, err = strconv.Atoi(fields[5]); err != nil {
		return r, err
	}
	if r.Input.ExerciseMinutes, err = strconv.Atoi(fields[6]); err != nil {
		return r, err
	}
	if r.Input.Mood, err = sleep.ParseMood(fields[7]); err != nil {
		return r, err
	}
	if r.Input.Interruptions, err = strconv.Atoi(fields[8]); err != nil {
		return r, err
	}
	if r.SleepDurationHours, err = strconv.ParseFloat(fields[9], 64); err != nil {
		return r, err
	}
	if r.Quality, err = sleep.ParseQuality(fields[10]); err != nil {
		return r, err
	}

	return r, nil
}
