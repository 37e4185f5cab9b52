package sleep

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Hours returns the time as fractional hours since midnight.
func (t TimeOfDay) Hours() float64 {
	return float64(t.Hour) + float64(t.Minute)/60.0
}

// Valid reports whether the time is a real wall-clock time.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses a user-entered time of day. Accepted forms:
//
//	"10 pm", "10pm", "6 am"  (12-hour with meridiem)
//	"22", "6"                (bare 24-hour hour)
//	"22:30", "06:30"         (24-hour with minutes)
//
// Returns a ValidationError for anything else.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := s
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: raw, Reason: "empty input; examples: 10 pm, 22, 22:30"}
	}

	// 12-hour form with meridiem suffix.
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		pm := strings.HasSuffix(s, "pm")
		body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "am"), "pm"))
		t, err := parseClock(body, raw)
		if err != nil {
			return TimeOfDay{}, err
		}
		if t.Hour < 1 || t.Hour > 12 {
			return TimeOfDay{}, &ValidationError{Field: "time", Value: raw, Reason: "12-hour clock needs an hour between 1 and 12"}
		}
		if t.Hour == 12 {
			t.Hour = 0
		}
		if pm {
			t.Hour += 12
		}
		return t, nil
	}

	t, err := parseClock(s, raw)
	if err != nil {
		return TimeOfDay{}, err
	}
	if !t.Valid() {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: raw, Reason: "hour must be between 0 and 23"}
	}
	return t, nil
}

// parseClock parses "H" or "H:MM".
func parseClock(s, raw string) (TimeOfDay, error) {
	hourPart, minutePart, hasMinutes := strings.Cut(s, ":")

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return TimeOfDay{}, &ValidationError{Field: "time", Value: raw, Reason: "examples: 10 pm, 6 am, 22, 22:30"}
	}

	minute := 0
	if hasMinutes {
		minute, err = strconv.Atoi(strings.TrimSpace(minutePart))
		if err != nil || minute < 0 || minute > 59 {
			return TimeOfDay{}, &ValidationError{Field: "time", Value: raw, Reason: "minutes must be between 00 and 59"}
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
