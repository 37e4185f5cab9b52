package trends

import (
	"github.com/khanglvm/sleepwise/internal/history"
	"github.com/khanglvm/sleepwise/internal/sleep"
)

// recentWindow is how many trailing entries the recent-average compares
// against the overall average.
const recentWindow = 7

// Stats summarizes the sleep history.
type Stats struct {
	// Entries is the total number of records.
	Entries int

	// AverageDurationHours is the mean sleep duration across all records.
	AverageDurationHours float64

	// RecentDurationHours is the mean over the last recentWindow records.
	RecentDurationHours float64

	// QualityCounts maps each label to how many records carry it.
	QualityCounts map[sleep.Quality]int

	// Latest is the most recent predicted label. Only meaningful when
	// Entries > 0.
	Latest sleep.Quality
}

// Summarize computes Stats over records in append order.
func Summarize(records []history.Record) Stats {
	stats := Stats{
		Entries:       len(records),
		QualityCounts: make(map[sleep.Quality]int),
	}
	if len(records) == 0 {
		return stats
	}

	total := 0.0
	for _, r := range records {
		total += r.SleepDurationHours
		stats.QualityCounts[r.Quality]++
	}
	stats.AverageDurationHours = total / float64(len(records))

	start := len(records) - recentWindow
	if start < 0 {
		start = 0
	}
	recent := 0.0
	for _, r := range records[start:] {
		recent += r.SleepDurationHours
	}
	stats.RecentDurationHours = recent / float64(len(records)-start)

	stats.Latest = records[len(records)-1].Quality
	return stats
}
