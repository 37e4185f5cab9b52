package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/sleepwise/internal/config"
	"github.com/khanglvm/sleepwise/internal/history"
	"github.com/khanglvm/sleepwise/internal/sleep"
	"github.com/khanglvm/sleepwise/internal/trends"
)

// NewHistoryCmd creates the 'history' command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded entries with summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory()
		},
	}

	return cmd
}

func runHistory() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := history.Open(cfg.HistoryPath)
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	records, err := store.LoadAll()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No entries yet. Run 'sleepwise predict' to record one.")
		return nil
	}

	fmt.Printf("%-12s %-7s %-7s %-9s %-8s %s\n", "DATE", "BED", "WAKE", "DURATION", "STRESS", "QUALITY")
	for _, r := range records {
		fmt.Printf("%-12s %-7s %-7s %7.1fh  %-8d %s\n",
			r.Date,
			r.Input.Bedtime,
			r.Input.WakeTime,
			r.SleepDurationHours,
			r.Input.Stress,
			r.Quality,
		)
	}

	stats := trends.Summarize(records)
	fmt.Printf("\n%d entries · average %.1fh · last %d nights %.1fh · latest: %s\n",
		stats.Entries,
		stats.AverageDurationHours,
		min(stats.Entries, 7),
		stats.RecentDurationHours,
		stats.Latest,
	)
	for _, name := range sleep.QualityNames() {
		q, _ := sleep.ParseQuality(name)
		fmt.Printf("  %-8s %d\n", name, stats.QualityCounts[q])
	}

	return nil
}
