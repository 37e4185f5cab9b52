package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/sleepwise/internal/config"
	"github.com/khanglvm/sleepwise/internal/history"
	"github.com/khanglvm/sleepwise/internal/trends"
)

// NewTrendsCmd creates the 'trends' command.
func NewTrendsCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Render sleep duration and quality charts from the history",
		Long: `Read the persisted history and render two chart artifacts:

  sleep_trend.html           duration and quality level per entry over time
  quality_distribution.html  how many entries landed on each label

Charts render even with zero or one entry.`,
		Example: `  # Charts into the default data directory
  sleepwise trends

  # Charts into a specific directory
  sleepwise trends --out ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrends(outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for chart files (default: the sleepwise data directory)")

	return cmd
}

func runTrends(outDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = config.DataDir()
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
		fmt.Println("No entries yet; rendering empty charts.")
	}

	paths, err := trends.Render(records, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("📊 Rendered %d chart(s) from %d entries:\n", len(paths), len(records))
	for _, p := range paths {
		fmt.Println("  " + p)
	}
	return nil
}
