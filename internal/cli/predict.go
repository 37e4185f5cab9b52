package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanglvm/sleepwise/internal/classifier"
	"github.com/khanglvm/sleepwise/internal/config"
	"github.com/khanglvm/sleepwise/internal/dataset"
	"github.com/khanglvm/sleepwise/internal/history"
	"github.com/khanglvm/sleepwise/internal/sleep"
)

// suggestions maps each predicted label to its advice lines.
var suggestions = map[sleep.Quality][]string{
	sleep.QualityGood: {
		"Excellent sleep habits 🌙 Keep it up!",
	},
	sleep.QualityAverage: {
		"Increase sleep duration slightly",
		"Maintain a consistent bedtime",
	},
	sleep.QualityPoor: {
		"Reduce screen time before bed",
		"Avoid caffeine at night",
		"Try relaxation techniques",
	},
}

// NewPredictCmd creates the 'predict' command: the daily interactive entry.
func NewPredictCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Record today's inputs and predict sleep quality",
		Long: `Prompt for the day's lifestyle inputs (bedtime, wake time, stress,
screen time, caffeine, exercise, mood, interruptions), predict the sleep
quality label, and append the entry to the history.

The first run trains a default model from the built-in synthetic training
set; afterwards the saved model is reused.`,
		Example: `  # Record today's entry
  sleepwise predict

  # Backfill a specific date
  sleepwise predict --date 2026-08-29`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Entry date as YYYY-MM-DD (default: today)")

	return cmd
}

func runPredict(date string) error {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model, err := loadOrTrainModel(cfg.ModelPath)
	if err != nil {
		return err
	}

	fmt.Println("\n--- Sleep Quality Predictor ---")
	input, err := collectInput(newPrompter(os.Stdin, os.Stdout))
	if err != nil {
		return fmt.Errorf("input aborted: %w", err)
	}

	duration := input.SleepDuration()
	fmt.Printf("🕒 Auto-calculated sleep duration: %.1f hours\n", duration)
	if duration == 0 || duration > 14 {
		fmt.Println("⚠️  Unusual sleep duration; recording it as entered")
	}

	features, err := sleep.Derive(input)
	if err != nil {
		return err
	}

	pred, err := model.Predict(features)
	if err != nil {
		return err
	}

	fmt.Printf("\n🛌 Predicted sleep quality: %s\n", pred.Label)
	for _, name := range sleep.QualityNames() {
		q, _ := sleep.ParseQuality(name)
		fmt.Printf("   %-8s %5.1f%%\n", name, pred.Probabilities[q]*100)
	}

	fmt.Println("\n💡 Suggestions:")
	for _, line := range suggestions[pred.Label] {
		fmt.Println("- " + line)
	}

	store := history.Open(cfg.HistoryPath)
	if err := store.Init(); err != nil {
		return err
	}
	defer store.Close()

	record := history.Record{
		Date:               date,
		Input:              input,
		SleepDurationHours: duration,
		Quality:            pred.Label,
	}
	if err := store.Append(record); err != nil {
		return err
	}

	fmt.Printf("\n✓ Entry for %s saved to %s\n", date, cfg.HistoryPath)
	return nil
}

// loadOrTrainModel loads the saved model, training and saving a default one
// when no artifact exists yet.
func loadOrTrainModel(path string) (*classifier.Model, error) {
	if _, err := os.Stat(path); err == nil {
		return classifier.Load(path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to access model artifact: %w", err)
	}

	fmt.Println("🎓 No trained model found; training the default model...")

	params := classifier.DefaultParams()
	params.Seed = dataset.DefaultSeed
	model, err := classifier.Train(dataset.Generate(dataset.DefaultRows, dataset.DefaultSeed), params)
	if err != nil {
		return nil, err
	}

	if err := model.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("✓ Model saved to %s\n", path)

	return model, nil
}
