/*
Package main is the entry point for the sleepwise CLI.

sleepwise predicts a categorical sleep-quality label (Good, Average, Poor)
from a day's lifestyle inputs using a random forest trained on synthetic
data, and keeps a local append-only history with trend charts.

Usage:
  sleepwise [command]

Available Commands:
  predict     Record today's inputs and predict sleep quality
  history     List recorded entries with summary statistics
  trends      Render duration/quality charts from the history
  train       Retrain the model on regenerated synthetic data
  version     Show version information
  help        Help about any command

Examples:
  # Record today's entry interactively
  sleepwise predict

  # Render charts
  sleepwise trends --out ./reports

  # Reproducible retraining
  sleepwise train --seed 42
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/sleepwise/internal/cli"
	"github.com/khanglvm/sleepwise/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sleepwise",
		Short: "Predict and track your sleep quality from daily habits",
		Long: `sleepwise predicts tonight's sleep quality (Good, Average, Poor) from
your daily lifestyle inputs: bedtime, wake time, stress, screen time,
caffeine, exercise, mood, and sleep interruptions.

Each prediction is appended to a local history, and the trends command
renders duration and quality charts over time. Everything runs locally:
the model is a random forest trained on synthetic data, stored on disk
and reused across runs.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewPredictCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewTrendsCmd())
	rootCmd.AddCommand(cli.NewTrainCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
