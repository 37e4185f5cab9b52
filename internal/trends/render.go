/*
Package trends renders the persisted sleep history into chart artifacts and
computes summary statistics over it.

Charts are self-contained HTML files produced with go-echarts: a combined
duration/quality line chart over time and a bar chart of the label
distribution. Rendering never mutates the records and tolerates degenerate
inputs (zero or one record) by producing minimal charts.
*/
package trends

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/khanglvm/sleepwise/internal/history"
	"github.com/khanglvm/sleepwise/internal/sleep"
)

// Artifact file names under the output directory.
const (
	trendChartFile        = "sleep_trend.html"
	distributionChartFile = "quality_distribution.html"
)

// Render writes the chart artifacts into outDir and returns their paths.
func Render(records []history.Record, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	trendPath := filepath.Join(outDir, trendChartFile)
	if err := renderTrendChart(records, trendPath); err != nil {
		return nil, err
	}

	distPath := filepath.Join(outDir, distributionChartFile)
	if err := renderDistributionChart(records, distPath); err != nil {
		return nil, err
	}

	return []string{trendPath, distPath}, nil
}

// renderTrendChart draws sleep duration (hours) and quality level (1=Poor,
// 2=Average, 3=Good) per entry over time.
func renderTrendChart(records []history.Record, path string) error {
	dates := make([]string, len(records))
	durations := make([]opts.LineData, len(records))
	levels := make([]opts.LineData, len(records))
	for i, r := range records {
		dates[i] = r.Date
		durations[i] = opts.LineData{Value: r.SleepDurationHours}
		levels[i] = opts.LineData{Value: r.Quality.Level()}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sleep Duration & Quality Over Time",
			Subtitle: "Quality level: 1 = Poor, 2 = Average, 3 = Good",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).
		AddSeries("Sleep Duration (hrs)", durations).
		AddSeries("Sleep Quality Level", levels).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	return writeChart(line, path)
}

// renderDistributionChart draws how many entries landed on each label.
func renderDistributionChart(records []history.Record, path string) error {
	counts := make(map[sleep.Quality]int)
	for _, r := range records {
		counts[r.Quality]++
	}

	labels := []string{}
	values := []opts.BarData{}
	for _, name := range sleep.QualityNames() {
		q, _ := sleep.ParseQuality(name)
		labels = append(labels, name)
		values = append(values, opts.BarData{Value: counts[q]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Predicted Quality Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Entries", values)

	return writeChart(bar, path)
}

// renderable is the slice of the go-echarts chart API writeChart needs.
type renderable interface {
	Render(w io.Writer) error
}

// writeChart renders a chart into an HTML file.
func writeChart(chart renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
