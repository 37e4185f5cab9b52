package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

func TestLabel_Rule(t *testing.T) {
	// Long restful night.
	assert.Equal(t, sleep.QualityGood, Label(8.0, 20, 2, 0))
	// Long night spoiled by screen time.
	assert.Equal(t, sleep.QualityAverage, Label(8.0, 120, 2, 0))
	// Long night spoiled by stress.
	assert.Equal(t, sleep.QualityAverage, Label(7.5, 20, 5, 0))
	// Long night spoiled by interruptions.
	assert.Equal(t, sleep.QualityAverage, Label(7.5, 20, 1, 2))
	// Borderline duration.
	assert.Equal(t, sleep.QualityAverage, Label(6.0, 170, 5, 3))
	// Short night is Poor regardless of everything else.
	assert.Equal(t, sleep.QualityPoor, Label(4.0, 0, 1, 0))
	assert.Equal(t, sleep.QualityPoor, Label(5.9, 20, 1, 0))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(200, 42)
	b := Generate(200, 42)

	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b)
}

func TestGenerate_SeedChangesSet(t *testing.T) {
	a := Generate(200, 1)
	b := Generate(200, 2)

	assert.NotEqual(t, a, b)
}

func TestGenerate_AllClassesPresent(t *testing.T) {
	for _, n := range []int{10, 50, 700} {
		examples := Generate(n, 7)

		seen := make(map[sleep.Quality]bool)
		for _, ex := range examples {
			seen[ex.Label] = true
		}
		assert.True(t, seen[sleep.QualityGood], "n=%d missing Good", n)
		assert.True(t, seen[sleep.QualityAverage], "n=%d missing Average", n)
		assert.True(t, seen[sleep.QualityPoor], "n=%d missing Poor", n)
	}
}

func TestGenerate_FeaturesConsistentWithLabels(t *testing.T) {
	examples := Generate(300, 42)

	for _, ex := range examples {
		require.Len(t, ex.Features, sleep.FeatureCount)

		duration := ex.Features[0]
		screen := int(ex.Features[5])
		stress := int(ex.Features[6])
		interruptions := int(ex.Features[8])

		assert.GreaterOrEqual(t, duration, 0.0)
		assert.Less(t, duration, 24.0)
		assert.Equal(t, Label(duration, screen, stress, interruptions), ex.Label)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "training.csv")
	examples := Generate(25, 42)

	require.NoError(t, WriteCSV(examples, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(examples)+1)

	wantHeader := append(append([]string{}, sleep.FeatureNames...), "label")
	assert.Equal(t, wantHeader, rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, sleep.FeatureCount+1)
	}
}
