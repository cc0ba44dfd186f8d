package analysis

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []TrialResult {
	return []TrialResult{
		{
			Combination: Combination{Selection: "tournament", Crossover: "blockwise", Mutation: "global_perm", Elitism: true},
			Runs:        [][]float64{{0.25, 0.5}, {0.75, 1}},
		},
		{
			Combination: Combination{Selection: "tournament", Crossover: "positionbased", Mutation: "random_swap", Elitism: false},
			Runs:        [][]float64{{0.5, 0.25, 0.75}},
		},
	}
}

func TestWriteTrialsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTrialsCSV(&buf, sampleResults()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+4+3)
	assert.Equal(t, []string{"combination", "run", "generation", "best_fitness"}, records[0])
	assert.Equal(t, []string{"tournament|blockwise|global_perm|elitism_true", "2", "1", "0.75"}, records[3])
	assert.Equal(t, []string{"tournament|positionbased|random_swap|elitism_false", "1", "3", "0.75"}, records[7])
}

func TestWriteMediansCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMediansCSV(&buf, sampleResults()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"generation", "tournament|blockwise|global_perm|elitism_true", "tournament|positionbased|random_swap|elitism_false"},
		{"1", "0.5", "0.5"},
		{"2", "0.75", "0.25"},
		{"3", "", "0.75"},
	}, records)
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.csv")
	require.NoError(t, SaveCSV(path, sampleResults(), WriteTrialsCSV))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "combination,run,generation,best_fitness")

	err = SaveCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), nil, WriteTrialsCSV)
	assert.Error(t, err)
}
