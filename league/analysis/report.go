package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteTrialsCSV writes every recorded value in long format:
// combination, run, generation, best_fitness. Runs and generations count from 1.
func WriteTrialsCSV(w io.Writer, results []TrialResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"combination", "run", "generation", "best_fitness"}); err != nil {
		return err
	}
	for _, res := range results {
		label := res.Combination.Label()
		for r, run := range res.Runs {
			for g, fit := range run {
				record := []string{
					label,
					strconv.Itoa(r + 1),
					strconv.Itoa(g + 1),
					strconv.FormatFloat(fit, 'f', -1, 64),
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMediansCSV writes one row per generation and one column per combination holding
// the median best fitness across runs.
func WriteMediansCSV(w io.Writer, results []TrialResult) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(results)+1)
	header = append(header, "generation")
	medians := make([][]float64, len(results))
	rows := 0
	for i, res := range results {
		header = append(header, res.Combination.Label())
		medians[i] = MedianPerGeneration(res.Runs)
		if len(medians[i]) > rows {
			rows = len(medians[i])
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for g := 0; g < rows; g++ {
		record := make([]string, 0, len(results)+1)
		record = append(record, strconv.Itoa(g+1))
		for _, m := range medians {
			cell := ""
			if g < len(m) {
				cell = strconv.FormatFloat(m[g], 'f', -1, 64)
			}
			record = append(record, cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV creates filePath and fills it with write.
func SaveCSV(filePath string, results []TrialResult, write func(io.Writer, []TrialResult) error) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create results file '%s': %w", filePath, err)
	}
	defer file.Close()

	if err := write(file, results); err != nil {
		return fmt.Errorf("failed to write results '%s': %w", filePath, err)
	}
	return file.Close()
}
