package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Median calculates the median of values, averaging the two middle values for even lengths.
// Returns NaN if values is empty.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}

// column collects generation g across runs. Runs shorter than g+1 are skipped.
func column(runs [][]float64, g int) []float64 {
	col := make([]float64, 0, len(runs))
	for _, run := range runs {
		if g < len(run) {
			col = append(col, run[g])
		}
	}
	return col
}

// generations returns the length of the longest run.
func generations(runs [][]float64) int {
	n := 0
	for _, run := range runs {
		if len(run) > n {
			n = len(run)
		}
	}
	return n
}

// MedianPerGeneration returns, for each generation, the median best fitness across runs.
func MedianPerGeneration(runs [][]float64) []float64 {
	out := make([]float64, generations(runs))
	for g := range out {
		out[g] = Median(column(runs, g))
	}
	return out
}

// MeanPerGeneration returns, for each generation, the mean best fitness across runs.
func MeanPerGeneration(runs [][]float64) []float64 {
	out := make([]float64, generations(runs))
	for g := range out {
		out[g] = stat.Mean(column(runs, g), nil)
	}
	return out
}

// Summary describes the final-generation fitness of a set of runs.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
	Max    float64
}

// Summarize reports statistics of the last generation of every run.
func Summarize(runs [][]float64) Summary {
	final := make([]float64, 0, len(runs))
	for _, run := range runs {
		if len(run) > 0 {
			final = append(final, run[len(run)-1])
		}
	}
	if len(final) == 0 {
		return Summary{Mean: math.NaN(), StdDev: math.NaN(), Median: math.NaN(), Max: math.NaN()}
	}
	mean, std := stat.MeanStdDev(final, nil)
	if len(final) == 1 {
		std = 0
	}
	return Summary{Mean: mean, StdDev: std, Median: Median(final), Max: floats.Max(final)}
}
