package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(Median(nil)))

	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestPerGeneration(t *testing.T) {
	runs := [][]float64{
		{0.1, 0.2, 0.4},
		{0.3, 0.3, 0.5},
		{0.2, 0.4},
	}
	medians := MedianPerGeneration(runs)
	assert.InDeltaSlice(t, []float64{0.2, 0.3, 0.45}, medians, 1e-12)

	means := MeanPerGeneration(runs)
	assert.InDeltaSlice(t, []float64{0.2, 0.3, 0.45}, means, 1e-12)

	assert.Empty(t, MedianPerGeneration(nil))
}

func TestSummarize(t *testing.T) {
	s := Summarize([][]float64{{0.1, 0.2}, {0.3, 0.6}, {0.4}})
	assert.InDelta(t, 0.4, s.Mean, 1e-12)
	assert.InDelta(t, 0.4, s.Median, 1e-12)
	assert.InDelta(t, 0.6, s.Max, 1e-12)
	assert.InDelta(t, math.Sqrt(0.04), s.StdDev, 1e-12)

	single := Summarize([][]float64{{0.7}})
	assert.Equal(t, 0.0, single.StdDev)

	empty := Summarize(nil)
	assert.True(t, math.IsNaN(empty.Mean))
}
