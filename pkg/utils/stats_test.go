package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected LatencySummary
	}{
		{
			name:     "empty series",
			input:    nil,
			expected: LatencySummary{},
		},
		{
			name:  "single value",
			input: []float64{42},
			expected: LatencySummary{
				Median: 42, P90: 42, P95: 42, P99: 42, Average: 42, Count: 1,
			},
		},
		{
			name:  "ten values",
			input: []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			expected: LatencySummary{
				Median: 6, P90: 10, P95: 10, P99: 10, Average: 5.5, Count: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.input))
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	input := []float64{3, 1, 2}
	Summarize(input)
	assert.Equal(t, []float64{3, 1, 2}, input)
}

func TestAverageFloat64(t *testing.T) {
	assert.Equal(t, 0., AverageFloat64(nil))
	assert.Equal(t, 2., AverageFloat64([]float64{1, 2, 3}))
}
