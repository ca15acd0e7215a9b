// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeastLoadedIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    []int64
		expected int
	}{
		{"single peer", []int64{10}, 0},
		{"clear minimum", []int64{5, 2, 9}, 1},
		{"tie keeps first", []int64{3, 3, 3}, 0},
		{"zero start", []int64{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LeastLoadedIndex(tt.input))
		})
	}
}

func TestGreedyPartitionBalancesBytes(t *testing.T) {
	// Assign clips of varying sizes the way the loader does and check the
	// two peers differ by at most the largest clip.
	sizes := []int64{100, 90, 80, 70, 30, 20, 10, 5, 120, 60}
	allocated := make([]int64, 2)
	for _, size := range sizes {
		allocated[LeastLoadedIndex(allocated)] += size
	}
	diff := allocated[0] - allocated[1]
	if diff < 0 {
		diff = -diff
	}
	assert.LessOrEqual(t, diff, int64(120))
}

func TestSplitParallelRequests(t *testing.T) {
	tests := []struct {
		total, rank, size, expected int
	}{
		{10, 0, 1, 10},
		{10, 0, 2, 5},
		{10, 1, 2, 5},
		{11, 0, 2, 6},
		{11, 1, 2, 5},
		{3, 2, 3, 1},
		{4, 0, 3, 2},
		{4, 1, 3, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SplitParallelRequests(tt.total, tt.rank, tt.size),
			"total=%d rank=%d size=%d", tt.total, tt.rank, tt.size)
	}
}

func TestSingleProcessCoordinator(t *testing.T) {
	coord := NewSingleProcess()
	assert.Equal(t, 0, coord.Rank())
	assert.Equal(t, 1, coord.Size())

	ctx := context.Background()
	require.NoError(t, coord.Barrier(ctx))

	out, err := coord.AllReduceSum(ctx, []float64{1.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, out)
}
