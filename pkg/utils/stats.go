// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package utils

import (
	"math"
	"sort"
)

// LatencySummary holds the percentile breakdown of a latency series in
// milliseconds.
type LatencySummary struct {
	Median  float64
	P90     float64
	P95     float64
	P99     float64
	Average float64
	Count   int
}

// Summarize computes the percentile summary of raw latencies. The input is
// not modified. An empty series yields a zero summary.
func Summarize(raw []float64) LatencySummary {
	if len(raw) == 0 {
		return LatencySummary{}
	}
	latencies := make([]float64, len(raw))
	copy(latencies, raw)
	sort.Float64s(latencies)

	n := float64(len(latencies))
	idx := func(pct float64) int {
		return int(math.Floor(pct * n / 100.))
	}

	var sum float64
	for _, l := range latencies {
		sum += l
	}

	return LatencySummary{
		Median:  latencies[idx(50)],
		P90:     latencies[idx(90)],
		P95:     latencies[idx(95)],
		P99:     latencies[idx(99)],
		Average: sum / n,
		Count:   len(latencies),
	}
}

// AverageFloat64 returns the arithmetic mean, or zero for an empty slice.
func AverageFloat64(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
