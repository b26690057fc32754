// Copyright 2026 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(100000) - 50000
	}
	return data
}

func TestSortEmpty(t *testing.T) {
	var data []int
	Sort(data)
	require.Empty(t, data)
}

func TestSortSmall(t *testing.T) {
	data := []int{5, 3, 8, 4, 2}
	Sort(data)
	require.Equal(t, []int{2, 3, 4, 5, 8}, data)
}

func TestSortMatchesSequential(t *testing.T) {
	// Sizes on both sides of the grain threshold.
	for _, n := range []int{100, grainSize, grainSize + 1, 50000, 200000} {
		data := randomInts(n)
		want := slices.Clone(data)
		slices.Sort(want)

		Sort(data)
		require.Equal(t, want, data, "n=%d", n)
	}
}

func TestSortWorkersOne(t *testing.T) {
	data := randomInts(100000)
	want := slices.Clone(data)
	slices.Sort(want)

	// Budget 1 leaves no spawn tokens: fully sequential path.
	SortWorkers(data, 1)
	require.Equal(t, want, data)
}

func TestSortWorkersMany(t *testing.T) {
	data := randomInts(100000)
	want := slices.Clone(data)
	slices.Sort(want)

	SortWorkers(data, 16)
	require.Equal(t, want, data)
}

func TestSortFuncDescending(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	data := randomInts(50000)
	want := slices.Clone(data)
	slices.SortFunc(want, desc)

	SortFunc(data, desc)
	require.Equal(t, want, data)
}

func TestSortDuplicateHeavy(t *testing.T) {
	// Long runs of equal elements degrade 2-way partitioning toward its
	// quadratic worst case, so keep n modest.
	data := make([]int, 20000)
	for i := range data {
		data[i] = rand.Intn(8)
	}
	want := slices.Clone(data)
	slices.Sort(want)

	Sort(data)
	require.Equal(t, want, data)
}

func BenchmarkParallelSort_100000(b *testing.B) {
	ref := randomInts(100000)
	data := make([]int, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}
