// Copyright 2026 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package selection provides order statistics (k-th smallest, median,
// percentile) built on the qsort partition primitive. Selection runs in
// O(n) on average by narrowing the partitioned range around the wanted
// rank instead of sorting it fully.
//
// All functions partially reorder their input in place; callers that need
// the original order must pass a copy.
package selection

import (
	"cmp"
	"fmt"

	"github.com/qsortlabs/go-quicksort/qsort"
)

// Select returns the element of rank k (0-indexed: k=0 is the minimum) as
// if data were sorted ascending. It panics if data is empty or k is not a
// valid rank.
//
// After Select returns, data[k] holds the result, every element before
// index k is <= it, and every element after is >= it.
func Select[T cmp.Ordered](data []T, k int) T {
	if len(data) == 0 {
		panic("selection: Select of empty slice")
	}
	if k < 0 || k >= len(data) {
		panic(fmt.Sprintf("selection: rank %d out of range for slice of length %d", k, len(data)))
	}

	low, high := 0, len(data)
	for high-low >= 2 {
		p := qsort.Partition(data, low, high)
		switch {
		case p == k:
			return data[k]
		case p > k:
			high = p
		default:
			low = p + 1
		}
	}
	return data[k]
}

// Median returns the element of rank len(data)/2, the upper median for
// even lengths. It panics on an empty slice.
func Median[T cmp.Ordered](data []T) T {
	if len(data) == 0 {
		panic("selection: Median of empty slice")
	}
	return Select(data, len(data)/2)
}

// Percentile returns the element of rank p*(len(data)-1), truncated, for p
// in [0, 1]: Percentile(data, 0) is the minimum and Percentile(data, 1)
// the maximum. It panics on an empty slice or a p outside [0, 1].
func Percentile[T cmp.Ordered](data []T, p float64) T {
	if len(data) == 0 {
		panic("selection: Percentile of empty slice")
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("selection: percentile %v outside the range [0, 1]", p))
	}
	return Select(data, int(p*float64(len(data)-1)))
}
