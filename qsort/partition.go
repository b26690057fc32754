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

package qsort

import (
	"cmp"
	"fmt"
)

// Partition rearranges data[low:high] in place around a pivot and returns
// the pivot's final index p. On return, every element of data[low:p] is <=
// data[p] and every element of data[p:high] is >= data[p]. The rearranged
// range holds exactly the elements it held before, permuted by swaps; no
// auxiliary storage is allocated.
//
// The pivot is always the last element of the range, data[high-1], so the
// resulting permutation is deterministic. Elements equal to the pivot may
// end up on either side of p.
//
// The caller must supply a range with 0 <= low <= high <= len(data) and
// high-low >= 2; a range with fewer than two elements is trivially
// partitioned and must not be passed in. Partition panics on any violation.
func Partition[T cmp.Ordered](data []T, low, high int) int {
	checkPartitionRange(len(data), low, high)

	pivot := data[high-1]
	b := low
	for i := low; i < high-1; i++ {
		if data[i] <= pivot {
			data[i], data[b] = data[b], data[i]
			b++
		}
	}
	data[b], data[high-1] = data[high-1], data[b]
	return b
}

// PartitionFunc is Partition for a caller-supplied order. cmp must report a
// negative, zero, or positive value for a < b, a == b, and a > b
// respectively, and must describe a consistent total order; if it does not,
// the split index carries no guarantee beyond lying within [low, high).
func PartitionFunc[T any](data []T, low, high int, cmp func(a, b T) int) int {
	checkPartitionRange(len(data), low, high)

	pivot := data[high-1]
	b := low
	for i := low; i < high-1; i++ {
		if cmp(data[i], pivot) <= 0 {
			data[i], data[b] = data[b], data[i]
			b++
		}
	}
	data[b], data[high-1] = data[high-1], data[b]
	return b
}

// checkRange panics unless [low, high) is a valid range for a slice of
// length n.
func checkRange(n, low, high int) {
	if low < 0 || high > n || low > high {
		panic(fmt.Sprintf("qsort: invalid range [%d:%d) for slice of length %d", low, high, n))
	}
}

// checkPartitionRange additionally requires at least two elements.
func checkPartitionRange(n, low, high int) {
	checkRange(n, low, high)
	if high-low < 2 {
		panic(fmt.Sprintf("qsort: partition of range [%d:%d) with fewer than 2 elements", low, high))
	}
}
