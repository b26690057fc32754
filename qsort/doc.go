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

// Package qsort provides an in-place generic quicksort together with the
// partition primitive it is built on, exposed separately so callers can
// reuse it for selection-style algorithms.
//
// # Algorithm
//
// The sort is classic recursive quicksort:
//   - Ranges of length 0 or 1 are already sorted and are never partitioned.
//   - Longer ranges are partitioned around a pivot; the two sub-ranges on
//     either side of the pivot's final position are sorted recursively.
//
// Partitioning is a single-pass Lomuto scan with the last element of the
// range as pivot. The pivot choice is deterministic, so a given input always
// produces the same permutation. No median-of-three or randomization guard
// is applied: expected running time is O(n log n), but already-sorted and
// reverse-sorted inputs degrade to O(n²).
//
// # Ordering
//
// Every operation comes in two forms: a natural-order form constrained by
// [cmp.Ordered], and a Func form taking a comparator that reports a
// negative, zero, or positive value like [cmp.Compare]. A comparator that
// is not a consistent total order leaves the slice in an unspecified
// permutation of its original elements.
//
// # Contract failures
//
// Invalid ranges are caller bugs, not runtime conditions: every function
// that takes a [low, high) range panics when the range does not satisfy
// 0 <= low <= high <= len(data), and Partition additionally panics when the
// range holds fewer than two elements. Ranges are never clamped.
//
// # Stability
//
// The sort is not stable: elements that compare equal may not keep their
// original relative order.
//
// # Example Usage
//
//	import "github.com/qsortlabs/go-quicksort/qsort"
//
//	func ProcessData(data []float64) {
//	    qsort.Sort(data) // in-place ascending sort
//	}
//
//	func TopHalf(data []int) []int {
//	    p := qsort.Partition(data, 0, len(data))
//	    return data[p:]
//	}
package qsort
