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

import "cmp"

// Sort sorts data in place in ascending order. Sorting an empty or
// single-element slice is a no-op.
func Sort[T cmp.Ordered](data []T) {
	sortRange(data, 0, len(data))
}

// SortRange sorts data[low:high] in place in ascending order. Elements
// outside the range are not touched. SortRange panics unless
// 0 <= low <= high <= len(data); an empty range is a no-op.
func SortRange[T cmp.Ordered](data []T, low, high int) {
	checkRange(len(data), low, high)
	sortRange(data, low, high)
}

// sortRange is the recursive driver. Each call partitions [low, high) and
// recurses on the two sides of the pivot's final index, which excludes the
// pivot itself, so both sub-ranges are strictly smaller and the recursion
// terminates.
func sortRange[T cmp.Ordered](data []T, low, high int) {
	if high-low <= 1 {
		return
	}

	p := Partition(data, low, high)
	sortRange(data, low, p)
	sortRange(data, p+1, high)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
