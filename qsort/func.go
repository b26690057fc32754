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

// Comparator forms of the sort surface. Each mirrors its cmp.Ordered
// counterpart exactly; see PartitionFunc for the comparator contract.

// SortFunc sorts data in place in the order described by cmp.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	sortRangeFunc(data, 0, len(data), cmp)
}

// SortRangeFunc sorts data[low:high] in place in the order described by
// cmp. It panics unless 0 <= low <= high <= len(data).
func SortRangeFunc[T any](data []T, low, high int, cmp func(a, b T) int) {
	checkRange(len(data), low, high)
	sortRangeFunc(data, low, high, cmp)
}

func sortRangeFunc[T any](data []T, low, high int, cmp func(a, b T) int) {
	if high-low <= 1 {
		return
	}

	p := PartitionFunc(data, low, high, cmp)
	sortRangeFunc(data, low, p, cmp)
	sortRangeFunc(data, p+1, high, cmp)
}

// IsSortedFunc reports whether data is ordered according to cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
