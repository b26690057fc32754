// Copyright 2026 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package parallel provides a parallel quicksort with the same result
// contract as the qsort package. The two sub-ranges produced by a
// partition are disjoint, so they are sorted on separate goroutines
// without any synchronization between them; every call joins its spawned
// work before returning, so the whole slice is sorted when the top-level
// call returns.
//
// Parallelism pays off only on large inputs: sub-ranges below a grain
// size are handed to the sequential sort, and new goroutines are spawned
// only while a worker token is available.
//
// Usage:
//
//	parallel.Sort(data)                       // GOMAXPROCS workers
//	parallel.SortWorkers(data, 4)             // explicit worker budget
//	parallel.SortFunc(data, cmp)              // caller-supplied order
package parallel

import (
	"cmp"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/qsortlabs/go-quicksort/qsort"
)

// grainSize: sub-ranges this size or smaller sort sequentially.
const grainSize = 2048

// Sort sorts data in place in ascending order using up to GOMAXPROCS
// workers.
func Sort[T cmp.Ordered](data []T) {
	SortWorkers(data, 0)
}

// SortWorkers is Sort with an explicit worker budget. A budget of 1 (or a
// slice shorter than the grain size) sorts entirely on the calling
// goroutine; budgets <= 0 mean GOMAXPROCS.
func SortWorkers[T cmp.Ordered](data []T, workers int) {
	newSorter[T](cmp.Compare[T], workers).sort(data, 0, len(data))
}

// SortFunc sorts data in place in the order described by cmp using up to
// GOMAXPROCS workers. The comparator must be safe for concurrent calls;
// see qsort.PartitionFunc for the ordering contract.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	SortWorkersFunc(data, cmp, 0)
}

// SortWorkersFunc is SortFunc with an explicit worker budget.
func SortWorkersFunc[T any](data []T, cmp func(a, b T) int, workers int) {
	newSorter[T](cmp, workers).sort(data, 0, len(data))
}

// sorter carries the order relation and the token pool bounding spawned
// goroutines. The calling goroutine does not consume a token, so a budget
// of n leaves n-1 tokens for spawns.
type sorter[T any] struct {
	cmp func(a, b T) int
	sem *semaphore.Weighted
}

func newSorter[T any](cmp func(a, b T) int, workers int) *sorter[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &sorter[T]{
		cmp: cmp,
		sem: semaphore.NewWeighted(int64(workers - 1)),
	}
}

func (s *sorter[T]) sort(data []T, low, high int) {
	if high-low <= grainSize {
		qsort.SortRangeFunc(data, low, high, s.cmp)
		return
	}

	p := qsort.PartitionFunc(data, low, high, s.cmp)

	// Spawn one side if a token is free, otherwise recurse inline on
	// both. TryAcquire never blocks: with all tokens in use the extra
	// goroutine would only be queued anyway.
	if s.sem.TryAcquire(1) {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.sem.Release(1)
			s.sort(data, low, p)
		}()
		s.sort(data, p+1, high)
		wg.Wait()
	} else {
		s.sort(data, low, p)
		s.sort(data, p+1, high)
	}
}
