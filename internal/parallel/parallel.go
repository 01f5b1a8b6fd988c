// Package parallel provides the fork-join helpers the trim pipeline runs
// on: order-preserving map and filter plus an associative reduction, all
// over an explicit worker count. There is no process-global pool; every
// call owns its goroutines for the duration of the call.
package parallel

import (
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Workers normalizes a requested worker count. Zero means one worker per
// core; anything below one is clamped to one.
func Workers(n int) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	if n < 1 {
		return 1
	}
	return n
}

// Map applies fn to every element of in on up to workers goroutines.
// Output order matches input order. Failures do not stop the other
// workers; every element error is collected so a failed run reports all
// bad records at once.
func Map[T, R any](in []T, workers int, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	errs := make([]error, len(in))
	forEachChunk(len(in), workers, func(start, end int) {
		for i := start; i < end; i++ {
			out[i], errs[i] = fn(in[i])
		}
	})
	if err := combine(errs); err != nil {
		return nil, err
	}
	return out, nil
}

// Filter keeps the elements of in for which pred returns true, preserving
// their relative input order. The predicate runs in parallel; survivors
// are collected in a single ordered sweep afterwards.
func Filter[T any](in []T, workers int, pred func(T) (bool, error)) ([]T, error) {
	keep := make([]bool, len(in))
	errs := make([]error, len(in))
	forEachChunk(len(in), workers, func(start, end int) {
		for i := start; i < end; i++ {
			keep[i], errs[i] = pred(in[i])
		}
	})
	if err := combine(errs); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(in))
	for i, ok := range keep {
		if ok {
			out = append(out, in[i])
		}
	}
	return out, nil
}

// Reduce folds in into a single accumulator: each worker folds its chunk
// into a fresh accumulator from zero, and the partials are merged at the
// end. merge must be associative and commutative with zero() as identity,
// so the result is independent of how the input was split.
func Reduce[T, A any](in []T, workers int, zero func() A, fold func(A, T) A, merge func(A, A) A) A {
	spans := chunks(len(in), workers)
	partials := make([]A, len(spans))
	var wg sync.WaitGroup
	for c, span := range spans {
		wg.Add(1)
		go func(c, start, end int) {
			defer wg.Done()
			acc := zero()
			for i := start; i < end; i++ {
				acc = fold(acc, in[i])
			}
			partials[c] = acc
		}(c, span[0], span[1])
	}
	wg.Wait()

	total := zero()
	for _, partial := range partials {
		total = merge(total, partial)
	}
	return total
}

func forEachChunk(n, workers int, run func(start, end int)) {
	var wg sync.WaitGroup
	for _, span := range chunks(n, workers) {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			run(start, end)
		}(span[0], span[1])
	}
	wg.Wait()
}

// chunks splits n items into at most workers contiguous [start,end) spans.
func chunks(n, workers int) [][2]int {
	workers = Workers(workers)
	if n == 0 {
		return nil
	}
	size := (n + workers - 1) / workers
	spans := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, [2]int{start, end})
	}
	return spans
}

func combine(errs []error) error {
	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}
