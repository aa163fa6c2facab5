package aoc

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Workers is the number of goroutines Parallel runs at once.
var Workers = runtime.GOMAXPROCS(0)

// Parallel calls f on every element of in using a pool of Workers
// goroutines. The output is in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	if len(in) == 0 {
		return out
	}
	pool := MustGet(ants.NewPool(max(Workers, 1)))
	defer pool.Release()

	var wg sync.WaitGroup
	wg.Add(len(in))
	for i, v := range in {
		i, v := i, v
		MustDo(pool.Submit(func() {
			defer wg.Done()
			out[i] = f(v)
		}))
	}
	wg.Wait()
	return out
}

// Fold combines in from left to right, starting with defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel and folds the results
// with f2.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
