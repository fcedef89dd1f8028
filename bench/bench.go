// Package bench times reductions over freshly built data structures.
package bench

import (
	"runtime"
	"time"
)

// sink keeps reducer results live so the compiler cannot drop the call.
var sink float64

// Run performs repeats trials of reduce(build(n)) and returns the elapsed
// seconds of each reduction, in trial order.
//
// Every trial builds new data, then runs a blocking runtime.GC so garbage
// from earlier trials is not collected inside the timed window. Only the
// reduce call is timed, using the monotonic clock reading carried by
// time.Now. The reduced value is discarded. repeats <= 0 yields an empty
// slice. Panics from build or reduce propagate to the caller.
func Run[T any](build func(int) T, reduce func(T) float64, n, repeats int) []float64 {
	times := make([]float64, 0, max(repeats, 0))
	for range repeats {
		data := build(n)
		runtime.GC()

		start := time.Now()
		sink = reduce(data)
		elapsed := time.Since(start)

		times = append(times, elapsed.Seconds())
	}
	return times
}
