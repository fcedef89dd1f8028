package seqs

import "iter"

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Mean returns the arithmetic mean of seq.
// The second result is false when seq is empty.
func Mean[T Number](seq iter.Seq[T]) (float64, bool) {
	var total float64
	n := 0
	for v := range seq {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}
