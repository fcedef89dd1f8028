package seqs

import (
	"iter"

	"layoutbench/randsrc"
)

// RandomFloats yields size values drawn one at a time from src.
func RandomFloats(size int, src randsrc.Source) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < size; i++ {
			if !yield(src.Float64()) {
				return
			}
		}
	}
}
