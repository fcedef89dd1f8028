// Package dense holds the fixed-length numeric buffer layout: one contiguous
// []float64 filled in a single bulk call and reduced by a vectorized kernel.
package dense

import (
	"gonum.org/v1/gonum/floats"

	"layoutbench/randsrc"
)

// Buffer is a fixed-length run of float64 values.
type Buffer []float64

// Len returns the number of slots in the buffer.
func (b Buffer) Len() int { return len(b) }

// Build allocates n slots at once and fills all of them from src.
// n <= 0 yields an empty buffer.
func Build(n int, src randsrc.Source) Buffer {
	if n < 0 {
		n = 0
	}
	buf := make(Buffer, n)
	randsrc.Fill(src, buf)
	return buf
}

// Sum reduces the buffer with gonum's bulk summation kernel,
// which is assembly accelerated on amd64 and arm64.
// An empty buffer sums to 0.
func Sum(b Buffer) float64 {
	return floats.Sum(b)
}
