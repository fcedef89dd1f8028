package lists

import (
	"fmt"
	"slices"

	"layoutbench/randsrc"
	"layoutbench/seqs"
)

// ArrayList is a growable contiguous list backed by a slice.
// Growth follows append's amortized doubling.
type ArrayList[T any] struct {
	data []T
}

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// BuildArrayList appends n values from src to a list that starts with no
// capacity, so the backing array grows as it would for any append loop.
// n <= 0 yields an empty list.
func BuildArrayList(n int, src randsrc.Source) *ArrayList[float64] {
	al := NewArrayList[float64](0)
	for v := range seqs.RandomFloats(n, src) {
		al.Add(v)
	}
	return al
}

// SumArrayList adds the elements one by one in index order.
func SumArrayList[T seqs.Number](al *ArrayList[T]) T {
	var total T
	for _, v := range al.data {
		total += v
	}
	return total
}
