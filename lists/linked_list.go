package lists

import (
	"layoutbench/randsrc"
	"layoutbench/seqs"
)

// node is one link of a singly linked chain.
// A nil next marks the tail.
type node[T any] struct {
	next *node[T]
	val  T
}

// LinkedList is a singly linked list that grows at the head.
// Every element lives in its own heap allocation, which is the
// layout the benchmark pits against contiguous storage.
type LinkedList[T any] struct {
	head *node[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// AddFirst prepends a value; the new node points at the previous head.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.head = &node[T]{next: ll.head, val: value}
	ll.size++
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// Unlink every node so a stray reference cannot pin the whole chain
	current := ll.head
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}
	ll.head = nil
	ll.size = 0
}

// ToSlice copies the values in traversal order, head first.
func (ll *LinkedList[T]) ToSlice() []T {
	res := make([]T, 0, ll.size)
	for current := ll.head; current != nil; current = current.next {
		res = append(res, current.val)
	}
	return res
}

// BuildLinkedList pushes n values from src onto an empty list, one node per
// value. The last value drawn ends up at the head, so traversal runs in
// reverse generation order. n <= 0 yields an empty list.
func BuildLinkedList(n int, src randsrc.Source) *LinkedList[float64] {
	ll := NewLinkedList[float64]()
	for v := range seqs.RandomFloats(n, src) {
		ll.AddFirst(v)
	}
	return ll
}

// SumLinkedList follows next pointers from the head to the tail,
// adding each value in turn. An empty list sums to 0.
func SumLinkedList[T seqs.Number](ll *LinkedList[T]) T {
	var total T
	for current := ll.head; current != nil; current = current.next {
		total += current.val
	}
	return total
}
