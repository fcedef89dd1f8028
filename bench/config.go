package bench

import (
	"layoutbench/dense"
	"layoutbench/lists"
	"layoutbench/randsrc"
)

// Config names one layout under test. It hides the concrete structure type
// so configurations of different layouts can share one slice.
type Config struct {
	Name string
	run  func(n, repeats int) []float64
}

// NewConfig pairs a builder with the reducer for the structure it returns.
func NewConfig[T any](name string, reduce func(T) float64, build func(int) T) Config {
	return Config{
		Name: name,
		run: func(n, repeats int) []float64 {
			return Run(build, reduce, n, repeats)
		},
	}
}

// Run benchmarks the configuration; see the package-level Run.
func (c Config) Run(n, repeats int) []float64 {
	if c.run == nil {
		return []float64{}
	}
	return c.run(n, repeats)
}

// Display names of the default configurations.
const (
	LinkedList   = "Linked list"   // *lists.LinkedList[float64], one node per value
	DynamicArray = "Dynamic array" // *lists.ArrayList[float64], grown by append
	DenseArray   = "Dense array"   // dense.Buffer, reduced by gonum floats.Sum
)

// Defaults returns the three layouts in report order, all drawing from src.
func Defaults(src randsrc.Source) []Config {
	return []Config{
		NewConfig(LinkedList, lists.SumLinkedList[float64], func(n int) *lists.LinkedList[float64] {
			return lists.BuildLinkedList(n, src)
		}),
		NewConfig(DynamicArray, lists.SumArrayList[float64], func(n int) *lists.ArrayList[float64] {
			return lists.BuildArrayList(n, src)
		}),
		NewConfig(DenseArray, dense.Sum, func(n int) dense.Buffer {
			return dense.Build(n, src)
		}),
	}
}
