package dense_test

import (
	"math"
	"testing"

	"layoutbench/dense"
	"layoutbench/randsrc"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"Empty", 0, 0},
		{"Negative", -1, 0},
		{"One", 1, 1},
		{"Many", 10_000, 10_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := dense.Build(tt.n, randsrc.New())
			if buf.Len() != tt.want {
				t.Errorf("Build(%d).Len() = %d, want %d", tt.n, buf.Len(), tt.want)
			}
			for i, v := range buf {
				if v < 0 || v >= 1 {
					t.Fatalf("buf[%d] out of [0,1): %v", i, v)
				}
			}
		})
	}
}

func TestBuild_Independent(t *testing.T) {
	a := dense.Build(10, randsrc.Constant(1.0))
	b := dense.Build(10, randsrc.Constant(1.0))
	a[0] = 100
	if b[0] != 1.0 {
		t.Errorf("buffers share storage: b[0] = %v", b[0])
	}
}

func TestSum(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := dense.Sum(dense.Build(0, randsrc.New())); got != 0.0 {
			t.Errorf("Sum(empty) = %v, want 0", got)
		}
		if got := dense.Sum(nil); got != 0.0 {
			t.Errorf("Sum(nil) = %v, want 0", got)
		}
	})

	t.Run("Ones", func(t *testing.T) {
		if got := dense.Sum(dense.Build(1000, randsrc.Constant(1.0))); got != 1000.0 {
			t.Errorf("Sum = %v, want 1000", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		const n = 10_000
		vals := make([]float64, n)
		want := 0.0
		for i := range vals {
			vals[i] = float64(i%97) / 100
			want += vals[i]
		}
		got := dense.Sum(dense.Build(n, randsrc.Sequence(vals...)))
		if rel := math.Abs(got-want) / want; rel >= 1e-9 {
			t.Errorf("Sum = %v, want %v (rel err %g)", got, want, rel)
		}
	})
}

var benchSink float64

func BenchmarkSum(b *testing.B) {
	buf := dense.Build(2_000_000, randsrc.New())

	b.Run("Floats", func(b *testing.B) {
		for b.Loop() {
			benchSink = dense.Sum(buf)
		}
	})

	// scalar loop over the same memory, for comparison with the kernel
	b.Run("Scalar", func(b *testing.B) {
		for b.Loop() {
			sum := 0.0
			for _, v := range buf {
				sum += v
			}
			benchSink = sum
		}
	})
}
