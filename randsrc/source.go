// Package randsrc supplies the uniform [0,1) values the benchmark structures
// are filled with.
package randsrc

import "math/rand/v2"

// Source produces float64 values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// New returns a generator seeded from the runtime's random state,
// so every run sees different values.
func New() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeeded returns a reproducible generator.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fill writes one fresh value into every slot of dst.
func Fill(src Source, dst []float64) {
	for i := range dst {
		dst[i] = src.Float64()
	}
}

type constant float64

func (c constant) Float64() float64 { return float64(c) }

// Constant returns a Source that yields v on every call.
// v is not range checked, which lets tests inject exact values such as 1.0.
func Constant(v float64) Source {
	return constant(v)
}

type sequence struct {
	vals []float64
	pos  int
}

func (s *sequence) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos]
	s.pos = (s.pos + 1) % len(s.vals)
	return v
}

// Sequence returns a Source replaying vals in order, wrapping around at the end.
// An empty Sequence yields 0.
func Sequence(vals ...float64) Source {
	return &sequence{vals: append([]float64(nil), vals...)}
}
