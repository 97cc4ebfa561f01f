// Package dist implements the uniform draw strategies used to fill numeric
// sequences: an inclusive integer distribution and a continuous real
// distribution, both drawing from a caller-supplied random source.
package dist

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// IntUniform is a uniform distribution over the inclusive range [Min, Max]
// for any integer element type. The zero value is not usable; construct
// with NewIntUniform.
type IntUniform[T constraints.Integer] struct {
	Min, Max T

	rng  *rand.Rand
	base uint64
	span uint64
	full bool
}

// NewIntUniform returns an inclusive uniform distribution over [min, max]
// drawing from src. It panics if min > max.
func NewIntUniform[T constraints.Integer](min, max T, src rand.Source) IntUniform[T] {
	if min > max {
		panic(fmt.Sprintf("dist: inverted integer range [%v, %v]", min, max))
	}
	span := uint64(max) - uint64(min)
	return IntUniform[T]{
		Min:  min,
		Max:  max,
		rng:  rand.New(src),
		base: uint64(min),
		span: span,
		full: span == math.MaxUint64,
	}
}

// Rand returns a value in [Min, Max]. The draw happens in uint64 space, so
// signed ranges come out exact through two's-complement wraparound, and the
// bounded draw stays unbiased for every span.
func (u IntUniform[T]) Rand() T {
	if u.full {
		return T(u.rng.Uint64())
	}
	return T(u.base + u.rng.Uint64n(u.span+1))
}

// RealUniform is a continuous uniform distribution over [Min, Max) for any
// floating-point element type, backed by distuv.Uniform. Construct with
// NewRealUniform.
type RealUniform[T constraints.Float] struct {
	Min, Max T

	u distuv.Uniform
}

// NewRealUniform returns a continuous uniform distribution over [min, max)
// drawing from src. It panics if min > max.
func NewRealUniform[T constraints.Float](min, max T, src rand.Source) RealUniform[T] {
	if min > max {
		panic(fmt.Sprintf("dist: inverted real range [%v, %v]", min, max))
	}
	return RealUniform[T]{
		Min: min,
		Max: max,
		u: distuv.Uniform{
			Min: float64(min),
			Max: float64(max),
			Src: src,
		},
	}
}

// Rand returns a value in [Min, Max). The draw is made in float64 and
// converted, so for float32 elements rounding may land exactly on Max.
func (u RealUniform[T]) Rand() T {
	return T(u.u.Rand())
}
