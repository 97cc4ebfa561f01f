package pkg

import (
	"fmt"

	"github.com/owiklo/randfill/pkg/dist"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// DefaultSeed seeds fills that do not specify a seed.
const DefaultSeed uint64 = 1337

// Numeric bounds the element types a fill can produce. Anything outside it
// is rejected at compile time.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// options collects the generator configuration of a single fill call.
type options struct {
	seed uint64
	alg  Algorithm
	src  rand.Source
}

// Option configures a single fill call.
type Option func(*options)

// WithSeed sets the generator seed for this call.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithAlgorithm selects the generator algorithm for this call instead of
// the registry default.
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) { o.alg = alg }
}

// WithSource draws from a caller-owned source, ignoring WithSeed and
// WithAlgorithm. The source state advances with every draw, so successive
// fills through one source continue its stream.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// newSource resolves opts into the source for one call: a caller-supplied
// source wins, otherwise the chosen algorithm is constructed and seeded
// with the chosen seed.
func newSource(opts []Option) rand.Source {
	o := options{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src != nil {
		return o.src
	}
	if o.alg.New == nil {
		o.alg = DefaultAlgorithm()
	}
	return o.alg.New(o.seed)
}

// isFloat reports whether T is a floating-point type. Integer division
// truncates 1/2 to zero; float division does not. Works for named types,
// which a type switch on any would miss.
func isFloat[T Numeric]() bool {
	return T(1)/T(2) != T(0)
}

// isUnsigned reports whether T is an unsigned integer type: 0 - 1 wraps
// above zero only without a sign.
func isUnsigned[T Numeric]() bool {
	return T(0)-T(1) > T(0)
}

// signBit is xored onto signed values to map them into uint64 space with
// their order preserved.
const signBit = 1 << 63

func checkRange[T Numeric](min, max T) {
	if min > max {
		panic(fmt.Sprintf("randfill: inverted range [%v, %v]", min, max))
	}
}

// sampler returns the draw strategy for element type T over [min, max],
// selected from the type alone, once per call. Callers validate the range
// first.
func sampler[T Numeric](min, max T, src rand.Source) func() T {
	switch {
	case isFloat[T]():
		u := dist.NewRealUniform(float64(min), float64(max), src)
		return func() T { return T(u.Rand()) }
	case isUnsigned[T]():
		u := dist.NewIntUniform(uint64(min), uint64(max), src)
		return func() T { return T(u.Rand()) }
	default:
		u := dist.NewIntUniform(uint64(min)^signBit, uint64(max)^signBit, src)
		return func() T { return T(u.Rand() ^ signBit) }
	}
}

// Fill overwrites every element of s with a value drawn uniformly from
// [min, max]: inclusive of both bounds for integer element types, the
// continuous [min, max) convention for floating-point ones. A fresh
// generator is constructed and seeded exactly once per call (DefaultSeed
// and the registry default algorithm unless options say otherwise), and
// elements are overwritten in order, one draw each, so identical element
// type, bounds, seed, algorithm, and length reproduce the identical
// sequence. The slice is never grown, shrunk, or reallocated; an empty s
// draws nothing. Fill panics if min > max.
func Fill[T Numeric](s []T, min, max T, opts ...Option) {
	checkRange(min, max)
	next := sampler(min, max, newSource(opts))
	for i := range s {
		s[i] = next()
	}
}

// Slice returns a new slice of length n filled like Fill.
func Slice[T Numeric](n int, min, max T, opts ...Option) []T {
	s := make([]T, n)
	Fill(s, min, max, opts...)
	return s
}

// FillMatrix overwrites every element of m like Fill, consuming a single
// generator across all rows in row-major order. Rows may differ in length;
// nil rows draw nothing.
func FillMatrix[T Numeric](m [][]T, min, max T, opts ...Option) {
	checkRange(min, max)
	next := sampler(min, max, newSource(opts))
	for _, row := range m {
		for i := range row {
			row[i] = next()
		}
	}
}
