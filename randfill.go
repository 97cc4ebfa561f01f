// Package randfill fills numeric slices in place with uniformly distributed
// values drawn from deterministic, seedable generators.
package randfill

import (
	"io"

	"github.com/owiklo/randfill/internal"
	"github.com/owiklo/randfill/pkg"
	"golang.org/x/exp/rand"
)

type (
	Option    = pkg.Option
	Algorithm = pkg.Algorithm
	Numeric   = pkg.Numeric
	Source    = rand.Source
)

// DefaultSeed seeds fills that do not specify a seed
const DefaultSeed = pkg.DefaultSeed

// Fill overwrites every element of s with values drawn uniformly from
// [min, max], using a fresh default-algorithm generator seeded with
// DefaultSeed. Integer element types draw inclusively of both bounds,
// floating-point ones follow the continuous [min, max) convention.
func Fill[T Numeric](s []T, min, max T) {
	pkg.Fill(s, min, max)
}

// FillSeeded overwrites every element of s like Fill, seeding the generator
// with seed instead of DefaultSeed
func FillSeeded[T Numeric](s []T, min, max T, seed uint64) {
	pkg.Fill(s, min, max, pkg.WithSeed(seed))
}

// FillWith overwrites every element of s like Fill, configured by opts
func FillWith[T Numeric](s []T, min, max T, opts ...Option) {
	pkg.Fill(s, min, max, opts...)
}

// FillMatrix overwrites every element of m like Fill, consuming a single
// generator across all rows in row-major order
func FillMatrix[T Numeric](m [][]T, min, max T, opts ...Option) {
	pkg.FillMatrix(m, min, max, opts...)
}

// Slice returns a new slice of length n filled like Fill
func Slice[T Numeric](n int, min, max T, opts ...Option) []T {
	return pkg.Slice(n, min, max, opts...)
}

// WithSeed sets the generator seed for one call
func WithSeed(seed uint64) Option {
	return pkg.WithSeed(seed)
}

// WithAlgorithm selects the generator algorithm for one call
func WithAlgorithm(alg Algorithm) Option {
	return pkg.WithAlgorithm(alg)
}

// WithSource draws one call from a caller-owned source
func WithSource(src Source) Option {
	return pkg.WithSource(src)
}

// NewReader returns a deterministic random byte stream seeded with seed,
// drawing from the default generator algorithm
func NewReader(seed uint64) io.Reader {
	return internal.NewSeededReader(pkg.DefaultAlgorithm().New(seed))
}
