package pkg

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// ErrUnknownAlgorithm is returned when a name has no registered algorithm.
var ErrUnknownAlgorithm = errors.New("randfill: unknown algorithm")

// Names of the generator algorithms registered by default.
const (
	AlgMT19937    = "mt19937"
	AlgMT19937_64 = "mt19937-64"
	AlgSplitMix64 = "splitmix64"
)

// Algorithm describes a pseudo-random generator by name together with a
// constructor producing an independent source seeded with seed.
type Algorithm struct {
	Name string
	New  func(seed uint64) rand.Source
}

// AlgorithmRegistry manages the named generator algorithms available to
// fill operations.
type AlgorithmRegistry struct {
	mu         sync.RWMutex
	algorithms map[string]Algorithm
	defaultAlg string
}

// globalAlgorithms is the default global algorithm registry.
var globalAlgorithms = &AlgorithmRegistry{
	algorithms: make(map[string]Algorithm),
}

func init() {
	RegisterAlgorithm(Algorithm{Name: AlgMT19937, New: newMT19937})
	RegisterAlgorithm(Algorithm{Name: AlgMT19937_64, New: newMT19937_64})
	RegisterAlgorithm(Algorithm{Name: AlgSplitMix64, New: newSplitMix64})
	if err := SetDefaultAlgorithm(AlgMT19937); err != nil {
		panic(err)
	}
}

func newMT19937(seed uint64) rand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}

func newMT19937_64(seed uint64) rand.Source {
	src := prng.NewMT19937_64()
	src.Seed(seed)
	return src
}

func newSplitMix64(seed uint64) rand.Source {
	src := prng.NewSplitMix64()
	src.Seed(seed)
	return src
}

// RegisterAlgorithm makes alg available under its name, replacing any
// previous registration under the same name.
func RegisterAlgorithm(alg Algorithm) {
	globalAlgorithms.mu.Lock()
	defer globalAlgorithms.mu.Unlock()
	globalAlgorithms.algorithms[alg.Name] = alg
}

// LookupAlgorithm returns the algorithm registered under name.
func LookupAlgorithm(name string) (Algorithm, error) {
	globalAlgorithms.mu.RLock()
	defer globalAlgorithms.mu.RUnlock()
	alg, ok := globalAlgorithms.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// DefaultAlgorithm returns the algorithm used when a fill names none.
func DefaultAlgorithm() Algorithm {
	globalAlgorithms.mu.RLock()
	defer globalAlgorithms.mu.RUnlock()
	return globalAlgorithms.algorithms[globalAlgorithms.defaultAlg]
}

// SetDefaultAlgorithm changes the algorithm used when a fill names none.
// The name must already be registered.
func SetDefaultAlgorithm(name string) error {
	globalAlgorithms.mu.Lock()
	defer globalAlgorithms.mu.Unlock()
	if _, ok := globalAlgorithms.algorithms[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	globalAlgorithms.defaultAlg = name
	return nil
}

// ListAlgorithms returns the names of all registered algorithms, sorted.
func ListAlgorithms() []string {
	globalAlgorithms.mu.RLock()
	defer globalAlgorithms.mu.RUnlock()
	return slices.Sorted(maps.Keys(globalAlgorithms.algorithms))
}
