package testutil

import (
	"cmp"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a shuffled permutation of 0..n-1.
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Ints returns n values drawn uniformly from [0, maxVal).
// Small maxVal produces many duplicates.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Op is one step of a put/take script.
type Op struct {
	Put  bool
	Item int
}

// Ops returns a script of n operations where each is a put with
// probability putRate (items drawn from [0, n)) and a take otherwise.
func (r *RNG) Ops(n int, putRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, n)
	for i := range out {
		if r.rand.Float64() < putRate {
			out[i] = Op{Put: true, Item: r.rand.Intn(n)}
		}
	}
	return out
}

// MergeSorted merges already sorted inputs into one sorted slice
// (a k-way merge). Inputs are not modified.
func MergeSorted[T cmp.Ordered](inputs ...[]T) []T {
	total := 0
	for _, in := range inputs {
		total += len(in)
	}
	out := make([]T, 0, total)
	pos := make([]int, len(inputs))
	for len(out) < total {
		best := -1
		for i, in := range inputs {
			if pos[i] == len(in) {
				continue
			}
			if best < 0 || in[pos[i]] < inputs[best][pos[best]] {
				best = i
			}
		}
		out = append(out, inputs[best][pos[best]])
		pos[best]++
	}
	return out
}

// Sorted returns a sorted copy of items.
func Sorted[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)
	return out
}
