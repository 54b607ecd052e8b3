package skewheap

import (
	"sync"
	"sync/atomic"
)

var syncSeq atomic.Uint64

// Synchronized guards a Heap with a mutex so it can be shared between
// goroutines.
type Synchronized[T any] struct {
	mu   sync.Mutex
	seq  uint64 // lock order for Adopt
	heap *Heap[T]
}

// NewSynchronized wraps h. h must not be used directly afterwards.
func NewSynchronized[T any](h *Heap[T]) *Synchronized[T] {
	return &Synchronized[T]{
		seq:  syncSeq.Add(1),
		heap: h,
	}
}

// Size returns the number of items.
func (s *Synchronized[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Size()
}

// IsEmpty reports whether the heap holds no items.
func (s *Synchronized[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.IsEmpty()
}

// Put inserts item and returns the new size. See Heap.Put.
func (s *Synchronized[T]) Put(item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Put(item)
}

// TryPut inserts item and returns the new size. See Heap.TryPut.
func (s *Synchronized[T]) TryPut(item T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.TryPut(item)
}

// Take removes and returns the smallest item.
func (s *Synchronized[T]) Take() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Take()
}

// Peek returns the smallest item without removing it.
func (s *Synchronized[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heap.Peek()
}

// Adopt moves every item of other into s as one atomic step: no goroutine
// observes one heap changed and the other not. See Heap.Adopt.
func (s *Synchronized[T]) Adopt(other *Synchronized[T]) {
	if err := s.TryAdopt(other); err != nil {
		panic(err)
	}
}

// TryAdopt is Adopt returning the error instead of panicking.
func (s *Synchronized[T]) TryAdopt(other *Synchronized[T]) error {
	if other == nil || other == s {
		return nil
	}

	// Lock in construction order so that a.Adopt(b) racing b.Adopt(a) cannot deadlock.
	first, second := s, other
	if other.seq < s.seq {
		first, second = other, s
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	return s.heap.TryAdopt(other.heap)
}

// Do runs fn with exclusive access to the heap, for compound operations
// such as take-if-below-threshold. fn must not retain h.
func (s *Synchronized[T]) Do(fn func(h *Heap[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.heap)
}
