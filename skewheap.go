package skewheap

import (
	"cmp"
	"context"
	"iter"
	"time"

	"github.com/hupe1980/skewheap/internal/arena"
	"github.com/hupe1980/skewheap/internal/assert"
)

// Heap is a mergeable min-heap of T.
//
// Create heaps with New or NewFunc; the zero value is not usable.
type Heap[T any] struct {
	cmp   func(a, b T) int
	arena *arena.Arena[T]
	root  arena.Handle
	count int
	opts  options
}

// Stats describes a heap's storage.
type Stats struct {
	Size          int    // live items
	Slots         int    // arena slots, live plus free
	FreeSlots     int    // slots waiting for reuse
	BytesReserved int64  // memory charged for the slots
	Reuses        uint64 // puts served from the free list
	Compactions   uint64
	Relocations   uint64
}

// New creates an empty heap ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *Heap[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty heap ordered by compare, which returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
// compare should be a strict weak ordering; otherwise results are
// deterministic but not sorted.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Heap[T] {
	if compare == nil {
		panic("skewheap: nil comparator")
	}
	o := applyOptions(opts)
	return &Heap[T]{
		cmp:   compare,
		arena: newArena[T](o),
		root:  arena.Nil,
		opts:  o,
	}
}

func newArena[T any](o options) *arena.Arena[T] {
	aopts := []arena.Option{
		arena.WithMaxSlots(o.maxNodes),
		arena.WithCapacity(o.initialCapacity),
	}
	if o.resources != nil {
		aopts = append(aopts, arena.WithMemoryAcquirer(o.resources))
	}
	return arena.New[T](aopts...)
}

// Size returns the number of items in the heap.
func (h *Heap[T]) Size() int { return h.count }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return h.count == 0 }

// Put inserts item and returns the new size.
// It panics with the TryPut error if no node slot is available.
func (h *Heap[T]) Put(item T) int {
	n, err := h.TryPut(item)
	if err != nil {
		panic(err)
	}
	return n
}

// TryPut inserts item and returns the new size. On failure the heap is
// unchanged and the error matches ErrArenaExhausted or ErrMemoryLimitExceeded.
func (h *Heap[T]) TryPut(item T) (int, error) {
	node, err := h.arena.Allocate(item)
	if err != nil {
		err = &OpError{Op: "put", Size: h.count, Err: translateError(err)}
		h.opts.logger.LogExhausted(context.Background(), h.count, err)
		h.opts.metricsCollector.RecordExhausted(err)
		return h.count, err
	}

	h.setRoot(h.merge(h.root, node))
	h.count++
	h.check()
	return h.count, nil
}

// Take removes and returns the smallest item.
// It returns false if the heap is empty.
func (h *Heap[T]) Take() (T, bool) {
	if h.root == arena.Nil {
		var zero T
		return zero, false
	}

	old := h.root
	n := h.arena.Node(old)
	item, left, right := n.Item, n.Left, n.Right

	h.setRoot(h.merge(left, right))
	h.arena.Free(old)
	h.count--

	if h.opts.autoCompact && h.needsCompaction() {
		h.compact()
	}
	h.check()
	return item, true
}

// Peek returns the smallest item without removing it.
// It returns false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.root == arena.Nil {
		var zero T
		return zero, false
	}
	return h.arena.Node(h.root).Item, true
}

// Adopt moves every item of other into h and leaves other empty.
// It panics with the TryAdopt error if h cannot hold other's nodes.
func (h *Heap[T]) Adopt(other *Heap[T]) {
	if err := h.TryAdopt(other); err != nil {
		panic(err)
	}
}

// TryAdopt moves every item of other into h and leaves other empty but
// usable. Items are ordered by h's comparator from then on.
//
// Adopting nil, an empty heap or h itself does nothing. On error neither
// heap is modified.
func (h *Heap[T]) TryAdopt(other *Heap[T]) error {
	if other == nil || other == h || other.count == 0 {
		return nil
	}

	start := time.Now()
	adopted := other.count
	transplanted := 0

	switch shared := h.arena.SharesBudget(other.arena); {
	case shared && h.count == 0:
		// Take the donor's arena as is.
		h.arena, other.arena = other.arena, h.arena
		h.setRoot(other.root)
	case shared && other.count > h.count:
		// Move the smaller side: our nodes into the donor's arena, then take it over.
		mine, err := other.arena.Transplant(h.arena, h.root)
		if err != nil {
			return h.adoptFailed(adopted, err)
		}
		transplanted = h.count
		h.arena, other.arena = other.arena, h.arena
		h.setRoot(h.merge(mine, other.root))
	default:
		theirs, err := h.arena.Transplant(other.arena, other.root)
		if err != nil {
			return h.adoptFailed(adopted, err)
		}
		transplanted = other.count
		h.setRoot(h.merge(h.root, theirs))
	}

	h.count += adopted
	other.arena.Reset()
	other.root = arena.Nil
	other.count = 0

	elapsed := time.Since(start)
	h.opts.logger.LogAdopt(context.Background(), adopted, transplanted, h.count, nil)
	h.opts.metricsCollector.RecordAdopt(adopted, transplanted, elapsed, nil)
	h.check()
	other.check()
	return nil
}

func (h *Heap[T]) adoptFailed(adopted int, err error) error {
	err = &OpError{Op: "adopt", Size: h.count, Err: translateError(err)}
	h.opts.logger.LogAdopt(context.Background(), adopted, 0, h.count, err)
	h.opts.metricsCollector.RecordAdopt(adopted, 0, 0, err)
	return err
}

// Clear removes every item and returns the arena's memory.
func (h *Heap[T]) Clear() {
	h.arena.Reset()
	h.root = arena.Nil
	h.count = 0
}

// Drain returns an iterator that takes items in ascending order until the
// heap is empty. Stopping early leaves the remaining items in the heap; the
// item handed to the stopping iteration has already been removed.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := h.Take()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the heap's storage.
func (h *Heap[T]) Stats() Stats {
	st := h.arena.Stats()
	return Stats{
		Size:          h.count,
		Slots:         st.Slots,
		FreeSlots:     st.Free,
		BytesReserved: st.BytesReserved,
		Reuses:        st.Reuses,
		Compactions:   st.Compactions,
		Relocations:   st.Relocations,
	}
}

func (h *Heap[T]) setRoot(root arena.Handle) {
	h.root = root
	if root != arena.Nil {
		h.arena.Node(root).Parent = arena.Nil
	}
}

// check validates every invariant after a mutation in skewheapdebug builds.
func (h *Heap[T]) check() {
	if assert.Enabled {
		assert.NoError(h.validate())
	}
}
