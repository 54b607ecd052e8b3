package queue

// Binary is an array-backed binary min-heap ordered by a comparator.
// Value-based storage, no per-item allocation.
type Binary[T any] struct {
	cmp   func(a, b T) int
	items []T
}

// NewBinary initializes a binary heap with the given comparator and capacity.
func NewBinary[T any](cmp func(a, b T) int, capacity int) *Binary[T] {
	return &Binary[T]{
		cmp:   cmp,
		items: make([]T, 0, capacity),
	}
}

// Len returns the number of elements in the heap.
func (b *Binary[T]) Len() int { return len(b.items) }

// TopItem returns the smallest element.
func (b *Binary[T]) TopItem() (T, bool) {
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	return b.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (b *Binary[T]) PushItem(item T) {
	b.items = append(b.items, item)
	b.siftUp(len(b.items) - 1)
}

// PopItem removes and returns the smallest element while maintaining the heap invariant.
func (b *Binary[T]) PopItem() (T, bool) {
	var zero T
	n := len(b.items)
	if n == 0 {
		return zero, false
	}
	root := b.items[0]
	last := b.items[n-1]
	b.items[n-1] = zero // Zero out for GC
	b.items = b.items[:n-1]
	if n-1 > 0 {
		b.items[0] = last
		b.siftDown(0)
	}
	return root, true
}

// Reset clears the heap for reuse.
func (b *Binary[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

func (b *Binary[T]) less(i, j int) bool {
	return b.cmp(b.items[i], b.items[j]) < 0
}

func (b *Binary[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !b.less(i, p) {
			return
		}
		b.items[i], b.items[p] = b.items[p], b.items[i]
		i = p
	}
}

func (b *Binary[T]) siftDown(i int) {
	n := len(b.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && b.less(r, l) {
			best = r
		}
		if !b.less(best, i) {
			return
		}
		b.items[i], b.items[best] = b.items[best], b.items[i]
		i = best
	}
}
