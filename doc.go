// Package skewheap provides a mergeable min-priority queue backed by a skew heap.
//
// A Heap supports Put, Take (extract minimum), Peek and Adopt (merge another
// heap into this one), all in amortized O(log n). Every mutation is built on
// a single primitive: the skew merge of two trees, which swaps the children
// of each node on the merge path and needs no balance bookkeeping.
//
// # Storage
//
// Nodes are kept in an arena: one flat slice addressed by uint32 handles,
// with a FIFO free list so removed nodes' slots are reused before the slice
// grows. When a long run of Takes leaves the arena mostly empty (at least
// 100 slots and more than 90% free by default), the heap compacts it: live
// nodes are moved into the lowest free slots and the tail is released.
// Compaction never changes the order in which items come out.
//
// # Quick Start
//
//	h := skewheap.New[int]()
//	h.Put(10)
//	h.Put(3)
//	h.Put(15)
//
//	top, _ := h.Peek() // 3
//	for v := range h.Drain() {
//	    fmt.Println(v) // 3, 10, 15
//	}
//
// Custom orderings use NewFunc with a comparator in the style of
// slices.SortFunc:
//
//	byDeadline := skewheap.NewFunc(func(a, b Job) int {
//	    return a.Deadline.Compare(b.Deadline)
//	})
//
// # Merging
//
//	a.Adopt(b) // a now holds every item of both; b is empty and reusable
//
// # Limits
//
// WithMaxNodes and WithMemoryLimit (or a shared resource.Controller) bound
// the arena. TryPut and TryAdopt report ErrArenaExhausted or
// ErrMemoryLimitExceeded and leave the heap unchanged; Put and Adopt panic
// with the same error.
//
// # Thread Safety
//
// Heap is not safe for concurrent use. Wrap it in a Synchronized when several
// goroutines share it.
package skewheap
