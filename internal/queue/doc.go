// Package queue provides the small value-based queues used by the heap.
//
// FIFO is the ring buffer behind the arena's free list: handles are reused
// oldest-freed-first. Binary is a classic array-backed binary heap kept as
// the baseline the skew heap is measured and cross-checked against.
package queue
