// Package resource implements a memory budget that can be shared by many heaps.
//
// Each heap charges the controller for the node slots its arena appends and
// refunds them when compaction truncates the arena or the heap is cleared.
// Slot reuse through the free list is free of charge, so a heap at steady
// state stops touching the controller entirely.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64 MiB across all heaps
//	})
//
//	jobs := skewheap.New[int](skewheap.WithResourceController(rc))
//	retries := skewheap.New[int](skewheap.WithResourceController(rc))
//
// When the budget is exhausted TryPut reports skewheap.ErrMemoryLimitExceeded
// without modifying the heap.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: they become no-ops that
// always succeed. This allows optional limiting without nil checks.
package resource
