// Package arena provides the node slot table behind a skew heap.
//
// Nodes live in one flat slice and refer to each other by Handle (a uint32
// slot index) instead of by pointer. Freed slots go onto a FIFO free list and
// are reused oldest-first before the table grows again. The table never
// shrinks on Free; only Compact and Reset give memory back.
//
// # Memory Accounting
//
// Every appended slot is charged to an optional MemoryAcquirer (for example a
// resource.Controller) at unsafe.Sizeof(Node[T]) bytes. Reused slots are not
// charged again. Compact refunds the slots it truncates; Reset refunds all.
//
// # Concurrency Model
//
// Arena is not safe for concurrent use. The owning heap serializes access.
package arena
