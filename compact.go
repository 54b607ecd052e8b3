package skewheap

import (
	"context"
	"time"
)

// needsCompaction reports whether the arena is large and mostly free.
func (h *Heap[T]) needsCompaction() bool {
	slots := h.arena.Len()
	if slots < h.opts.compactMinSlots {
		return false
	}
	return float64(h.arena.FreeLen()) > h.opts.compactMaxFreeRatio*float64(slots)
}

// Compact moves live nodes to the front of the arena and releases the free
// tail, whatever the current free ratio. Take does this automatically.
func (h *Heap[T]) Compact() {
	h.compact()
	h.check()
}

func (h *Heap[T]) compact() {
	start := time.Now()
	root, st := h.arena.Compact(h.root)
	h.root = root
	elapsed := time.Since(start)

	h.opts.logger.LogCompaction(context.Background(), st.SlotsBefore, st.SlotsAfter, st.Relocated, elapsed)
	h.opts.metricsCollector.RecordCompaction(st.SlotsBefore, st.SlotsAfter, st.Relocated, elapsed)
}
