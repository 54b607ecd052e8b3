package skewheap

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/skewheap/internal/arena"
)

// validate walks the whole heap and reports the first broken invariant.
// It is O(slots) and only runs in tests and skewheapdebug builds.
func (h *Heap[T]) validate() error {
	if (h.root == arena.Nil) != (h.count == 0) {
		return fmt.Errorf("root %d inconsistent with count %d", h.root, h.count)
	}
	if got, want := h.arena.Len(), h.count+h.arena.FreeLen(); got != want {
		return fmt.Errorf("arena has %d slots, want count %d + free %d", got, h.count, h.arena.FreeLen())
	}

	slots := h.arena.Len()
	seen := bitset.New(uint(slots))
	reached := 0

	stack := make([]arena.Handle, 0, 64)
	if h.root != arena.Nil {
		if n := h.arena.Node(h.root); n.Parent != arena.Nil {
			return fmt.Errorf("root %d has parent %d", h.root, n.Parent)
		}
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if int(x) >= slots {
			return fmt.Errorf("handle %d out of range (%d slots)", x, slots)
		}
		if seen.Test(uint(x)) {
			return fmt.Errorf("handle %d reachable twice", x)
		}
		seen.Set(uint(x))
		reached++

		n := h.arena.Node(x)
		if !n.Live() {
			return fmt.Errorf("handle %d reachable but free", x)
		}
		for _, c := range [...]arena.Handle{n.Left, n.Right} {
			if c == arena.Nil {
				continue
			}
			if int(c) >= slots {
				return fmt.Errorf("child %d of %d out of range", c, x)
			}
			child := h.arena.Node(c)
			if child.Parent != x {
				return fmt.Errorf("child %d of %d has parent %d", c, x, child.Parent)
			}
			if h.cmp(n.Item, child.Item) > 0 {
				return fmt.Errorf("heap order violated between %d and child %d", x, c)
			}
			stack = append(stack, c)
		}
	}
	if reached != h.count {
		return fmt.Errorf("reached %d nodes, count is %d", reached, h.count)
	}

	free := 0
	for i := 0; i < slots; i++ {
		n := h.arena.Node(arena.Handle(i))
		if n.Live() {
			if !seen.Test(uint(i)) {
				return fmt.Errorf("live handle %d unreachable", i)
			}
			continue
		}
		if n.Left != arena.Nil || n.Right != arena.Nil || n.Parent != arena.Nil {
			return fmt.Errorf("free handle %d has links", i)
		}
		free++
	}
	if free != h.arena.FreeLen() {
		return fmt.Errorf("%d free slots, free list holds %d", free, h.arena.FreeLen())
	}
	return nil
}
