package skewheap

import "github.com/hupe1980/skewheap/internal/arena"

// merge combines the trees rooted at a and b and returns the new root.
// Both inputs are consumed; only the result may be used afterwards. The
// caller is responsible for the result's Parent link.
//
// Recursively: the root with the smaller item wins (a on ties), its old left
// subtree becomes its right subtree, and its new left subtree is
// merge(loser, old right). The loop below walks that recursion top-down, so
// the depth of the merge path never touches the goroutine stack.
func (h *Heap[T]) merge(a, b arena.Handle) arena.Handle {
	if a == arena.Nil {
		return b
	}
	if b == arena.Nil {
		return a
	}
	if h.less(b, a) {
		a, b = b, a
	}
	root := a

	// a is the winner, b the other tree.
	for {
		w := h.arena.Node(a)
		oldRight := w.Right
		w.Right = w.Left

		x, y := b, oldRight
		if y != arena.Nil && h.less(y, x) {
			x, y = y, x
		}
		w.Left = x
		h.arena.Node(x).Parent = a
		if y == arena.Nil {
			return root
		}
		a, b = x, y
	}
}

// less reports whether the item at x sorts strictly before the item at y.
func (h *Heap[T]) less(x, y arena.Handle) bool {
	return h.cmp(h.arena.Node(x).Item, h.arena.Node(y).Item) < 0
}
