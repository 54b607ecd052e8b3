package skewheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/skewheap/internal/arena"
	"github.com/hupe1980/skewheap/testutil"
)

// refNode is a pointer-based skew heap using the textbook recursive merge.
type refNode struct {
	item        int
	left, right *refNode
}

func refMerge(a, b *refNode) *refNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.item < a.item {
		a, b = b, a
	}
	return &refNode{item: a.item, left: refMerge(b, a.right), right: a.left}
}

func refShape(n *refNode, out []int) []int {
	if n == nil {
		return append(out, -1)
	}
	out = append(out, n.item)
	out = refShape(n.left, out)
	return refShape(n.right, out)
}

func heapShape(h *Heap[int]) []int {
	var walk func(x arena.Handle, out []int) []int
	walk = func(x arena.Handle, out []int) []int {
		if x == arena.Nil {
			return append(out, -1)
		}
		n := h.arena.Node(x)
		out = append(out, n.Item)
		out = walk(n.Left, out)
		return walk(n.Right, out)
	}
	return walk(h.root, nil)
}

func TestMerge_MatchesRecursiveDefinition(t *testing.T) {
	rng := testutil.NewRNG(5)
	h := New[int]()
	var ref *refNode

	for i, op := range rng.Ops(4000, 0.6) {
		if op.Put {
			h.Put(op.Item % 50)
			ref = refMerge(ref, &refNode{item: op.Item % 50})
		} else {
			got, ok := h.Take()
			if ref == nil {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, ref.item, got)
			ref = refMerge(ref.left, ref.right)
		}
		if i%97 == 0 {
			require.Equal(t, refShape(ref, nil), heapShape(h), "shape after op %d", i)
		}
	}
	assert.Equal(t, refShape(ref, nil), heapShape(h))
}

func TestMerge_Identity(t *testing.T) {
	h := New[int]()
	x, err := h.arena.Allocate(1)
	require.NoError(t, err)

	assert.Equal(t, arena.Nil, h.merge(arena.Nil, arena.Nil))
	assert.Equal(t, x, h.merge(x, arena.Nil))
	assert.Equal(t, x, h.merge(arena.Nil, x))
}

func TestMerge_SkewStep(t *testing.T) {
	// Putting ascending keys always merges a singleton under the root:
	// the skew step swaps children each time.
	h := New[int]()
	h.Put(1)
	h.Put(2)
	assert.Equal(t, []int{1, 2, -1, -1, -1}, heapShape(h))
	h.Put(3)
	// merge(1, 3): left' = merge(3, old right nil) = 3, right' = old left 2
	assert.Equal(t, []int{1, 3, -1, -1, 2, -1, -1}, heapShape(h))
	requireValid(t, h)
}

func TestMerge_DeepSpine(t *testing.T) {
	// Descending inserts build a long left spine; merges must not recurse on it.
	h := New[int]()
	const n = 100_000
	for i := n; i > 0; i-- {
		h.Put(i)
	}
	for want := 1; want <= 10; want++ {
		got, ok := h.Take()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	assert.Equal(t, n-10, h.Size())
}
