package arena

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/skewheap/internal/assert"
)

// CompactStats describes one compaction pass.
type CompactStats struct {
	SlotsBefore   int
	SlotsAfter    int
	Relocated     int
	BytesReleased int64
}

// Compact moves live nodes into the lowest free slots and truncates the
// table behind the last live node. root is the tree root before the pass;
// the returned handle is the root afterwards. Items and tree shape are not
// changed, only slot positions.
//
// Every handle other than the returned root is invalid after Compact.
func (a *Arena[T]) Compact(root Handle) (Handle, CompactStats) {
	st := CompactStats{SlotsBefore: len(a.nodes)}

	free := roaring.New()
	for {
		h, ok := a.free.Pop()
		if !ok {
			break
		}
		free.Add(uint32(h))
	}

	// Scan live nodes from the top; each moves into the lowest hole below it.
	for i := len(a.nodes) - 1; i >= 0 && !free.IsEmpty(); i-- {
		if !a.nodes[i].live {
			continue
		}
		lo := free.Minimum()
		if lo >= uint32(i) {
			break
		}
		from, to := Handle(i), Handle(lo)
		a.relocate(from, to)
		if root == from {
			root = to
		}
		free.Remove(lo)
		free.Add(uint32(i))
		st.Relocated++
	}

	n := len(a.nodes)
	for n > 0 && !a.nodes[n-1].live {
		n--
	}

	// Copy instead of reslicing so the old backing array can be collected.
	kept := make([]Node[T], n)
	copy(kept, a.nodes[:n])
	a.nodes = kept

	st.BytesReleased = int64(st.SlotsBefore-n)*a.slotBytes + a.credit
	a.release(st.BytesReleased)
	a.credit = 0

	it := free.Iterator()
	for it.HasNext() {
		v := it.Next()
		if v >= uint32(n) {
			break
		}
		a.free.Push(Handle(v))
	}

	st.SlotsAfter = n
	a.stats.compactions++
	a.stats.relocations += uint64(st.Relocated)
	return root, st
}

// relocate copies the node at from into the free slot to and repoints its
// parent and children at the new slot.
func (a *Arena[T]) relocate(from, to Handle) {
	assert.That(!a.nodes[to].live, "relocation target %d is live", to)

	n := a.nodes[from]
	a.nodes[to] = n

	if p := n.Parent; p != Nil {
		pn := &a.nodes[p]
		switch from {
		case pn.Left:
			pn.Left = to
		case pn.Right:
			pn.Right = to
		default:
			assert.That(false, "node %d is not a child of its parent %d", from, p)
		}
	}
	if n.Left != Nil {
		a.nodes[n.Left].Parent = to
	}
	if n.Right != Nil {
		a.nodes[n.Right].Parent = to
	}

	a.nodes[from] = freeNode[T]()
}
