package skewheap

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/skewheap/testutil"
)

func requireValid[T any](t *testing.T, h *Heap[T]) {
	t.Helper()
	require.NoError(t, h.validate())
}

func drainAll[T any](t *testing.T, h *Heap[T]) []T {
	t.Helper()
	var out []T
	for v := range h.Drain() {
		out = append(out, v)
	}
	requireValid(t, h)
	return out
}

func TestHeap_PositivePath(t *testing.T) {
	h := New[int]()

	assert.True(t, h.IsEmpty(), "initially empty")
	_, ok := h.Peek()
	assert.False(t, ok, "peek reports empty")
	_, ok = h.Take()
	assert.False(t, ok, "take reports empty")

	steps := []struct {
		put  int
		size int
		top  int
	}{
		{put: 10, size: 1, top: 10},
		{put: 3, size: 2, top: 3},
		{put: 15, size: 3, top: 3},
	}
	for _, s := range steps {
		assert.Equal(t, s.size, h.Put(s.put), "put returns new size")
		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, s.top, top, "peek returns top entry after put")
		assert.Equal(t, s.size, h.Size())
		assert.False(t, h.IsEmpty())
		requireValid(t, h)
	}

	for _, want := range []int{3, 10, 15} {
		got, ok := h.Take()
		require.True(t, ok)
		assert.Equal(t, want, got, "take returns top entry")
		requireValid(t, h)
	}

	_, ok = h.Take()
	assert.False(t, ok)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())
}

func TestHeap_PeekDoesNotMutate(t *testing.T) {
	h := New[int]()
	h.Put(10)
	h.Put(3)
	h.Put(15)

	top, _ := h.Peek()
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, h.Size())

	got, _ := h.Take()
	assert.Equal(t, 3, got)
	top, _ = h.Peek()
	assert.Equal(t, 10, top)
}

func TestHeap_EmptyOperationsAreStable(t *testing.T) {
	h := New[string]()
	for i := 0; i < 3; i++ {
		v, ok := h.Take()
		assert.False(t, ok)
		assert.Equal(t, "", v)
		_, ok = h.Peek()
		assert.False(t, ok)
		assert.Equal(t, 0, h.Size())
	}
	requireValid(t, h)
}

func TestHeap_DrainOrder(t *testing.T) {
	rng := testutil.NewRNG(42)

	t.Run("permutation", func(t *testing.T) {
		h := New[int]()
		items := rng.Perm(2000)
		for _, v := range items {
			h.Put(v)
		}
		requireValid(t, h)
		assert.Equal(t, testutil.Sorted(items), drainAll(t, h))
	})

	t.Run("duplicates", func(t *testing.T) {
		h := New[int]()
		items := rng.Ints(2000, 8)
		for _, v := range items {
			h.Put(v)
		}
		assert.Equal(t, testutil.Sorted(items), drainAll(t, h))
	})

	t.Run("custom comparator", func(t *testing.T) {
		desc := NewFunc(func(a, b int) int { return b - a })
		for _, v := range []int{4, 9, 1, 7} {
			desc.Put(v)
		}
		assert.Equal(t, []int{9, 7, 4, 1}, drainAll(t, desc))
	})
}

func TestHeap_SizeAccounting(t *testing.T) {
	rng := testutil.NewRNG(7)
	h := New[int]()
	var model []int

	for i, op := range rng.Ops(5000, 0.55) {
		if op.Put {
			model = append(model, op.Item)
			assert.Equal(t, len(model), h.Put(op.Item))
		} else {
			got, ok := h.Take()
			if len(model) == 0 {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				idx := slices.Index(model, slices.Min(model))
				assert.Equal(t, model[idx], got)
				model = slices.Delete(model, idx, idx+1)
			}
		}
		assert.Equal(t, len(model), h.Size())
		assert.Equal(t, len(model) == 0, h.IsEmpty())
		if i%500 == 0 {
			requireValid(t, h)
		}
	}
	requireValid(t, h)
}

func TestHeap_DrainStopsEarly(t *testing.T) {
	h := New[int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		h.Put(v)
	}

	var got []int
	for v := range h.Drain() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, h.Size())
	assert.Equal(t, []int{3, 4, 5}, drainAll(t, h))
}

func TestHeap_Clear(t *testing.T) {
	h := New[int]()
	for i := 0; i < 50; i++ {
		h.Put(i)
	}
	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Stats().Slots)
	requireValid(t, h)

	h.Put(2)
	h.Put(1)
	assert.Equal(t, []int{1, 2}, drainAll(t, h))
}

func TestHeap_SlotReuse(t *testing.T) {
	h := New[int](WithoutAutoCompaction())
	for i := 0; i < 10; i++ {
		h.Put(i)
	}
	for i := 0; i < 4; i++ {
		h.Take()
	}
	st := h.Stats()
	assert.Equal(t, 10, st.Slots)
	assert.Equal(t, 4, st.FreeSlots)

	for i := 0; i < 4; i++ {
		h.Put(100 + i)
	}
	st = h.Stats()
	assert.Equal(t, 10, st.Slots, "freed slots are reused before growing")
	assert.Equal(t, 0, st.FreeSlots)
	assert.Equal(t, uint64(4), st.Reuses)
	requireValid(t, h)
}

func TestHeap_TieBreak(t *testing.T) {
	type job struct {
		prio int
		name string
	}
	byPrio := func(a, b job) int { return a.prio - b.prio }

	t.Run("existing root wins on put", func(t *testing.T) {
		h := NewFunc(byPrio)
		h.Put(job{1, "first"})
		h.Put(job{1, "second"})
		top, _ := h.Peek()
		assert.Equal(t, "first", top.name)
	})

	t.Run("receiver root wins on adopt", func(t *testing.T) {
		a := NewFunc(byPrio)
		b := NewFunc(byPrio)
		a.Put(job{1, "a"})
		b.Put(job{1, "b"})
		b.Put(job{2, "b2"})
		a.Adopt(b)
		top, _ := a.Peek()
		assert.Equal(t, "a", top.name)
	})

	t.Run("deterministic", func(t *testing.T) {
		run := func() []job {
			rng := testutil.NewRNG(11)
			h := NewFunc(byPrio)
			for i, op := range rng.Ops(3000, 0.6) {
				if op.Put {
					h.Put(job{op.Item % 5, string(rune('a' + i%26))})
				} else {
					h.Take()
				}
			}
			return drainAll(t, h)
		}
		assert.Equal(t, run(), run())
	})
}

func TestHeap_IncomparableItems(t *testing.T) {
	h := New[float64]()
	for _, v := range []float64{2, math.NaN(), 1, math.NaN(), 3} {
		h.Put(v)
	}
	requireValid(t, h)

	got := drainAll(t, h)
	require.Len(t, got, 5)
	// cmp.Compare orders NaN before every number.
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, []float64{1, 2, 3}, got[2:])
}

func TestNewFunc_NilComparator(t *testing.T) {
	assert.Panics(t, func() { NewFunc[int](nil) })
}
