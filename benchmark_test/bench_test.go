package benchmark_test

import (
	"cmp"
	"fmt"
	"testing"

	"github.com/hupe1980/skewheap"
	"github.com/hupe1980/skewheap/internal/queue"
	"github.com/hupe1980/skewheap/testutil"
)

var sink int

func BenchmarkFillDrain(b *testing.B) {
	for _, n := range sizes {
		items := testutil.NewRNG(1).Ints(n, 1<<20)

		b.Run(fmt.Sprintf("skew/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h := skewheap.New[int](skewheap.WithInitialCapacity(n))
				for _, v := range items {
					h.Put(v)
				}
				for v := range h.Drain() {
					sink += v
				}
			}
		})

		b.Run(fmt.Sprintf("binary/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q := queue.NewBinary(cmp.Compare[int], n)
				for _, v := range items {
					q.PushItem(v)
				}
				for q.Len() > 0 {
					v, _ := q.PopItem()
					sink += v
				}
			}
		})

		b.Run(fmt.Sprintf("container/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sink += fillDrainStd(items)
			}
		})
	}
}

// BenchmarkSteadyState keeps the heap at n items and alternates put and take,
// which exercises free-slot reuse.
func BenchmarkSteadyState(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := testutil.NewRNG(2)
			h := skewheap.New[int]()
			for _, v := range rng.Ints(n, 1<<20) {
				h.Put(v)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, _ := h.Take()
				h.Put(v + rng.Intn(1000))
			}
		})
	}
}

func BenchmarkAdopt(b *testing.B) {
	for _, n := range sizes {
		left := testutil.NewRNG(3).Ints(n, 1<<20)
		right := testutil.NewRNG(4).Ints(n, 1<<20)

		b.Run(fmt.Sprintf("same-budget/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				recv, donor := build(left), build(right)
				b.StartTimer()
				recv.Adopt(donor)
			}
		})

		b.Run(fmt.Sprintf("transplant/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				recv, donor := build(left, skewheap.WithMaxNodes(1<<30)), build(right)
				b.StartTimer()
				recv.Adopt(donor)
			}
		})
	}
}

func build(items []int, opts ...skewheap.Option) *skewheap.Heap[int] {
	h := skewheap.New[int](opts...)
	for _, v := range items {
		h.Put(v)
	}
	return h
}
