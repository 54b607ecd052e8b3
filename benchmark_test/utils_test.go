package benchmark_test

import (
	"container/heap"
)

var sizes = []int{10, 50, 100, 500, 1000, 5000}

// intHeap is the container/heap baseline.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any          { old := *h; n := len(old); x := old[n-1]; *h = old[:n-1]; return x }

func fillDrainStd(items []int) int {
	h := make(intHeap, 0, len(items))
	for _, v := range items {
		heap.Push(&h, v)
	}
	sum := 0
	for h.Len() > 0 {
		sum += heap.Pop(&h).(int)
	}
	return sum
}
