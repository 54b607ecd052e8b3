package queue

const minFIFOCapacity = 8

// FIFO is a growable ring buffer queue.
// The zero value is an empty queue ready to use.
type FIFO[T any] struct {
	buf  []T
	head int // index of the oldest element
	n    int // number of queued elements
}

// NewFIFO creates a FIFO with room for capacity elements before growing.
func NewFIFO[T any](capacity int) *FIFO[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO[T]{buf: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *FIFO[T]) Len() int { return q.n }

// Push appends v at the tail.
func (q *FIFO[T]) Push(v T) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
}

// Pop removes and returns the oldest element.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	if q.n == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	if q.n == 0 {
		q.head = 0
	}
	return v, true
}

// Peek returns the oldest element without removing it.
func (q *FIFO[T]) Peek() (T, bool) {
	if q.n == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Reset empties the queue and drops the backing buffer.
func (q *FIFO[T]) Reset() {
	q.buf = nil
	q.head = 0
	q.n = 0
}

// grow doubles the buffer, unrolling the ring so the oldest element lands at 0.
func (q *FIFO[T]) grow() {
	size := max(2*len(q.buf), minFIFOCapacity)
	buf := make([]T, size)
	if q.n > 0 {
		first := copy(buf, q.buf[q.head:])
		if first < q.n {
			copy(buf[first:], q.buf[:q.n-first])
		}
	}
	q.buf = buf
	q.head = 0
}
