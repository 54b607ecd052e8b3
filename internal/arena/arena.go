package arena

import (
	"errors"
	"math"
	"slices"
	"unsafe"

	"github.com/hupe1980/skewheap/internal/assert"
	"github.com/hupe1980/skewheap/internal/conv"
	"github.com/hupe1980/skewheap/internal/queue"
)

// Handle identifies a node slot in an Arena.
type Handle uint32

// Nil is the handle that refers to no node.
const Nil Handle = math.MaxUint32

// MaxSlots is the largest number of slots an arena can address.
// Nil is never a valid slot, so handles run from 0 to MaxSlots-1.
const MaxSlots = uint32(Nil)

var (
	// ErrExhausted is returned when the arena has no addressable slot left.
	ErrExhausted = errors.New("arena: slot limit reached")
	// ErrMemoryLimit is returned when the MemoryAcquirer refuses a new slot.
	ErrMemoryLimit = errors.New("arena: memory limit exceeded")
)

// MemoryAcquirer is an interface for acquiring memory without blocking.
// Implementations must be comparable (typically a pointer type).
type MemoryAcquirer interface {
	TryAcquireMemory(bytes int64) bool
	ReleaseMemory(bytes int64)
}

// Node is one stored item plus its tree links.
type Node[T any] struct {
	Item   T
	Left   Handle
	Right  Handle
	Parent Handle
	live   bool
}

// Live reports whether the slot holds an item.
func (n *Node[T]) Live() bool { return n.live }

func freeNode[T any]() Node[T] {
	return Node[T]{Left: Nil, Right: Nil, Parent: Nil}
}

// Stats tracks arena usage.
//
// Slots, Live, Free and BytesReserved are current values; the counters are
// cumulative over the life of the arena.
type Stats struct {
	Slots         int
	Live          int
	Free          int
	BytesReserved int64
	Allocs        uint64
	Reuses        uint64
	Frees         uint64
	Compactions   uint64
	Relocations   uint64
}

type counters struct {
	allocs      uint64
	reuses      uint64
	frees       uint64
	compactions uint64
	relocations uint64
}

type config struct {
	maxSlots uint32
	acquirer MemoryAcquirer
	capacity int
}

// Option is a configuration option for Arena.
type Option func(*config)

// WithMaxSlots caps the number of slots. Values <= 0 keep MaxSlots.
func WithMaxSlots(n int) Option {
	return func(c *config) {
		if n <= 0 {
			return
		}
		v, err := conv.IntToUint32(n)
		if err != nil || v > MaxSlots {
			v = MaxSlots
		}
		c.maxSlots = v
	}
}

// WithMemoryAcquirer charges appended slots to acquirer.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(c *config) {
		c.acquirer = acquirer
	}
}

// WithCapacity preallocates room for n slots. Preallocated room is not charged.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// Arena is a growable table of nodes addressed by Handle.
type Arena[T any] struct {
	nodes     []Node[T]
	free      queue.FIFO[Handle]
	cfg       config
	slotBytes int64
	reserved  int64 // bytes acquired: len(nodes)*slotBytes + credit
	credit    int64 // reserved bytes not yet backing a slot
	stats     counters
}

// New creates an empty Arena.
func New[T any](opts ...Option) *Arena[T] {
	cfg := config{maxSlots: MaxSlots}
	for _, opt := range opts {
		opt(&cfg)
	}

	var n Node[T]
	a := &Arena[T]{
		cfg:       cfg,
		slotBytes: int64(unsafe.Sizeof(n)),
	}
	if cfg.capacity > 0 {
		a.nodes = make([]Node[T], 0, min(uint64(cfg.capacity), uint64(cfg.maxSlots)))
	}
	return a
}

// Len returns the number of slots, live or free.
func (a *Arena[T]) Len() int { return len(a.nodes) }

// FreeLen returns the number of slots on the free list.
func (a *Arena[T]) FreeLen() int { return a.free.Len() }

// Live returns the number of live slots.
func (a *Arena[T]) Live() int { return len(a.nodes) - a.free.Len() }

// SlotBytes returns the bytes charged per slot.
func (a *Arena[T]) SlotBytes() int64 { return a.slotBytes }

// SharesBudget reports whether b has the same slot limit and memory acquirer,
// so that whole arenas may be exchanged between heaps without changing who
// pays for them.
func (a *Arena[T]) SharesBudget(b *Arena[T]) bool {
	return a.cfg.maxSlots == b.cfg.maxSlots && a.cfg.acquirer == b.cfg.acquirer
}

// Node returns the node at h.
// The pointer is valid until the next Allocate, Compact or Reset.
func (a *Arena[T]) Node(h Handle) *Node[T] {
	assert.That(int(h) < len(a.nodes), "handle %d out of range (len %d)", h, len(a.nodes))
	return &a.nodes[h]
}

// Allocate stores item in a free slot and returns its handle.
// The oldest freed slot is reused first; otherwise the table grows by one.
func (a *Arena[T]) Allocate(item T) (Handle, error) {
	if h, ok := a.free.Pop(); ok {
		n := &a.nodes[h]
		assert.That(!n.live, "free list handle %d is live", h)
		*n = Node[T]{Item: item, Left: Nil, Right: Nil, Parent: Nil, live: true}
		a.stats.allocs++
		a.stats.reuses++
		return h, nil
	}

	next, err := conv.IntToUint32(len(a.nodes))
	if err != nil || next >= a.cfg.maxSlots {
		return Nil, ErrExhausted
	}
	if err := a.charge(1); err != nil {
		return Nil, err
	}

	a.nodes = append(a.nodes, Node[T]{Item: item, Left: Nil, Right: Nil, Parent: Nil, live: true})
	a.stats.allocs++
	return Handle(next), nil
}

// Free clears the slot at h and puts it on the free list.
// The caller must have unlinked h from every live node first.
func (a *Arena[T]) Free(h Handle) {
	n := a.Node(h)
	assert.That(n.live, "double free of handle %d", h)
	*n = freeNode[T]()
	a.free.Push(h)
	a.stats.frees++
}

// Reserve guarantees that the next n calls to Allocate succeed.
// Nothing is modified when it returns an error.
func (a *Arena[T]) Reserve(n int) error {
	need := n - a.free.Len()
	if need <= 0 {
		return nil
	}
	if uint64(len(a.nodes))+uint64(need) > uint64(a.cfg.maxSlots) {
		return ErrExhausted
	}
	bytes, err := conv.MulInt64(int64(need), a.slotBytes)
	if err != nil {
		return ErrMemoryLimit
	}
	if extra := bytes - a.credit; extra > 0 {
		if a.cfg.acquirer != nil && !a.cfg.acquirer.TryAcquireMemory(extra) {
			return ErrMemoryLimit
		}
		a.reserved += extra
		a.credit += extra
	}
	a.nodes = slices.Grow(a.nodes, need)
	return nil
}

// Reset drops every slot and refunds all reserved memory.
func (a *Arena[T]) Reset() {
	a.release(a.reserved)
	a.nodes = nil
	a.free.Reset()
	a.credit = 0
}

// Stats returns a snapshot of arena usage.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Slots:         len(a.nodes),
		Live:          a.Live(),
		Free:          a.free.Len(),
		BytesReserved: a.reserved,
		Allocs:        a.stats.allocs,
		Reuses:        a.stats.reuses,
		Frees:         a.stats.frees,
		Compactions:   a.stats.compactions,
		Relocations:   a.stats.relocations,
	}
}

// charge pays for new slots, spending prepaid credit first.
func (a *Arena[T]) charge(slots int) error {
	bytes, err := conv.MulInt64(int64(slots), a.slotBytes)
	if err != nil {
		return ErrMemoryLimit
	}
	if a.credit >= bytes {
		a.credit -= bytes
		return nil
	}
	need := bytes - a.credit
	if a.cfg.acquirer != nil && !a.cfg.acquirer.TryAcquireMemory(need) {
		return ErrMemoryLimit
	}
	a.reserved += need
	a.credit = 0
	return nil
}

func (a *Arena[T]) release(bytes int64) {
	if bytes <= 0 {
		return
	}
	if a.cfg.acquirer != nil {
		a.cfg.acquirer.ReleaseMemory(bytes)
	}
	a.reserved -= bytes
}
