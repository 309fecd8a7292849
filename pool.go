package gui

// PoolIndex is a stable 32-bit handle into a Pool, replacing the raw
// pointers the source uses for intrusive linked lists of Windows, Panels
// and Hash Table pages (Design Notes §9). The zero value is reserved to
// mean "no index" (Option<Index>'s None).
type PoolIndex uint32

const poolNilIndex PoolIndex = 0

// poolSlot wraps a pooled element with a generation counter that Free
// bumps. PoolIndex carries no generation and Get only checks whether the
// slot is in use, so a stale PoolIndex for a reused slot is not detected.
type poolSlot[T any] struct {
	value T
	gen    uint32
	inUse  bool
}

// Pool is a uniformly-sized-element slab allocator with a freelist,
// generic over the element type (Window, Panel, or HashTable page all
// instantiate their own Pool[T] rather than sharing one pool of the
// largest-of-the-three size the source describes — Go's type system makes
// the per-type slab the natural equivalent, and the reunified pool backed
// by a byte arena is reserved for operation allocation, see arena.go).
type Pool[T any] struct {
	slots    []poolSlot[T]
	freelist []PoolIndex
}

// NewPool creates an empty Pool.
func NewPool[T any]() *Pool[T] {
	p := &Pool[T]{}
	// index 0 is reserved for poolNilIndex; burn a slot.
	p.slots = append(p.slots, poolSlot[T]{})
	return p
}

// Alloc returns a pointer to a fresh zero-valued T and its stable index.
// Comes from the freelist if non-empty, else grows the slab — equivalent
// to "arena's back is used; on free, push to freelist" when no dedicated
// pool exists, generalized here since Go pools are always dedicated.
func (p *Pool[T]) Alloc() (*T, PoolIndex) {
	if n := len(p.freelist); n > 0 {
		idx := p.freelist[n-1]
		p.freelist = p.freelist[:n-1]
		slot := &p.slots[idx]
		slot.inUse = true
		var zero T
		slot.value = zero
		return &slot.value, idx
	}
	idx := PoolIndex(len(p.slots))
	p.slots = append(p.slots, poolSlot[T]{inUse: true})
	return &p.slots[idx].value, idx
}

// Get dereferences an index; returns (nil, false) if the index is nil or
// the slot has been freed.
func (p *Pool[T]) Get(idx PoolIndex) (*T, bool) {
	if idx == poolNilIndex || int(idx) >= len(p.slots) {
		return nil, false
	}
	slot := &p.slots[idx]
	if !slot.inUse {
		return nil, false
	}
	return &slot.value, true
}

// Free releases idx back to the freelist. Per §4.1, if the element is the
// very last back-allocation it would be popped instead of freelisted; Go's
// generic slab makes this distinction unobservable, so every Free simply
// bumps the generation and pushes to the freelist.
func (p *Pool[T]) Free(idx PoolIndex) {
	if idx == poolNilIndex || int(idx) >= len(p.slots) {
		return
	}
	slot := &p.slots[idx]
	if !slot.inUse {
		return
	}
	slot.inUse = false
	slot.gen++
	var zero T
	slot.value = zero
	p.freelist = append(p.freelist, idx)
}

// Len reports the number of live (non-freed) elements.
func (p *Pool[T]) Len() int {
	return len(p.slots) - 1 - len(p.freelist)
}
