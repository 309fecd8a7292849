package gui

// hashTablePageSize is the fixed element capacity per page (§3 "Hash Table
// page"), matching the description of a chain of fixed-size (key,value)
// pages rather than a single open-ended map — kept small to make the
// chain-growth and GC-sweep behavior actually observable instead of always
// bottoming out in one page.
const hashTablePageSize = 32

type hashTableEntry struct {
	key    ID
	value  any
	seq    uint64
	inUse  bool
}

type hashTablePage struct {
	entries [hashTablePageSize]hashTableEntry
	next    *hashTablePage
}

// hashTable is the per-Window persistent widget-state store (§3 "Hash Table
// page": "Owner: exactly one Window. Entries GC'd when their owning widget
// stops being reached for N frames"). It generalizes the teacher's global
// FrameStore[T] (frame_store.go) down to a per-window, untyped-value chain
// of fixed pages so state naturally disappears when its window is freed,
// rather than relying on a second independent global sweep.
type hashTable struct {
	pages *hashTablePage
	seq   uint64
}

func newHashTable() *hashTable {
	return &hashTable{pages: &hashTablePage{}}
}

// Get returns the stored value for key and whether it was found, and marks
// the entry as reached this frame.
func (t *hashTable) Get(key ID) (any, bool) {
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			e := &p.entries[i]
			if e.inUse && e.key == key {
				e.seq = t.seq
				return e.value, true
			}
		}
	}
	return nil, false
}

// GetOrInsert returns the existing entry for key, or inserts defaultVal and
// returns that. Either way the entry is marked reached this frame.
func (t *hashTable) GetOrInsert(key ID, defaultVal any) any {
	if v, ok := t.Get(key); ok {
		return v
	}
	t.insert(key, defaultVal)
	return defaultVal
}

// Set overwrites (or inserts) the value for key.
func (t *hashTable) Set(key ID, value any) {
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			e := &p.entries[i]
			if e.inUse && e.key == key {
				e.value = value
				e.seq = t.seq
				return
			}
		}
	}
	t.insert(key, value)
}

func (t *hashTable) insert(key ID, value any) {
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			e := &p.entries[i]
			if !e.inUse {
				*e = hashTableEntry{key: key, value: value, seq: t.seq, inUse: true}
				return
			}
		}
		if p.next == nil {
			p.next = &hashTablePage{}
		}
	}
}

// Delete removes the entry for key, if any.
func (t *hashTable) Delete(key ID) {
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			e := &p.entries[i]
			if e.inUse && e.key == key {
				*e = hashTableEntry{}
				return
			}
		}
	}
}

// BeginFrame advances the reachability sequence. Call once per frame_begin
// for the owning window, before any Get/Set calls for that frame.
func (t *hashTable) BeginFrame() {
	t.seq++
}

// Sweep drops entries that were not reached (Get/Set/GetOrInsert) in the
// last maxAge frames, the GC rule named in §3 for Hash Table entries.
// Called from frame_clear alongside the window-level sweep in window.go.
func (t *hashTable) Sweep(maxAge uint64) {
	if t.seq < maxAge {
		return
	}
	threshold := t.seq - maxAge
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			e := &p.entries[i]
			if e.inUse && e.seq < threshold {
				*e = hashTableEntry{}
			}
		}
	}
}

// Len reports the number of live entries across the whole page chain.
func (t *hashTable) Len() int {
	n := 0
	for p := t.pages; p != nil; p = p.next {
		for i := range p.entries {
			if p.entries[i].inUse {
				n++
			}
		}
	}
	return n
}
