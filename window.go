package gui

// WindowFlags is the bitmask of window behavior flags (§3 Window entity,
// §6 recognised config options). Grounded on the teacher's panel_group.go
// DraggablePanel flags, generalized into the spec's closed flag set.
type WindowFlags uint32

const (
	WindowBorder WindowFlags = 1 << iota
	WindowMovable
	WindowScalable
	WindowClosable
	WindowMinimizable
	WindowNoScrollbar
	WindowTitle
	WindowScrollAutoHide
	WindowBackground // stays at the bottom of the z-order, never raised on focus
	WindowReadOnly    // propagates to every widget drawn inside the window/panel
	WindowNoInput
	WindowHidden
	WindowMinimized
	WindowClosed
)

// Window is the retained-state record for one named frame-to-frame window
// (§3 "Window"). It owns a stable slot in ctx.windows (a Pool[Window]) so
// Panel/HashTable/z-order pointers can be expressed as PoolIndex handles
// instead of raw Go pointers, per Design Notes §9.
type Window struct {
	NameHash ID
	Name     string
	Flags    WindowFlags

	Bounds Rect
	Scroll Vec2

	// z-order doubly linked list, index-based (Design Notes §9).
	prev, next PoolIndex
	self       PoolIndex

	parent PoolIndex

	// Hash Table page chain root for this window's persistent widget state
	// (property edit buffers, scroll velocity, combo/tree open flags, ...).
	table *hashTable

	// Bumped every frame_begin the window is reached; frame_clear compares
	// this against the context's current sequence to decide whether the
	// window's slot (and its table) should be garbage collected.
	seq uint64

	// popupReadOnly is the transient half of §4.4's read-only-propagation
	// rule ("Parent panels receive the Read-Only flag while a popup is
	// active, and have it removed at the parent's panel_end"): reset to
	// false at the top of every frame in windowBegin, then set by whichever
	// popup/contextual/combobox/color-picker primitive opens this frame so
	// every widget submitted afterwards in the same window sees IsReadOnly
	// == true, without polluting the persistent WindowFlags bitmask.
	popupReadOnly bool

	hidden bool
	closed bool
}

// windowSet is the per-Context collection of live windows: a Pool for
// stable storage plus the z-order list head/tail and a name->index lookup,
// replacing the teacher's ad hoc PanelRegistry map-of-pointers.
type windowSet struct {
	pool       *Pool[Window]
	byName     map[ID]PoolIndex
	zHead      PoolIndex
	zTail      PoolIndex
	activeSeq  uint64
}

func newWindowSet() *windowSet {
	return &windowSet{
		pool:   NewPool[Window](),
		byName: make(map[ID]PoolIndex),
	}
}

func hashWindowName(name string) ID {
	h := ID(0xcbf29ce484222325)
	for i := 0; i < len(name); i++ {
		h ^= ID(name[i])
		h *= 0x100000001b3
	}
	return h
}

// windowBegin implements §4.4 window_begin: hash the name, find-or-allocate
// the Window, insert it into the z-order on first sight, mark it reached
// this frame, and return it along with whether it is newly created.
func (ws *windowSet) windowBegin(name string, flags WindowFlags, initialBounds Rect) (*Window, bool) {
	nameHash := hashWindowName(name)
	if idx, ok := ws.byName[nameHash]; ok {
		if w, live := ws.pool.Get(idx); live {
			w.seq = ws.activeSeq
			w.closed = false
			w.popupReadOnly = false
			return w, false
		}
	}

	w, idx := ws.pool.Alloc()
	w.self = idx
	w.NameHash = nameHash
	w.Name = name
	w.Flags = flags
	w.Bounds = initialBounds
	w.table = newHashTable()
	w.seq = ws.activeSeq
	ws.byName[nameHash] = idx

	// z-order insertion: WindowBackground windows are pinned at the head
	// (drawn first, so they end up visually behind everything else);
	// everything else is appended at the tail (drawn last == on top).
	if flags&WindowBackground != 0 {
		ws.linkAtHead(idx)
	} else {
		ws.linkAtTail(idx)
	}
	return w, true
}

func (ws *windowSet) linkAtTail(idx PoolIndex) {
	w, _ := ws.pool.Get(idx)
	w.prev = ws.zTail
	w.next = poolNilIndex
	if tail, ok := ws.pool.Get(ws.zTail); ok {
		tail.next = idx
	} else {
		ws.zHead = idx
	}
	ws.zTail = idx
}

func (ws *windowSet) linkAtHead(idx PoolIndex) {
	w, _ := ws.pool.Get(idx)
	w.next = ws.zHead
	w.prev = poolNilIndex
	if head, ok := ws.pool.Get(ws.zHead); ok {
		head.prev = idx
	} else {
		ws.zTail = idx
	}
	ws.zHead = idx
}

func (ws *windowSet) unlink(idx PoolIndex) {
	w, ok := ws.pool.Get(idx)
	if !ok {
		return
	}
	if prev, ok := ws.pool.Get(w.prev); ok {
		prev.next = w.next
	} else {
		ws.zHead = w.next
	}
	if next, ok := ws.pool.Get(w.next); ok {
		next.prev = w.prev
	} else {
		ws.zTail = w.prev
	}
}

// raise moves idx to the tail of the z-order (topmost), unless the window
// is flagged Background, in which case it stays pinned regardless of
// focus activity — the spec's "Background windows never raise" rule.
func (ws *windowSet) raise(idx PoolIndex) {
	w, ok := ws.pool.Get(idx)
	if !ok || w.Flags&WindowBackground != 0 {
		return
	}
	if ws.zTail == idx {
		return
	}
	ws.unlink(idx)
	ws.linkAtTail(idx)
}

// windowEnd implements §4.4 window_end's bookkeeping half: nothing to
// flush for an index-based window (no intrusive pointers to repair), but
// kept as a named operation so callers mirror the begin/end pairing the
// spec requires even when a step is a no-op.
func (ws *windowSet) windowEnd(w *Window) {}

// frameClearSweep implements §4.4 frame_clear's GC pass: any window whose
// seq fell behind the just-finished frame is unreachable from this frame's
// window_begin calls and is unlinked, its table freed, and its pool slot
// released — unless it is merely minimized (minimized windows persist
// indefinitely, since the user can still un-minimize them from a taskbar
// widget that does not re-run window_begin every frame).
func (ws *windowSet) frameClearSweep() {
	idx := ws.zHead
	for idx != poolNilIndex {
		w, ok := ws.pool.Get(idx)
		if !ok {
			break
		}
		next := w.next
		stale := w.seq != ws.activeSeq
		if stale && w.Flags&WindowMinimized == 0 {
			ws.unlink(idx)
			delete(ws.byName, w.NameHash)
			ws.pool.Free(idx)
		}
		idx = next
	}
	ws.activeSeq++
}

// forEachZOrder walks windows back-to-front (bottom of the stack first),
// matching the order the spec's renderer walks the Command Buffer.
func (ws *windowSet) forEachZOrder(fn func(w *Window)) {
	for idx := ws.zHead; idx != poolNilIndex; {
		w, ok := ws.pool.Get(idx)
		if !ok {
			return
		}
		next := w.next
		fn(w)
		idx = next
	}
}

// topmostAt returns the topmost (last in z-order) window whose bounds
// contain pt and which accepts input, used by the single-owner scrollbar
// and click-to-focus rules (§4.5 "scrollbar owner", §4.4 active window).
func (ws *windowSet) topmostAt(pt Vec2) *Window {
	var found *Window
	for idx := ws.zTail; idx != poolNilIndex; {
		w, ok := ws.pool.Get(idx)
		if !ok {
			return found
		}
		if w.Flags&(WindowHidden|WindowNoInput) == 0 && w.Bounds.Contains(pt) {
			return w
		}
		idx = w.prev
	}
	return found
}
