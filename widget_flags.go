package gui

// WidgetFlags is the HOVERED/ACTIVE/ENTERED/LEFT/MODIFIED state bitmask a
// widget primitive reports back to its caller (§4.6's widget state
// convention). It collapses what Dear ImGui exposes as separate
// IsItemHovered/IsItemActive/IsItemEdited queries into one mask so a
// caller can test several conditions with a single comparison.
type WidgetFlags uint32

const (
	WidgetHovered WidgetFlags = 1 << iota
	WidgetActive
	WidgetEntered
	WidgetLeft
	WidgetModified
)

// widgetFlagsStore remembers last frame's level state (hovered/active) per
// widget ID so ENTERED/LEFT edges can be derived; only level bits persist
// across frames, the edge bits are recomputed every call.
var widgetFlagsStore = NewFrameStore[WidgetFlags]()

// widgetFlags derives the full state bitmask for id from this frame's
// hovered/active/modified booleans, diffs against the stored level state
// from last frame to set ENTERED/LEFT, and records the result as the
// context's last-item flags.
func (ctx *Context) widgetFlags(id ID, hovered, active, modified bool) WidgetFlags {
	prev := widgetFlagsStore.Get(id, 0)
	wasHovered := *prev&WidgetHovered != 0

	var flags WidgetFlags
	if hovered {
		flags |= WidgetHovered
	}
	if active {
		flags |= WidgetActive
	}
	if modified {
		flags |= WidgetModified
	}
	if hovered && !wasHovered {
		flags |= WidgetEntered
	}
	if !hovered && wasHovered {
		flags |= WidgetLeft
	}

	*prev = flags &^ (WidgetEntered | WidgetLeft)
	ctx.lastItemFlags = flags
	return flags
}

// LastItemFlags returns the WidgetFlags computed by the most recently
// submitted widget primitive.
func (ctx *Context) LastItemFlags() WidgetFlags {
	return ctx.lastItemFlags
}

// IsReadOnly reports whether the current window, or any ancestor window
// still open on the window stack, is marked WindowReadOnly. Popups live on
// their own popup stack, but a popup's body is drawn while its parent
// window is still open on the window stack, so a read-only parent's flag
// is visible to every widget drawn in a popup opened from it — the
// propagation rule §4.4 calls for.
func (ctx *Context) IsReadOnly() bool {
	for _, w := range ctx.windowStack {
		if w.Flags&WindowReadOnly != 0 || w.popupReadOnly {
			return true
		}
	}
	return false
}
