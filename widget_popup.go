package gui

// popupState is the persisted open/closed flag for a named generic Popup
// or Contextual menu (§4.6: "Popup (static / dynamic), contextual, ...
// auto-closes when clicked outside or by an explicit close call"). Kept
// distinct from ComboBoxState/ColorPickerState since a generic Popup has
// no owning widget of its own — it's opened by the caller (PopupOpen) or
// by a trigger rect (ContextualBegin), not by a click on itself.
type popupState struct {
	Open bool
}

// popupFrame saves the caller's drawing/layout state across a
// PopupBegin*/PopupEnd block, mirroring tooltipFrame (widget_basic.go)
// since popup content floats above the panel rather than flowing inside
// whatever layout was active when it was opened.
type popupFrame struct {
	id           ID
	sizeID       ID
	savedDL      *DrawList
	savedCursor  Vec2
	savedLayouts []*Layout
}

// popupNameID derives a popup's persistence key from its caller-supplied
// name alone (no idStack/call-counter component), the same "hash of a
// string path" idiom §3 describes for hash-table-backed widget state
// (tree-node open flags, group scroll offsets): PopupOpen and
// PopupBeginStatic/Dynamic are typically called from different
// statements, so a counter-based ctx.GetID would mint two different IDs
// for the same logical popup within one frame. hashWindowName (window.go)
// already implements the pure-name hash this needs — popups are, after
// all, "non-blocking sub-windows" per §4.6, so reusing the window-name
// hash is the grounded choice, not a coincidence of convenience.
func popupNameID(name string) ID {
	return hashWindowName(name)
}

// PopupOpen marks the named popup as open, for callers that want to
// trigger a Popup from something other than the popup's own hit-test
// (§4.6 "Popup (static/dynamic)" is opened by caller code, unlike
// ComboBox/ColorButton which open themselves on click).
func (ctx *Context) PopupOpen(name string) {
	SetState(ctx, popupNameID(name), popupState{Open: true})
}

// PopupClose closes the named popup, matching §4.6's "auto-closes ...
// or by an explicit close call".
func (ctx *Context) PopupClose(name string) {
	id := popupNameID(name)
	SetState(ctx, id, popupState{Open: false})
	if ctx.ActivePopupID() == id {
		ctx.SetActivePopup(0)
	}
}

// PopupIsOpen reports whether the named popup is currently open.
func (ctx *Context) PopupIsOpen(name string) bool {
	return GetState(ctx, popupNameID(name), popupState{}).Open
}

// PopupBeginStatic opens a fixed-bounds popup window (§4.5's STATIC_FREE
// counterpart for popups: the caller supplies the absolute rect, not a
// size derived from content). Returns false if the popup is not open or
// there is nowhere to draw it, in which case the caller must not draw
// the body and must not call PopupEnd.
func (ctx *Context) PopupBeginStatic(name string, bounds Rect) bool {
	return ctx.popupBegin(name, bounds)
}

// PopupBeginDynamic opens a popup window anchored at pos and sized to its
// own content (§4.5's DYNAMIC_FREE counterpart): like TooltipBegin, the
// size is unknown until the contents are drawn, so it uses the previous
// frame's cached content size for this frame's box and re-caches at
// PopupEnd — a one-frame lag identical to TooltipBegin/End's.
func (ctx *Context) PopupBeginDynamic(name string, pos Vec2) bool {
	sizeID := popupNameID(name + "#size")
	cachedSize := GetState(ctx, sizeID, Vec2{160, ctx.lineHeight() * 4})
	bounds := Rect{X: pos.X, Y: pos.Y, W: cachedSize.X, H: cachedSize.Y}
	if bounds.X+bounds.W > ctx.DisplaySize.X {
		bounds.X = ctx.DisplaySize.X - bounds.W
	}
	if bounds.Y+bounds.H > ctx.DisplaySize.Y {
		bounds.Y = ctx.DisplaySize.Y - bounds.H
	}
	return ctx.popupBegin(name, bounds)
}

// popupBegin is the shared open/draw-background/clip half of
// PopupBeginStatic/PopupBeginDynamic/ContextualBegin: it does not decide
// bounds (callers do), only whether the popup is open and, if so, stages
// the drawing/layout context the same way TooltipBegin does.
func (ctx *Context) popupBegin(name string, bounds Rect) bool {
	id := popupNameID(name)
	state := GetState(ctx, id, popupState{})
	if !state.Open {
		if ctx.ActivePopupID() == id {
			ctx.SetActivePopup(0)
		}
		return false
	}
	if ctx.ForegroundDrawList == nil {
		return false
	}

	ctx.SetActivePopup(id)
	ctx.markPopupOwnerReadOnly()
	ctx.WantCaptureKeyboard = true

	ctx.ForegroundDrawList.FillRect(bounds, ctx.style.DropdownBgColor)
	ctx.ForegroundDrawList.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, ctx.style.InputBorderColor, 1)

	const padding = 6
	ctx.popupStack = append(ctx.popupStack, popupFrame{
		id:           id,
		sizeID:       popupNameID(name + "#size"),
		savedDL:      ctx.DrawList,
		savedCursor:  ctx.cursor,
		savedLayouts: ctx.layoutStack,
	})
	ctx.DrawList = ctx.ForegroundDrawList
	ctx.layoutStack = nil
	ctx.cursor = Vec2{X: bounds.X + padding, Y: bounds.Y + padding}
	ctx.pushLayout(LayoutVertical)

	// Close on a click outside the popup body, or on Escape — §4.6's
	// generic popup-close rule, same condition ComboBox/ColorButton each
	// reimplement for their own dropdown rect.
	if ctx.Input != nil {
		if ctx.Input.MouseClicked(MouseButtonLeft) && !bounds.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			SetState(ctx, id, popupState{Open: false})
		}
		if ctx.Input.KeyPressed(KeyEscape) {
			SetState(ctx, id, popupState{Open: false})
		}
	}
	return true
}

// PopupEnd closes the PopupBeginStatic/PopupBeginDynamic block opened by
// this frame's call, restoring the caller's DrawList/cursor/layout stack
// and (for the dynamic variant) caching the drawn content's size for next
// frame's sizing pass — mirroring TooltipEnd exactly.
func (ctx *Context) PopupEnd() {
	n := len(ctx.popupStack)
	if n == 0 {
		return
	}
	frame := ctx.popupStack[n-1]
	ctx.popupStack = ctx.popupStack[:n-1]

	bounds := ctx.popLayout()
	SetState(ctx, frame.sizeID, Vec2{X: bounds.W, Y: bounds.H})

	ctx.DrawList = frame.savedDL
	ctx.cursor = frame.savedCursor
	ctx.layoutStack = frame.savedLayouts
}

// contextualAnchor remembers, per named contextual menu, the mouse
// position at the frame it was opened — so the body doesn't track the
// mouse for as long as it stays open.
type contextualAnchor struct {
	id  ID
	pos Vec2
}

// ContextualBegin opens a contextual (right-click) menu anchored at the
// mouse position when a right-click lands inside triggerRect, and keeps
// it open until §4.6's contextual-close rule fires: "closes when the
// mouse presses outside its body or in its header" — here, outside the
// popup body (popupBegin's own outside-click handling already covers
// this; "in its header" doesn't apply since a contextual has no header of
// its own, only the caller-supplied trigger).
func (ctx *Context) ContextualBegin(name string, triggerRect Rect, size Vec2) bool {
	id := popupNameID(name)
	if ctx.Input != nil && !ctx.IsReadOnly() && ctx.Input.MouseClicked(MouseButtonRight) {
		mp := Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
		if triggerRect.Contains(mp) {
			SetState(ctx, id, popupState{Open: true})
			ctx.setContextualAnchor(id, mp)
		}
	}
	pos := ctx.getContextualAnchor(id)
	bounds := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	if bounds.X+bounds.W > ctx.DisplaySize.X {
		bounds.X = ctx.DisplaySize.X - bounds.W
	}
	if bounds.Y+bounds.H > ctx.DisplaySize.Y {
		bounds.Y = ctx.DisplaySize.Y - bounds.H
	}
	return ctx.popupBegin(name, bounds)
}

// ContextualEnd closes the block opened by ContextualBegin. A separate
// name from PopupEnd documents the pairing at call sites even though the
// underlying mechanism (popupStack) is shared.
func (ctx *Context) ContextualEnd() {
	ctx.PopupEnd()
}

func (ctx *Context) setContextualAnchor(id ID, pos Vec2) {
	for i := range ctx.contextualAnchors {
		if ctx.contextualAnchors[i].id == id {
			ctx.contextualAnchors[i].pos = pos
			return
		}
	}
	ctx.contextualAnchors = append(ctx.contextualAnchors, contextualAnchor{id: id, pos: pos})
}

func (ctx *Context) getContextualAnchor(id ID) Vec2 {
	for _, a := range ctx.contextualAnchors {
		if a.id == id {
			return a.pos
		}
	}
	if ctx.Input != nil {
		return Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
	}
	return Vec2{}
}
