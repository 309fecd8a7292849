package gui

// MenuBeginBar opens the menu-bar staging area mentioned in spec.md's
// Panel attribute list ("menu-bar staging area") but never operationalized
// in §4: a horizontal strip of top-level menu buttons drawn above the
// panel body. Grounded on layout.go's HStack (same gap/cursor bookkeeping),
// with a background strip and bottom border added so it reads as a
// distinct bar rather than an ordinary row of buttons.
func (ctx *Context) MenuBeginBar(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		startX, startY := ctx.cursor.X, ctx.cursor.Y
		w := ctx.currentLayoutWidth()
		h := ctx.lineHeight() + ctx.style.ItemSpacing

		ctx.DrawList.InsertRect(startX, startY, w, h, ctx.style.PanelHeaderBgColor)

		ctx.cursor.X += ctx.style.ItemSpacing
		ctx.cursor.Y += ctx.style.ItemSpacing / 2
		ctx.HStack(opts...)(contents)

		ctx.DrawList.AddLine(startX, startY+h, startX+w, startY+h, ctx.style.PanelBorderColor, 1)
		ctx.cursor.X = startX
		ctx.cursor.Y = startY + h
	}
}

// MenuEndBar is a no-op paired with MenuBeginBar for callers that prefer an
// explicit begin/end pairing over the closure form; MenuBeginBar already
// closes the bar when its contents callback returns.
func (ctx *Context) MenuEndBar() {}

// MenuButton draws one top-level entry in a menu bar. Returns true on the
// frame it is clicked; the caller is responsible for opening whatever
// dropdown/popup that click should show (§4.6 "Popup ... menu" family).
func (ctx *Context) MenuButton(label string, opts ...Option) bool {
	return ctx.SmallButton(label, opts...)
}
