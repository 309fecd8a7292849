package gui

// Per-kind style stacks (§3). Unlike PushStyle/PopStyle, which snapshot and
// restore the whole Style struct, each stack here remembers only the one
// field it overrode, so independently-nested pushes of different kinds
// (a color push inside a float push inside a font push) don't have to
// share a single slot. Every stack is bounded by StyleStackCap; a push past
// that depth is a no-op and the Push call returns false, mirroring
// the spec's "report failure without aborting" stack-overflow rule. The
// style-items category the spec names alongside colors has no separate
// representation here: this Style has no texture-backed items, only colors,
// so PushStyleColor already covers it.

type styleColorEntry struct {
	field StyleColorField
	prev  uint32
}

// PushStyleColor overrides a single color field, remembering its previous
// value. It returns false, changing nothing, when the stack has no room.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) bool {
	if len(ctx.colorStack) >= StyleStackCap {
		return false
	}
	ctx.colorStack = append(ctx.colorStack, styleColorEntry{field, ctx.styleColor(field)})
	ctx.setStyleColor(field, color)
	return true
}

// PopStyleColor restores the color field most recently overridden by
// PushStyleColor. A pop past an empty stack is a no-op.
func (ctx *Context) PopStyleColor() {
	n := len(ctx.colorStack)
	if n == 0 {
		return
	}
	e := ctx.colorStack[n-1]
	ctx.colorStack = ctx.colorStack[:n-1]
	ctx.setStyleColor(e.field, e.prev)
}

func (ctx *Context) styleColor(field StyleColorField) uint32 {
	switch field {
	case StyleColorText:
		return ctx.style.TextColor
	case StyleColorButton:
		return ctx.style.ButtonColor
	case StyleColorButtonHovered:
		return ctx.style.ButtonHoveredColor
	case StyleColorButtonActive:
		return ctx.style.ButtonActiveColor
	case StyleColorPanel:
		return ctx.style.PanelColor
	case StyleColorSelected:
		return ctx.style.SelectedBgColor
	}
	return 0
}

func (ctx *Context) setStyleColor(field StyleColorField, color uint32) {
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorButtonHovered:
		ctx.style.ButtonHoveredColor = color
	case StyleColorButtonActive:
		ctx.style.ButtonActiveColor = color
	case StyleColorPanel:
		ctx.style.PanelColor = color
	case StyleColorSelected:
		ctx.style.SelectedBgColor = color
	}
}

// StyleVarFloatField identifies a float-valued Style field for
// PushStyleVarFloat.
type StyleVarFloatField int

const (
	StyleVarItemSpacing StyleVarFloatField = iota
	StyleVarPanelPadding
	StyleVarButtonPadding
	StyleVarInputPadding
	StyleVarRounding
	StyleVarBorderSize
	StyleVarScrollbarSize
	StyleVarFontScale
)

type styleFloatEntry struct {
	field StyleVarFloatField
	prev  float32
}

// PushStyleVarFloat overrides a single float field of Style.
func (ctx *Context) PushStyleVarFloat(field StyleVarFloatField, value float32) bool {
	if len(ctx.floatStack) >= StyleStackCap {
		return false
	}
	ctx.floatStack = append(ctx.floatStack, styleFloatEntry{field, ctx.styleFloat(field)})
	ctx.setStyleFloat(field, value)
	return true
}

// PopStyleVarFloat restores the float field most recently overridden.
func (ctx *Context) PopStyleVarFloat() {
	n := len(ctx.floatStack)
	if n == 0 {
		return
	}
	e := ctx.floatStack[n-1]
	ctx.floatStack = ctx.floatStack[:n-1]
	ctx.setStyleFloat(e.field, e.prev)
}

func (ctx *Context) styleFloat(field StyleVarFloatField) float32 {
	switch field {
	case StyleVarItemSpacing:
		return ctx.style.ItemSpacing
	case StyleVarPanelPadding:
		return ctx.style.PanelPadding
	case StyleVarButtonPadding:
		return ctx.style.ButtonPadding
	case StyleVarInputPadding:
		return ctx.style.InputPadding
	case StyleVarRounding:
		return ctx.style.Rounding
	case StyleVarBorderSize:
		return ctx.style.BorderSize
	case StyleVarScrollbarSize:
		return ctx.style.ScrollbarSize
	case StyleVarFontScale:
		return ctx.style.FontScale
	}
	return 0
}

func (ctx *Context) setStyleFloat(field StyleVarFloatField, value float32) {
	switch field {
	case StyleVarItemSpacing:
		ctx.style.ItemSpacing = value
	case StyleVarPanelPadding:
		ctx.style.PanelPadding = value
	case StyleVarButtonPadding:
		ctx.style.ButtonPadding = value
	case StyleVarInputPadding:
		ctx.style.InputPadding = value
	case StyleVarRounding:
		ctx.style.Rounding = value
	case StyleVarBorderSize:
		ctx.style.BorderSize = value
	case StyleVarScrollbarSize:
		ctx.style.ScrollbarSize = value
	case StyleVarFontScale:
		ctx.style.FontScale = value
	}
}

// StyleVarVec2Field identifies a Vec2-valued Style field for PushStyleVec2.
type StyleVarVec2Field int

const (
	StyleVarFramePadding StyleVarVec2Field = iota
)

type styleVec2Entry struct {
	field StyleVarVec2Field
	prev  Vec2
}

// PushStyleVec2 overrides a single Vec2 field of Style.
func (ctx *Context) PushStyleVec2(field StyleVarVec2Field, value Vec2) bool {
	if len(ctx.vec2Stack) >= StyleStackCap {
		return false
	}
	ctx.vec2Stack = append(ctx.vec2Stack, styleVec2Entry{field, ctx.style.FramePadding})
	switch field {
	case StyleVarFramePadding:
		ctx.style.FramePadding = value
	}
	return true
}

// PopStyleVec2 restores the Vec2 field most recently overridden.
func (ctx *Context) PopStyleVec2() {
	n := len(ctx.vec2Stack)
	if n == 0 {
		return
	}
	e := ctx.vec2Stack[n-1]
	ctx.vec2Stack = ctx.vec2Stack[:n-1]
	switch e.field {
	case StyleVarFramePadding:
		ctx.style.FramePadding = e.prev
	}
}

// PushStyleFlags overrides the whole Flags mask, restorable as a unit.
func (ctx *Context) PushStyleFlags(flags StyleFlags) bool {
	if len(ctx.flagStack) >= StyleStackCap {
		return false
	}
	ctx.flagStack = append(ctx.flagStack, ctx.style.Flags)
	ctx.style.Flags = flags
	return true
}

// PopStyleFlags restores the Flags mask most recently overridden.
func (ctx *Context) PopStyleFlags() {
	n := len(ctx.flagStack)
	if n == 0 {
		return
	}
	ctx.style.Flags = ctx.flagStack[n-1]
	ctx.flagStack = ctx.flagStack[:n-1]
}

// PushFont switches the active font by name, remembering the previous one.
// Does nothing but still push/pop in balance if no font provider is set, so
// callers don't need to special-case a headless context.
func (ctx *Context) PushFont(name string) bool {
	if len(ctx.fontStack) >= StyleStackCap {
		return false
	}
	ctx.fontStack = append(ctx.fontStack, ctx.style.FontName)
	ctx.style.FontName = name
	ctx.SetFont(name)
	return true
}

// PopFont restores the font most recently overridden by PushFont.
func (ctx *Context) PopFont() {
	n := len(ctx.fontStack)
	if n == 0 {
		return
	}
	prev := ctx.fontStack[n-1]
	ctx.fontStack = ctx.fontStack[:n-1]
	ctx.style.FontName = prev
	ctx.SetFont(prev)
}

// PushButtonRepeat overrides Style.ButtonRepeat, the button-behaviour stack.
func (ctx *Context) PushButtonRepeat(repeat bool) bool {
	if len(ctx.buttonStack) >= StyleStackCap {
		return false
	}
	ctx.buttonStack = append(ctx.buttonStack, ctx.style.ButtonRepeat)
	ctx.style.ButtonRepeat = repeat
	return true
}

// PopButtonRepeat restores Style.ButtonRepeat most recently overridden.
func (ctx *Context) PopButtonRepeat() {
	n := len(ctx.buttonStack)
	if n == 0 {
		return
	}
	ctx.style.ButtonRepeat = ctx.buttonStack[n-1]
	ctx.buttonStack = ctx.buttonStack[:n-1]
}

// buttonRepeatRate tracks elapsed hold time per button id so
// buttonRepeatFires knows when the next repeat click is due.
var buttonRepeatRate = NewFrameStore[float32]()

const (
	buttonRepeatDelay    float32 = 0.5  // time held before the first repeat
	buttonRepeatInterval float32 = 0.08 // time between repeats after that
)

// buttonRepeatFires reports whether a held button with ButtonRepeat enabled
// should fire a synthetic click this frame.
func (ctx *Context) buttonRepeatFires(id ID, pressed bool) bool {
	held := buttonRepeatRate.Get(id, 0)
	if !pressed {
		*held = 0
		return false
	}
	*held += ctx.DeltaTime
	if *held < buttonRepeatDelay {
		return false
	}
	over := *held - buttonRepeatDelay
	if over < buttonRepeatInterval {
		return false
	}
	*held = buttonRepeatDelay
	return true
}
