package gui

// CursorKind names one of the seven cursor images the style carries
// alongside the active font (§3's style fields; §4.7's atlas_end "records
// the texture handle on every font and on the seven cursor images").
type CursorKind int

const (
	CursorArrow CursorKind = iota
	CursorText
	CursorMove
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorCount
)

// CursorSource is the atlas-side handle for the seven baked cursor
// images, implemented by font.BakedCursors. It mirrors the Font interface's
// TextureID split: the host renderer uploads the shared atlas texture and
// reports its handle back the same way it does for a Font.
type CursorSource interface {
	TextureID() uint32
	UV(kind CursorKind) (u0, v0, u1, v1, w, h, hotX, hotY float32)
}

// SetCursorSource installs the baked cursor images. Call once after the
// atlas bake that produced them assigns a texture handle, the same point
// a host wires up SetFontProvider.
func (ctx *Context) SetCursorSource(src CursorSource) {
	ctx.cursorSource = src
}

// SetCursor overrides which of the seven cursor images is drawn this
// frame. Widgets call this from hover/drag handling (e.g. a window resize
// grip sets CursorResizeNWSE, a text input sets CursorText while hovered).
// Reset to CursorArrow at the start of every frame by Context.Reset.
func (ctx *Context) SetCursor(kind CursorKind) {
	ctx.activeCursor = kind
}

// drawCursor emits the cursor-image draw command into the foreground draw
// list at the current mouse position, per the style cursor rule: only
// when the style cursor is visible and the mouse is not grabbed (grabbing
// hands cursor rendering to the host, e.g. for an FPS-style camera).
func (ctx *Context) drawCursor() {
	if ctx.cursorSource == nil || ctx.Input == nil {
		return
	}
	if !ctx.style.CursorVisible || ctx.Input.Grabbed {
		return
	}
	u0, v0, u1, v1, w, h, hotX, hotY := ctx.cursorSource.UV(ctx.activeCursor)
	if w == 0 || h == 0 {
		return
	}
	x := ctx.Input.MouseX - hotX
	y := ctx.Input.MouseY - hotY

	dl := ctx.ForegroundDrawList
	dl.SetTexture(ctx.cursorSource.TextureID())
	dl.AddGlyphQuads([]GlyphQuad{{
		X0: x, Y0: y, X1: x + w, Y1: y + h,
		U0: u0, V0: v0, U1: u1, V1: v1,
	}}, ColorWhite)
	dl.SetTexture(0)
}
